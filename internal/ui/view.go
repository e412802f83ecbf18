package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/icons"
	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/session"
)

// Rows taken by everything but the result list: window border, input with
// its rule and margin, power row and status bar.
const chromeHeight = 11

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	innerWidth := max(m.width-4, 20)

	var body string
	if m.session.Mode() == session.ModeColor {
		body = m.renderColorPicker(innerWidth)
	} else {
		body = m.renderList(innerWidth)
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		InputStyle.Width(innerWidth).Render(m.search.View()),
		body,
		m.renderPowerRow(),
		m.renderStatusBar(innerWidth),
	)
	main = WindowStyle.Width(m.width - 2).Render(main)

	if m.session.Editing() != session.EditNone {
		main = m.renderEditPopup(main)
	}
	if m.showHelp {
		main = m.renderHelpPopup(main)
	}
	return main
}

func (m Model) listHeight() int {
	return max(m.height-chromeHeight, 3)
}

// renderList draws the visible window of the result list around the
// highlighted row.
func (m Model) renderList(width int) string {
	results := m.session.Results()
	rows := m.listHeight()
	if len(results) == 0 {
		return lipgloss.NewStyle().Height(rows).Render(EmptyStyle.Render("No results"))
	}

	// Power mode keeps the app list visible without a highlighted row
	selected := -1
	if m.session.Mode() != session.ModePower {
		selected = m.session.Index()
	}

	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	end := min(start+rows, len(results))

	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(results[i], i == selected, width))
	}
	return lipgloss.NewStyle().Height(rows).Render(strings.Join(lines, "\n"))
}

func (m Model) renderItem(c candidate.Candidate, selected bool, width int) string {
	name := strings.Join(strings.Fields(c.Name), " ")
	meta := c.Source.String()

	icon := c.Icon
	if c.Source == candidate.App && m.session.IconMode() == provider.IconModeSystem {
		// Theme icons cannot be drawn in a terminal; name them instead
		icon = ""
		if sys := m.session.SystemIcon(c.DesktopID); sys != "" {
			meta = sys
		}
	}
	if icon == "" && c.Source == candidate.App {
		icon = icons.App
	}

	nameWidth := max(width-lipgloss.Width(meta)-6, 8)
	name = lipgloss.NewStyle().MaxWidth(nameWidth).Render(name)
	gap := max(width-5-lipgloss.Width(name)-lipgloss.Width(meta), 1)

	line := IconStyle.Render(icon) + name + strings.Repeat(" ", gap) + MetaStyle.Render(meta)
	if selected {
		return SelectionStyle.Width(width).Render(icons.Select + line)
	}
	return ItemStyle.Width(width).Render(" " + line)
}

func (m Model) renderPowerRow() string {
	options := m.session.PowerOptions()
	if len(options) == 0 {
		return ""
	}
	active := m.session.Mode() == session.ModePower
	buttons := make([]string, 0, len(options))
	for i, opt := range options {
		c := provider.PowerCandidate(opt)
		label := c.Icon + " " + c.Name
		if active && i == m.session.Index() {
			buttons = append(buttons, PowerSelectedStyle.Render(label))
			continue
		}
		buttons = append(buttons, PowerItemStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderStatusBar(width int) string {
	var parts []string

	// 1. Mode
	parts = append(parts, ModeStyle.Render(strings.ToUpper(m.session.Mode().String())))

	// 2. Flags
	if m.session.ShowHidden() {
		parts = append(parts, BadgeStyle.Render("HIDDEN"))
	}
	if m.session.IconMode() == provider.IconModeSystem {
		parts = append(parts, BadgeStyle.Render("SYSTEM ICONS"))
	}

	// 3. Position
	switch m.session.Mode() {
	case session.ModeApps, session.ModeClipboard:
		if n := len(m.session.Results()); n > 0 {
			parts = append(parts, MetaStyle.Render(positionLabel(m.session.Index(), n)))
		}
	}

	left := strings.Join(parts, " ")
	hint := MetaStyle.Render("hotkeys? for help")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(hint), 1)
	return StatusBarStyle.Render(left + strings.Repeat(" ", gap) + hint)
}

func positionLabel(idx, n int) string {
	return fmt.Sprintf("%d/%d", idx+1, n)
}
