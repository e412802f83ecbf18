package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/centrum/internal/session"
)

type binding struct{ key, desc string }

// helpBindings lists the launcher's keys with the configured hotkeys
func helpBindings(keys session.Keymap) []binding {
	return []binding{
		{"enter", "Launch / Action"},
		{"esc", "Close / Cancel"},
		{"tab", "Switch Apps / Power / Color control"},
		{"up/down", "Navigate list"},
		{"right", "Complete path"},
		{"delete", "Remove from search and link history"},
		{keys.Clipboard, "Clipboard history"},
		{keys.ColorPicker, "Color picker"},
		{keys.Rename, "Rename app"},
		{keys.Icon, "Change icon"},
		{keys.HideApp, "Hide / show app"},
		{keys.ToggleHidden, "Toggle hidden apps"},
		{keys.ToggleIconMode, "Toggle icon mode"},
	}
}

var prefixBindings = []binding{
	{":", "Browser history"},
	{"?", "Web search"},
	{"/ or ~", "File search"},
	{"#", "Color picker"},
}

func (m Model) renderHelpPopup(main string) string {
	var content strings.Builder

	content.WriteString(PopupTitleStyle.Render("Hotkeys"))
	content.WriteString("\n\n")

	section := func(name string, bindings []binding) {
		content.WriteString(PopupSectionStyle.Render(name) + "\n")
		for _, b := range bindings {
			content.WriteString(fmt.Sprintf("  %s %s\n", PopupKeyStyle.Render(b.key), PopupDescStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}
	section("Keys", helpBindings(m.keys))
	section("Query prefixes", prefixBindings)

	check := PopupUncheckedStyle.Render("[ ]")
	if !m.config.ShowHotkeys {
		check = PopupCheckedStyle.Render("[x]")
	}
	content.WriteString(check + " Don't show again (d)\n")
	content.WriteString(PopupFootnoteStyle.Render("Power options are set in config.toml"))
	content.WriteString("\n")
	content.WriteString(PopupFootnoteStyle.Render("Press Esc, q or Enter to close"))

	popupBox := PopupStyle.
		Width(54).
		MaxHeight(max(m.height-2, 10)).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}

// renderEditPopup draws the rename or icon field over the list
func (m Model) renderEditPopup(main string) string {
	title := "Rename"
	if m.session.Editing() == session.EditIcon {
		title = "Change Icon"
	}
	if sel, ok := m.session.Selected(); ok {
		title += " " + lipgloss.NewStyle().Foreground(TextSecondary()).Render(sel.Name)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		PopupTitleStyle.Render(title),
		"",
		m.edit.View(),
		"",
		PopupFootnoteStyle.Render("Enter to save, Esc to cancel"),
	)
	popupBox := PopupStyle.Width(44).Render(body)
	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
