package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/centrum/internal/color"
	"github.com/nhath/centrum/internal/session"
)

const (
	barWidth     = 36
	swatchWidth  = 14
	swatchHeight = 5
)

// renderColorPicker draws the swatch, the saturation/value, hue and alpha
// controls and the copy buttons, marking the focused control.
func (m Model) renderColorPicker(width int) string {
	c := m.session.Color()
	focus := m.session.ColorControl()

	swatch := lipgloss.NewStyle().
		Width(swatchWidth).
		Height(swatchHeight).
		Background(lipgloss.Color(c.Hex()[:7])).
		Render("")

	controls := lipgloss.JoinVertical(lipgloss.Left,
		controlLine(focus == session.ControlText, "Text", MetaStyle.Render("type a color in the search field")),
		controlLine(focus == session.ControlSquare, "S / V", fmt.Sprintf("%s  %s",
			bar(c.S, 1, barWidth/2, hueAt(c.H, 0.7)),
			bar(c.V, 1, barWidth/2, hueAt(c.H, 0.7)))),
		controlLine(focus == session.ControlHue, "Hue", bar(c.H, 360, barWidth, hueAt(c.H, 1))),
		controlLine(focus == session.ControlAlpha, "Alpha", bar(c.A, 1, barWidth, textSecondary)),
		"",
		controlLine(false, "", lipgloss.JoinHorizontal(lipgloss.Top,
			button(focus == session.ControlHexButton, c.Hex()),
			" ",
			button(focus == session.ControlRGBButton, c.CSS()))),
	)

	picker := lipgloss.JoinHorizontal(lipgloss.Top, swatch, "  ", controls)
	return lipgloss.NewStyle().
		Width(width).
		Height(m.listHeight()).
		Render(picker)
}

func controlLine(focused bool, label, body string) string {
	marker := "  "
	style := MetaStyle
	if focused {
		marker = PromptStyle.Render("▸ ")
		style = PromptStyle
	}
	return marker + style.Width(7).Render(label) + body
}

func button(focused bool, label string) string {
	if focused {
		return ButtonFocusedStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// bar renders value out of limit as a slider of the given width
func bar(value, limit float64, width int, fill lipgloss.Color) string {
	pos := int(value / limit * float64(width-1))
	pos = min(max(pos, 0), width-1)
	filled := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("━", pos))
	rest := MetaStyle.Render(strings.Repeat("─", width-1-pos))
	return filled + PromptStyle.Render("●") + rest
}

// hueAt returns the fully saturated color of hue h at value v
func hueAt(h, v float64) lipgloss.Color {
	return lipgloss.Color(color.HSVA{H: h, S: 1, V: v, A: 1}.Hex()[:7])
}
