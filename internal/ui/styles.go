// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/centrum/internal/config"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	highlightColor lipgloss.Color
	errorColor     lipgloss.Color

	bgPrimary   lipgloss.Color
	borderColor lipgloss.Color
	selectedBg  lipgloss.Color

	// Styles
	WindowStyle         lipgloss.Style
	InputStyle          lipgloss.Style
	PromptStyle         lipgloss.Style
	ItemStyle           lipgloss.Style
	SelectionStyle      lipgloss.Style
	IconStyle           lipgloss.Style
	MetaStyle           lipgloss.Style
	PowerItemStyle      lipgloss.Style
	PowerSelectedStyle  lipgloss.Style
	ButtonStyle         lipgloss.Style
	ButtonFocusedStyle  lipgloss.Style
	StatusBarStyle      lipgloss.Style
	ModeStyle           lipgloss.Style
	BadgeStyle          lipgloss.Style
	EmptyStyle          lipgloss.Style
	PopupStyle          lipgloss.Style
	PopupTitleStyle     lipgloss.Style
	PopupSectionStyle   lipgloss.Style
	PopupKeyStyle       lipgloss.Style
	PopupDescStyle      lipgloss.Style
	PopupFootnoteStyle  lipgloss.Style
	PopupCheckedStyle   lipgloss.Style
	PopupUncheckedStyle lipgloss.Style
)

// Color getter functions for use in renderers
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func BorderColor() lipgloss.Color    { return borderColor }
func SelectedBg() lipgloss.Color     { return selectedBg }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	highlightColor = lipgloss.Color(theme.Highlight)
	errorColor = lipgloss.Color(theme.Error)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	borderColor = lipgloss.Color(theme.BorderColor)
	selectedBg = lipgloss.Color(theme.SelectedBg)

	WindowStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(borderColor).
		MarginBottom(1)

	PromptStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	ItemStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		PaddingLeft(1)

	SelectionStyle = lipgloss.NewStyle().
		Foreground(highlightColor).
		Background(selectedBg).
		Bold(true).
		PaddingLeft(1)

	IconStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Width(3)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint)

	PowerItemStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2)

	PowerSelectedStyle = PowerItemStyle.
		Foreground(highlightColor).
		BorderForeground(accentColor).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		Background(bgPrimary).
		Padding(0, 1)

	ButtonFocusedStyle = lipgloss.NewStyle().
		Foreground(bgPrimary).
		Background(accentColor).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		MarginTop(1)

	ModeStyle = lipgloss.NewStyle().
		Foreground(bgPrimary).
		Background(accentColor).
		Bold(true).
		Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(bgPrimary).
		Background(highlightColor).
		Padding(0, 1)

	EmptyStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true).
		PaddingLeft(1)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Background(bgPrimary).
		Padding(1, 2)

	PopupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	PopupSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(highlightColor)
	PopupKeyStyle = lipgloss.NewStyle().Foreground(accentColor).Width(14)
	PopupDescStyle = lipgloss.NewStyle().Foreground(textSecondary)
	PopupFootnoteStyle = lipgloss.NewStyle().Faint(true)
	PopupCheckedStyle = lipgloss.NewStyle().Foreground(highlightColor)
	PopupUncheckedStyle = lipgloss.NewStyle().Foreground(textFaint)
}
