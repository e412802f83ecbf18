package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/centrum/internal/session"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.showHelp {
		return m.handleHelpKey(key), nil
	}

	wasEditing := m.session.Editing() != session.EditNone
	out := m.session.HandleKey(m.ctx, key)
	if out.Close {
		return m.quit()
	}
	if out.ShowHotkeys {
		m.showHelp = true
	}
	if out.Query != nil {
		m.search.SetValue(*out.Query)
		m.search.CursorEnd()
	}

	var cmd tea.Cmd
	if !out.Handled {
		m, cmd = m.forward(msg)
	}
	m = m.syncInputs(wasEditing)
	return m, cmd
}

// handleHelpKey closes the hotkeys popup or flips its "don't show again"
// box. Other keys are swallowed while the popup is open.
func (m Model) handleHelpKey(key string) Model {
	switch key {
	case "esc", "q", "enter":
		m.showHelp = false
	case "d":
		m.config.ShowHotkeys = !m.config.ShowHotkeys
	}
	return m
}

// forward passes a key the session did not consume to the focused field
func (m Model) forward(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.session.Editing() != session.EditNone {
		m.edit, cmd = m.edit.Update(msg)
		m.session.SetEditValue(m.edit.Value())
		return m, cmd
	}

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m, queryCmd := m.setQuery(m.search.Value())
	return m, tea.Batch(cmd, queryCmd)
}

// syncInputs moves focus between the search and edit fields when the edit
// overlay opens or closes, and keeps the search placeholder on the mode.
func (m Model) syncInputs(wasEditing bool) Model {
	editing := m.session.Editing()
	switch {
	case editing != session.EditNone && !wasEditing:
		m.edit.SetValue(m.session.EditValue())
		m.edit.CursorEnd()
		m.edit.Placeholder = editPlaceholder(editing)
		m.edit.Focus()
		m.search.Blur()
	case editing == session.EditNone && wasEditing:
		m.edit.Blur()
		m.edit.SetValue("")
		m.search.Focus()
	}

	switch m.session.Mode() {
	case session.ModeClipboard:
		m.search.Placeholder = clipboardPlaceholder
	case session.ModeColor:
		m.search.Placeholder = colorPlaceholder
	default:
		m.search.Placeholder = searchPlaceholder
	}
	return m
}

func editPlaceholder(kind session.Editing) string {
	if kind == session.EditIcon {
		return "Icon (empty to reset)"
	}
	return "Name (empty to reset)"
}
