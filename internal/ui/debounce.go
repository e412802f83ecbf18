package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/centrum/internal/provider"
)

// queryDebounce is how long typing must pause before a calculator query is
// resolved again. It outlasts the calculator's own rate limit so the last
// keystroke is always evaluated.
const queryDebounce = 150 * time.Millisecond

// setQuery hands the search field text to the session. Calculator queries
// schedule a DebounceMsg; any newer keystroke cancels the pending one.
func (m Model) setQuery(text string) (Model, tea.Cmd) {
	m.session.SetQuery(m.ctx, text)
	m.debounceID++
	if !provider.IsCalcQuery(text) {
		return m, nil
	}
	id := m.debounceID
	return m, tea.Tick(queryDebounce, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}
