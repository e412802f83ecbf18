// internal/ui/messages.go
package ui

// DebounceMsg re-resolves the query once typing has paused
type DebounceMsg struct {
	ID int
}

// centerMsg asks the window manager to center the launcher window
type centerMsg struct{}
