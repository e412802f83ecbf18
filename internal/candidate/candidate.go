// Package candidate defines the selectable results produced by providers
// and the action strings the launcher executes for them.
package candidate

// SourceKind identifies the provider that produced a candidate
type SourceKind int

const (
	App SourceKind = iota
	File
	Web
	Calc
	Clipboard
	System
	Internal
	Color
)

func (k SourceKind) String() string {
	switch k {
	case App:
		return "app"
	case File:
		return "file"
	case Web:
		return "web"
	case Calc:
		return "calc"
	case Clipboard:
		return "clipboard"
	case System:
		return "system"
	case Internal:
		return "internal"
	case Color:
		return "color"
	default:
		return "unknown"
	}
}

// Candidate is one selectable result for the current query
type Candidate struct {
	Name     string
	Action   string
	Icon     string
	Source   SourceKind
	Terminal bool

	// DesktopID is set for application entries only
	DesktopID string
}

// HistoryBacked reports whether the candidate's action may be dropped from
// usage history by the user.
func (c Candidate) HistoryBacked() bool {
	return c.Source == File || c.Source == Web || c.Source == Clipboard
}

// Editable reports whether the rename/icon overlay may target the candidate.
func (c Candidate) Editable() bool {
	return c.Source == App && c.DesktopID != ""
}
