package provider

import (
	"strings"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/icons"
)

// PowerOption is a configured power menu entry
type PowerOption struct {
	Class   string
	Command string
	Icon    string
}

// Label returns the display name for a power option class, or "" for
// classes the launcher does not know.
func Label(class string) string {
	switch class {
	case "shutdown-btn":
		return "Shutdown"
	case "reboot-btn":
		return "Reboot"
	case "logout-btn":
		return "Log Out"
	case "theme-btn":
		return "Toggle Theme"
	default:
		return ""
	}
}

// SystemCommands returns the power options whose label equals query,
// ignoring case.
func SystemCommands(query string, options []PowerOption) []candidate.Candidate {
	var out []candidate.Candidate
	for _, opt := range options {
		label := Label(opt.Class)
		if label == "" || !strings.EqualFold(label, query) {
			continue
		}
		out = append(out, PowerCandidate(opt))
	}
	return out
}

// PowerCandidate turns a power option into a selectable candidate
func PowerCandidate(opt PowerOption) candidate.Candidate {
	icon := opt.Icon
	if icon == "" {
		icon = icons.ForPowerClass(opt.Class)
	}
	name := Label(opt.Class)
	if name == "" {
		name = opt.Class
	}
	return candidate.Candidate{
		Name:   name,
		Action: opt.Command,
		Icon:   icon,
		Source: candidate.System,
	}
}
