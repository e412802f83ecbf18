package candidate

import "strings"

// Action string prefixes and literals understood by the launcher.
const (
	PrefixClipboardSet = "CLIPBOARD_SET:"
	PrefixCopy         = "COPY:"
	PrefixOpenPath     = "OPEN_PATH:"
	PrefixXDGOpen      = "xdg-open "

	ShowHotkeys = "SHOW_HOTKEYS"
	Logout      = "LOGOUT"
)

// ActionKind classifies an action string
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShell
	ActionClipboardSet
	ActionCopy
	ActionOpen
	ActionShowHotkeys
	ActionLogout
)

// Action is a parsed action string. Value holds the payload with the prefix
// removed: the clipboard id, the text to copy, the path or URL to open, or
// the shell command.
type Action struct {
	Kind  ActionKind
	Value string
}

// ParseAction interprets an action string. Prefixes are checked in a fixed
// order and the first match wins; anything unrecognised is a shell command.
func ParseAction(s string) Action {
	switch {
	case s == "":
		return Action{Kind: ActionNone}
	case s == ShowHotkeys:
		return Action{Kind: ActionShowHotkeys}
	case s == Logout:
		return Action{Kind: ActionLogout}
	case strings.HasPrefix(s, PrefixClipboardSet):
		return Action{Kind: ActionClipboardSet, Value: s[len(PrefixClipboardSet):]}
	case strings.HasPrefix(s, PrefixCopy):
		return Action{Kind: ActionCopy, Value: s[len(PrefixCopy):]}
	case strings.HasPrefix(s, PrefixXDGOpen):
		return Action{Kind: ActionOpen, Value: strings.Trim(s[len(PrefixXDGOpen):], `"`)}
	case strings.HasPrefix(s, PrefixOpenPath):
		return Action{Kind: ActionOpen, Value: s[len(PrefixOpenPath):]}
	default:
		return Action{Kind: ActionShell, Value: s}
	}
}

func CopyAction(value string) string      { return PrefixCopy + value }
func ClipboardSetAction(id string) string { return PrefixClipboardSet + id }
func OpenPathAction(path string) string   { return PrefixOpenPath + path }
func XDGOpenAction(target string) string  { return PrefixXDGOpen + target }
