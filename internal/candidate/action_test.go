package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"", Action{Kind: ActionNone}},
		{"SHOW_HOTKEYS", Action{Kind: ActionShowHotkeys}},
		{"LOGOUT", Action{Kind: ActionLogout}},
		{"CLIPBOARD_SET:42", Action{Kind: ActionClipboardSet, Value: "42"}},
		{"COPY:#FF0000FF", Action{Kind: ActionCopy, Value: "#FF0000FF"}},
		{"COPY:", Action{Kind: ActionCopy, Value: ""}},
		{`xdg-open "https://example.com"`, Action{Kind: ActionOpen, Value: "https://example.com"}},
		{"OPEN_PATH:/home/u/a b.txt", Action{Kind: ActionOpen, Value: "/home/u/a b.txt"}},
		{"firefox %u", Action{Kind: ActionShell, Value: "firefox %u"}},
		{"copy:lower", Action{Kind: ActionShell, Value: "copy:lower"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAction(tt.in), tt.in)
	}
}

func TestHistoryBacked(t *testing.T) {
	for _, k := range []SourceKind{File, Web, Clipboard} {
		assert.True(t, Candidate{Source: k}.HistoryBacked(), k.String())
	}
	for _, k := range []SourceKind{App, Calc, System, Internal, Color} {
		assert.False(t, Candidate{Source: k}.HistoryBacked(), k.String())
	}
}

func TestEditable(t *testing.T) {
	assert.True(t, Candidate{Source: App, DesktopID: "foot.desktop"}.Editable())
	assert.False(t, Candidate{Source: App}.Editable())
	assert.False(t, Candidate{Source: File, DesktopID: "x"}.Editable())
}
