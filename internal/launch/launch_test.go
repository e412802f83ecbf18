package launch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/wm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingRunner struct {
	spawns   [][]string
	spawnErr error
}

func (r *recordingRunner) Output(context.Context, string, ...string) ([]byte, error) {
	return nil, errors.New("unexpected Output call")
}

func (r *recordingRunner) Spawn(name string, args ...string) error {
	r.spawns = append(r.spawns, append([]string{name}, args...))
	return r.spawnErr
}

func (r *recordingRunner) LookPath(string) bool { return true }

type fakeWindows struct {
	windows []wm.Window
	listErr error
	focused []string
	logouts int
}

func (f *fakeWindows) Name() string { return "fake" }

func (f *fakeWindows) Windows(context.Context) ([]wm.Window, error) {
	return f.windows, f.listErr
}

func (f *fakeWindows) Focus(_ context.Context, id string) error {
	f.focused = append(f.focused, id)
	return nil
}

func (f *fakeWindows) Logout(context.Context) error {
	f.logouts++
	return nil
}

func (f *fakeWindows) CenterCursorOrWindow(context.Context) error { return nil }

func newTestResolver(r *recordingRunner, w *fakeWindows, copied *[]string) *Resolver {
	return New(Options{
		Runner:  r,
		Windows: w,
		Clipboard: func(s string) error {
			*copied = append(*copied, s)
			return nil
		},
	})
}

func TestLaunchEmpty(t *testing.T) {
	r := &recordingRunner{}
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)

	assert.Equal(t, EffectNone, res.Launch(context.Background(), Request{}, history.NewMap()))
	assert.Empty(t, r.spawns)
}

func TestLaunchClipboardSet(t *testing.T) {
	r := &recordingRunner{}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)

	effect := res.Launch(context.Background(), Request{Action: "CLIPBOARD_SET:42", Source: candidate.Clipboard}, hist)
	assert.Equal(t, EffectClipboardRestored, effect)
	assert.Equal(t, [][]string{{"sh", "-c", "cliphist decode 42 | wl-copy"}}, r.spawns)
	assert.Zero(t, hist.Len())
}

func TestLaunchCopy(t *testing.T) {
	tests := []struct {
		source candidate.SourceKind
		title  string
	}{
		{candidate.Color, "Color Copied"},
		{candidate.Calc, "Result Copied"},
		{candidate.App, "Copied"},
	}
	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			r := &recordingRunner{}
			hist := history.NewMap()
			var copied []string
			res := newTestResolver(r, &fakeWindows{}, &copied)

			effect := res.Launch(context.Background(), Request{Action: "COPY:#FF0000FF", Source: tt.source}, hist)
			assert.Equal(t, EffectCopied, effect)
			assert.Equal(t, []string{"#FF0000FF"}, copied)
			assert.Equal(t, [][]string{{"notify-send", tt.title, "#FF0000FF"}}, r.spawns)
			assert.Zero(t, hist.Len())
		})
	}
}

func TestLaunchCopyClipboardFailureStillNotifies(t *testing.T) {
	r := &recordingRunner{}
	res := New(Options{
		Runner:    r,
		Clipboard: func(string) error { return errors.New("no display") },
	})

	effect := res.Launch(context.Background(), Request{Action: "COPY:4", Source: candidate.Calc}, history.NewMap())
	assert.Equal(t, EffectCopied, effect)
	assert.Len(t, r.spawns, 1)
}

func TestLaunchFocusReuse(t *testing.T) {
	r := &recordingRunner{}
	w := &fakeWindows{windows: []wm.Window{
		{ID: "1", Title: "~", AppID: "foot"},
		{ID: "2", Title: "Mozilla Firefox", AppID: "firefox"},
	}}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, w, &copied)

	req := Request{
		Action:        "firefox %u",
		Source:        candidate.App,
		DesktopID:     "firefox.desktop",
		FocusOnLaunch: true,
	}
	assert.Equal(t, EffectFocused, res.Launch(context.Background(), req, hist))
	assert.Equal(t, []string{"2"}, w.focused)
	assert.Empty(t, r.spawns)
	assert.Equal(t, uint32(1), hist.Count("firefox"))
}

func TestLaunchFocusReuseDisabled(t *testing.T) {
	w := &fakeWindows{windows: []wm.Window{{ID: "2", AppID: "firefox"}}}
	var copied []string

	tests := []struct {
		name string
		req  Request
	}{
		{"flag off", Request{Action: "firefox", Source: candidate.App, DesktopID: "firefox.desktop"}},
		{"no desktop id", Request{Action: "firefox", Source: candidate.App, FocusOnLaunch: true}},
		{"web source", Request{Action: "xdg-open https://firefox.com", Source: candidate.Web, DesktopID: "firefox.desktop", FocusOnLaunch: true}},
		{"file source", Request{Action: "OPEN_PATH:/tmp/firefox", Source: candidate.File, DesktopID: "firefox.desktop", FocusOnLaunch: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRunner{}
			res := newTestResolver(r, w, &copied)
			effect := res.Launch(context.Background(), tt.req, history.NewMap())
			assert.NotEqual(t, EffectFocused, effect)
			assert.Len(t, r.spawns, 1)
		})
	}
	assert.Empty(t, w.focused)
}

func TestLaunchFocusListErrorFallsBackToSpawn(t *testing.T) {
	r := &recordingRunner{}
	w := &fakeWindows{listErr: errors.New("hyprctl: not running")}
	var copied []string
	res := newTestResolver(r, w, &copied)

	req := Request{Action: "firefox", Source: candidate.App, DesktopID: "firefox.desktop", FocusOnLaunch: true}
	assert.Equal(t, EffectSpawned, res.Launch(context.Background(), req, history.NewMap()))
	assert.Len(t, r.spawns, 1)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		window    wm.Window
		desktopID string
		want      bool
	}{
		{wm.Window{AppID: "firefox"}, "firefox.desktop", true},
		{wm.Window{AppID: "Firefox"}, "firefox.desktop", true},
		{wm.Window{AppID: "org.gnome.nautilus.desktop"}, "org.gnome.Nautilus.desktop", true},
		{wm.Window{Title: "Visual Studio Code - code"}, "code.desktop", true},
		{wm.Window{AppID: "code"}, "code-oss.desktop", true},
		{wm.Window{AppID: "foot", Title: "~"}, "firefox.desktop", false},
		{wm.Window{}, "firefox.desktop", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.window, tt.desktopID), "%+v %s", tt.window, tt.desktopID)
	}
}

func TestLaunchOpen(t *testing.T) {
	r := &recordingRunner{}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)
	ctx := context.Background()

	assert.Equal(t, EffectOpened, res.Launch(ctx, Request{Action: `xdg-open "https://example.com"`, Source: candidate.Web}, hist))
	assert.Equal(t, EffectOpened, res.Launch(ctx, Request{Action: "OPEN_PATH:/home/u/notes.txt", Source: candidate.File}, hist))

	assert.Equal(t, [][]string{
		{"xdg-open", "https://example.com"},
		{"xdg-open", "/home/u/notes.txt"},
	}, r.spawns)
	assert.Equal(t, uint32(1), hist.Count("https://example.com"))
	assert.Equal(t, uint32(1), hist.Count("/home/u/notes.txt"))
}

func TestLaunchShell(t *testing.T) {
	r := &recordingRunner{}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)
	ctx := context.Background()

	assert.Equal(t, EffectSpawned, res.Launch(ctx, Request{Action: "app %f", Source: candidate.App}, hist))
	assert.Equal(t, EffectSpawned, res.Launch(ctx, Request{Action: "app %F", Source: candidate.App}, hist))

	assert.Equal(t, uint32(2), hist.Count("app"))
	assert.Equal(t, 1, hist.Len())
	assert.Equal(t, [][]string{
		{"sh", "-c", "setsid app >/dev/null 2>&1 &"},
		{"sh", "-c", "setsid app >/dev/null 2>&1 &"},
	}, r.spawns)
}

func TestLaunchTerminal(t *testing.T) {
	r := &recordingRunner{}
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)
	ctx := context.Background()

	res.Launch(ctx, Request{Action: "htop", Terminal: true, TerminalCommand: "foot"}, history.NewMap())
	res.Launch(ctx, Request{Action: "htop", Terminal: true}, history.NewMap())

	require.Len(t, r.spawns, 2)
	assert.Equal(t, "setsid foot -e htop >/dev/null 2>&1 &", r.spawns[0][2])
	assert.Equal(t, "setsid xterm -e htop >/dev/null 2>&1 &", r.spawns[1][2])
}

func TestLaunchSpawnFailureStillCounts(t *testing.T) {
	r := &recordingRunner{spawnErr: errors.New("exec: sh: not found")}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, &fakeWindows{}, &copied)

	assert.Equal(t, EffectSpawned, res.Launch(context.Background(), Request{Action: "gimp"}, hist))
	assert.Equal(t, uint32(1), hist.Count("gimp"))
}

func TestLaunchInternalActions(t *testing.T) {
	r := &recordingRunner{}
	w := &fakeWindows{}
	hist := history.NewMap()
	var copied []string
	res := newTestResolver(r, w, &copied)
	ctx := context.Background()

	assert.Equal(t, EffectShowHotkeys, res.Launch(ctx, Request{Action: candidate.ShowHotkeys}, hist))
	assert.Equal(t, EffectLoggedOut, res.Launch(ctx, Request{Action: candidate.Logout, Source: candidate.System}, hist))
	assert.Equal(t, 1, w.logouts)
	assert.Empty(t, r.spawns)
	assert.Zero(t, hist.Len())
}

func TestNewRequest(t *testing.T) {
	c := candidate.Candidate{Name: "Foot", Action: "foot", Source: candidate.App, Terminal: true, DesktopID: "foot.desktop"}
	assert.Equal(t, Request{
		Action:          "foot",
		Terminal:        true,
		Source:          candidate.App,
		DesktopID:       "foot.desktop",
		FocusOnLaunch:   true,
		TerminalCommand: "kitty",
	}, NewRequest(c, true, "kitty"))
}
