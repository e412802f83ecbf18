package wm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	out    map[string]string
	spawns [][]string
}

func (r *fakeRunner) Output(_ context.Context, name string, _ ...string) ([]byte, error) {
	out, ok := r.out[name]
	if !ok {
		return nil, errors.New(name + " not running")
	}
	return []byte(out), nil
}

func (r *fakeRunner) Spawn(name string, args ...string) error {
	r.spawns = append(r.spawns, append([]string{name}, args...))
	return nil
}

func (r *fakeRunner) LookPath(string) bool { return true }

func TestDetect(t *testing.T) {
	r := &fakeRunner{}
	tests := []struct {
		env  Env
		want string
	}{
		{Env{CurrentDesktop: "niri"}, "niri"},
		{Env{Session: "Niri"}, "niri"},
		{Env{CurrentDesktop: "Hyprland"}, "hyprland"},
		{Env{HyprlandSignature: "abc"}, "hyprland"},
		{Env{CurrentDesktop: "niri", HyprlandSignature: "abc"}, "niri"},
		{Env{CurrentDesktop: "GNOME"}, "generic"},
		{Env{}, "generic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.env, r).Name(), "%+v", tt.env)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "Hyprland")
	t.Setenv("DESKTOP_SESSION", "hyprland")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "sig")
	t.Setenv("USER", "alice")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{CurrentDesktop: "Hyprland", Session: "hyprland", HyprlandSignature: "sig", User: "alice"}, env)
}

func TestHyprland(t *testing.T) {
	r := &fakeRunner{out: map[string]string{"hyprctl": `[
		{"address": "0x55d1", "title": "Mozilla Firefox", "class": "firefox", "pid": 100},
		{"address": "0x55d2", "title": "~", "class": "foot"}
	]`}}
	h := &Hyprland{runner: r}
	ctx := context.Background()

	windows, err := h.Windows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Window{
		{ID: "0x55d1", Title: "Mozilla Firefox", AppID: "firefox"},
		{ID: "0x55d2", Title: "~", AppID: "foot"},
	}, windows)

	require.NoError(t, h.Focus(ctx, "0x55d1"))
	require.NoError(t, h.Logout(ctx))
	assert.Equal(t, [][]string{
		{"hyprctl", "dispatch", "focuswindow", "address:0x55d1"},
		{"hyprctl", "dispatch", "exit"},
	}, r.spawns)
}

func TestHyprlandBadJSON(t *testing.T) {
	h := &Hyprland{runner: &fakeRunner{out: map[string]string{"hyprctl": "not json"}}}
	_, err := h.Windows(context.Background())
	assert.Error(t, err)
}

func TestNiri(t *testing.T) {
	r := &fakeRunner{out: map[string]string{"niri": `[
		{"id": 12, "title": "Mozilla Firefox", "app_id": "firefox", "is_focused": false},
		{"title": "no id"},
		{"id": 7, "title": null, "app_id": "foot"}
	]`}}
	n := &Niri{runner: r}
	ctx := context.Background()

	windows, err := n.Windows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Window{
		{ID: "12", Title: "Mozilla Firefox", AppID: "firefox"},
		{ID: "7", AppID: "foot"},
	}, windows)

	require.NoError(t, n.Focus(ctx, "12"))
	require.NoError(t, n.CenterCursorOrWindow(ctx))
	require.NoError(t, n.Logout(ctx))
	assert.Equal(t, [][]string{
		{"niri", "msg", "action", "focus-window", "--id", "12"},
		{"niri", "msg", "action", "center-column"},
		{"niri", "msg", "action", "quit"},
	}, r.spawns)
}

func TestGeneric(t *testing.T) {
	r := &fakeRunner{}
	ctx := context.Background()

	g := Detect(Env{User: "bob"}, r)
	windows, err := g.Windows(ctx)
	require.NoError(t, err)
	assert.Empty(t, windows)
	require.NoError(t, g.Focus(ctx, "1"))
	require.NoError(t, g.Logout(ctx))
	assert.Equal(t, [][]string{{"loginctl", "terminate-user", "bob"}}, r.spawns)

	assert.ErrorIs(t, Detect(Env{}, r).Logout(ctx), ErrNoUser)
}
