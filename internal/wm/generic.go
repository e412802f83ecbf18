package wm

import (
	"context"
	"errors"

	"github.com/nhath/centrum/internal/runner"
)

// ErrNoUser is returned when the generic manager cannot tell whose session
// to end.
var ErrNoUser = errors.New("USER is not set")

// Generic is used on desktops without a supported IPC. It sees no windows,
// so launches always spawn.
type Generic struct {
	runner runner.Runner
	user   string
}

func (g *Generic) Name() string { return "generic" }

func (g *Generic) Windows(context.Context) ([]Window, error) { return nil, nil }

func (g *Generic) Focus(context.Context, string) error { return nil }

func (g *Generic) Logout(context.Context) error {
	if g.user == "" {
		return ErrNoUser
	}
	return g.runner.Spawn("loginctl", "terminate-user", g.user)
}

func (g *Generic) CenterCursorOrWindow(context.Context) error { return nil }
