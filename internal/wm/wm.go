// Package wm talks to the running window manager: listing and focusing
// windows, ending the session and centering the launcher.
package wm

import (
	"context"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/nhath/centrum/internal/runner"
)

// Window is a toplevel window reported by the compositor
type Window struct {
	ID    string
	Title string
	AppID string
}

// Manager is the window focus capability of one desktop environment
type Manager interface {
	Name() string
	Windows(ctx context.Context) ([]Window, error)
	Focus(ctx context.Context, id string) error
	Logout(ctx context.Context) error
	CenterCursorOrWindow(ctx context.Context) error
}

// Env holds the environment variables used to pick a Manager
type Env struct {
	CurrentDesktop    string `envconfig:"XDG_CURRENT_DESKTOP"`
	Session           string `envconfig:"DESKTOP_SESSION"`
	HyprlandSignature string `envconfig:"HYPRLAND_INSTANCE_SIGNATURE"`
	User              string `envconfig:"USER"`
}

// LoadEnv reads Env from the process environment
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("failed to read desktop environment: %w", err)
	}
	return env, nil
}

// Detect picks the Manager for env: niri, then Hyprland, else the generic
// fallback that cannot see windows.
func Detect(env Env, r runner.Runner) Manager {
	desktop := strings.ToLower(env.CurrentDesktop)
	session := strings.ToLower(env.Session)
	switch {
	case strings.Contains(desktop, "niri") || strings.Contains(session, "niri"):
		return &Niri{runner: r}
	case strings.Contains(desktop, "hyprland") || env.HyprlandSignature != "":
		return &Hyprland{runner: r}
	default:
		return &Generic{runner: r, user: env.User}
	}
}
