package wm

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/nhath/centrum/internal/runner"
)

// Hyprland drives hyprctl
type Hyprland struct {
	runner runner.Runner
}

type hyprClient struct {
	Address string `json:"address"`
	Title   string `json:"title"`
	Class   string `json:"class"`
}

func (h *Hyprland) Name() string { return "hyprland" }

func (h *Hyprland) Windows(ctx context.Context) ([]Window, error) {
	out, err := h.runner.Output(ctx, "hyprctl", "clients", "-j")
	if err != nil {
		return nil, err
	}
	var clients []hyprClient
	if err := sonic.Unmarshal(out, &clients); err != nil {
		return nil, fmt.Errorf("decode hyprctl clients: %w", err)
	}
	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		windows = append(windows, Window{ID: c.Address, Title: c.Title, AppID: c.Class})
	}
	return windows, nil
}

func (h *Hyprland) Focus(_ context.Context, id string) error {
	return h.runner.Spawn("hyprctl", "dispatch", "focuswindow", "address:"+id)
}

func (h *Hyprland) Logout(context.Context) error {
	return h.runner.Spawn("hyprctl", "dispatch", "exit")
}

func (h *Hyprland) CenterCursorOrWindow(context.Context) error { return nil }
