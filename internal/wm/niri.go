package wm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/nhath/centrum/internal/runner"
)

// Niri drives `niri msg`
type Niri struct {
	runner runner.Runner
}

type niriWindow struct {
	ID    *uint64 `json:"id"`
	Title string  `json:"title"`
	AppID string  `json:"app_id"`
}

func (n *Niri) Name() string { return "niri" }

func (n *Niri) Windows(ctx context.Context) ([]Window, error) {
	out, err := n.runner.Output(ctx, "niri", "msg", "--json", "windows")
	if err != nil {
		return nil, err
	}
	var raw []niriWindow
	if err := sonic.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("decode niri windows: %w", err)
	}
	windows := make([]Window, 0, len(raw))
	for _, w := range raw {
		if w.ID == nil {
			continue
		}
		windows = append(windows, Window{ID: strconv.FormatUint(*w.ID, 10), Title: w.Title, AppID: w.AppID})
	}
	return windows, nil
}

func (n *Niri) Focus(_ context.Context, id string) error {
	return n.runner.Spawn("niri", "msg", "action", "focus-window", "--id", id)
}

func (n *Niri) Logout(context.Context) error {
	return n.runner.Spawn("niri", "msg", "action", "quit")
}

func (n *Niri) CenterCursorOrWindow(context.Context) error {
	return n.runner.Spawn("niri", "msg", "action", "center-column")
}
