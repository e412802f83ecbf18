// Package launch executes the action of a committed candidate.
package launch

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/runner"
	"github.com/nhath/centrum/internal/wm"
)

// Effect reports what Launch did
type Effect int

const (
	EffectNone Effect = iota
	EffectClipboardRestored
	EffectCopied
	EffectFocused
	EffectOpened
	EffectSpawned
	EffectLoggedOut
	EffectShowHotkeys
)

func (e Effect) String() string {
	switch e {
	case EffectClipboardRestored:
		return "clipboard-restored"
	case EffectCopied:
		return "copied"
	case EffectFocused:
		return "focused"
	case EffectOpened:
		return "opened"
	case EffectSpawned:
		return "spawned"
	case EffectLoggedOut:
		return "logged-out"
	case EffectShowHotkeys:
		return "show-hotkeys"
	default:
		return "none"
	}
}

// DefaultTerminal is used for terminal apps when no terminal is configured
const DefaultTerminal = "xterm"

// Request describes one launch
type Request struct {
	Action    string
	Terminal  bool
	Source    candidate.SourceKind
	DesktopID string

	FocusOnLaunch   bool
	TerminalCommand string
}

// NewRequest builds a Request for c
func NewRequest(c candidate.Candidate, focusOnLaunch bool, terminal string) Request {
	return Request{
		Action:          c.Action,
		Terminal:        c.Terminal,
		Source:          c.Source,
		DesktopID:       c.DesktopID,
		FocusOnLaunch:   focusOnLaunch,
		TerminalCommand: terminal,
	}
}

// Options configures a Resolver
type Options struct {
	Runner  runner.Runner
	Windows wm.Manager
	// Clipboard writes text to the system clipboard. Defaults to
	// github.com/atotto/clipboard.
	Clipboard func(string) error
	Logger    *zap.Logger
}

// Resolver interprets action strings
type Resolver struct {
	runner    runner.Runner
	windows   wm.Manager
	clipboard func(string) error
	logger    *zap.Logger
}

// New creates a Resolver
func New(opts Options) *Resolver {
	r := &Resolver{
		runner:    opts.Runner,
		windows:   opts.Windows,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
	}
	if r.clipboard == nil {
		r.clipboard = clipboard.WriteAll
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Launch executes req. Launches of apps, paths and URLs record one use of
// the action's normalized key in hist; clipboard and copy actions do not.
// Failures to start processes are logged and otherwise ignored.
func (r *Resolver) Launch(ctx context.Context, req Request, hist *history.Map) Effect {
	action := candidate.ParseAction(req.Action)
	switch action.Kind {
	case candidate.ActionNone:
		return EffectNone
	case candidate.ActionShowHotkeys:
		return EffectShowHotkeys
	case candidate.ActionLogout:
		if r.windows != nil {
			if err := r.windows.Logout(ctx); err != nil {
				r.logger.Warn("logout failed", zap.Error(err))
			}
		}
		return EffectLoggedOut
	case candidate.ActionClipboardSet:
		r.spawn("sh", "-c", fmt.Sprintf("cliphist decode %s | wl-copy", action.Value))
		return EffectClipboardRestored
	case candidate.ActionCopy:
		if err := r.clipboard(action.Value); err != nil {
			r.logger.Warn("clipboard write failed", zap.Error(err))
		}
		r.spawn("notify-send", copyTitle(req.Source), action.Value)
		return EffectCopied
	}

	key := history.Normalize(action.Value)

	if r.focusExisting(ctx, req) {
		increment(hist, key)
		return EffectFocused
	}

	if action.Kind == candidate.ActionOpen {
		r.spawn("xdg-open", action.Value)
		increment(hist, key)
		return EffectOpened
	}

	increment(hist, key)
	r.spawn("sh", "-c", shellCommand(action.Value, req.Terminal, req.TerminalCommand))
	return EffectSpawned
}

// focusExisting focuses a running window of the requested application
func (r *Resolver) focusExisting(ctx context.Context, req Request) bool {
	if !req.FocusOnLaunch || req.DesktopID == "" || r.windows == nil {
		return false
	}
	switch req.Source {
	case candidate.File, candidate.Web, candidate.Calc:
		return false
	}

	windows, err := r.windows.Windows(ctx)
	if err != nil {
		r.logger.Debug("listing windows failed", zap.String("wm", r.windows.Name()), zap.Error(err))
		return false
	}
	for _, w := range windows {
		if !Matches(w, req.DesktopID) {
			continue
		}
		if err := r.windows.Focus(ctx, w.ID); err != nil {
			r.logger.Warn("focus failed", zap.String("window", w.ID), zap.Error(err))
		}
		return true
	}
	return false
}

// Matches reports whether window w belongs to the application desktopID
func Matches(w wm.Window, desktopID string) bool {
	did := strings.ToLower(desktopID)
	base := strings.TrimSuffix(did, ".desktop")
	appID := strings.ToLower(w.AppID)
	title := strings.ToLower(w.Title)
	return appID == base ||
		appID == did ||
		strings.Contains(title, base) ||
		(appID != "" && strings.Contains(base, appID))
}

func shellCommand(cmd string, terminal bool, terminalCmd string) string {
	cmd = history.StripPlaceholders(cmd)
	if terminal {
		if terminalCmd == "" {
			terminalCmd = DefaultTerminal
		}
		return fmt.Sprintf("setsid %s -e %s >/dev/null 2>&1 &", terminalCmd, cmd)
	}
	return fmt.Sprintf("setsid %s >/dev/null 2>&1 &", cmd)
}

func copyTitle(source candidate.SourceKind) string {
	switch source {
	case candidate.Color:
		return "Color Copied"
	case candidate.Calc:
		return "Result Copied"
	default:
		return "Copied"
	}
}

func (r *Resolver) spawn(name string, args ...string) {
	if err := r.runner.Spawn(name, args...); err != nil {
		r.logger.Warn("spawn failed", zap.String("cmd", name), zap.Strings("args", args), zap.Error(err))
	}
}

func increment(hist *history.Map, key string) {
	if hist != nil {
		hist.Increment(key)
	}
}
