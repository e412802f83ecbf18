package session

import (
	"context"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/color"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/launch"
	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/search"
)

// Key names as reported by the terminal front end
const (
	KeyTab    = "tab"
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyEnter  = "enter"
	KeyDelete = "delete"
	KeyEscape = "esc"
)

// Keymap names the hotkey bound to each launcher command
type Keymap struct {
	Clipboard      string
	ColorPicker    string
	Rename         string
	Icon           string
	HideApp        string
	ToggleHidden   string
	ToggleIconMode string
}

// DefaultKeymap is used for bindings missing from the config. The same keys
// keep working when the config binds a command elsewhere.
var DefaultKeymap = Keymap{
	Clipboard:      "ctrl+z",
	ColorPicker:    "ctrl+g",
	Rename:         "ctrl+r",
	Icon:           "ctrl+e",
	HideApp:        "ctrl+s",
	ToggleHidden:   "ctrl+t",
	ToggleIconMode: "ctrl+o",
}

func (k Keymap) withDefaults() Keymap {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Clipboard, DefaultKeymap.Clipboard)
	fill(&k.ColorPicker, DefaultKeymap.ColorPicker)
	fill(&k.Rename, DefaultKeymap.Rename)
	fill(&k.Icon, DefaultKeymap.Icon)
	fill(&k.HideApp, DefaultKeymap.HideApp)
	fill(&k.ToggleHidden, DefaultKeymap.ToggleHidden)
	fill(&k.ToggleIconMode, DefaultKeymap.ToggleIconMode)
	return k
}

func bound(key, configured, fallback string) bool {
	return key == configured || key == fallback
}

// IsPrintable reports whether key is a single printable character typed
// without modifiers.
func IsPrintable(key string) bool {
	r, size := utf8.DecodeRuneInString(key)
	return size > 0 && size == len(key) && r != utf8.RuneError && unicode.IsPrint(r)
}

// HandleKey applies one keystroke
func (s *Session) HandleKey(ctx context.Context, key string) Outcome {
	if !s.enter() {
		return Outcome{}
	}
	defer s.leave()

	if s.editing != EditNone {
		switch key {
		case KeyEscape:
			s.cancelEdit()
			return Outcome{Handled: true}
		case KeyEnter:
			s.commitEdit()
			return Outcome{Handled: true}
		}
		return Outcome{}
	}

	keys := s.settings.Keys
	switch {
	case key == KeyEscape:
		return Outcome{Handled: true, Close: true}
	case key == KeyDelete:
		return s.deleteSelected(ctx)
	case bound(key, keys.ToggleHidden, DefaultKeymap.ToggleHidden):
		return s.toggleHidden(ctx)
	case bound(key, keys.Rename, DefaultKeymap.Rename) && s.mode == ModeApps:
		if s.startEdit(EditRename) {
			return Outcome{Handled: true}
		}
	case bound(key, keys.Icon, DefaultKeymap.Icon) && s.mode == ModeApps:
		if s.startEdit(EditIcon) {
			return Outcome{Handled: true}
		}
	case bound(key, keys.HideApp, DefaultKeymap.HideApp) && s.mode == ModeApps:
		if s.hideSelected() {
			return Outcome{Handled: true}
		}
	case bound(key, keys.ToggleIconMode, DefaultKeymap.ToggleIconMode):
		return s.toggleIconMode()
	case bound(key, keys.Clipboard, DefaultKeymap.Clipboard):
		return s.toggleClipboard(ctx)
	case bound(key, keys.ColorPicker, DefaultKeymap.ColorPicker):
		return s.toggleColor(ctx)
	case key == KeyTab:
		return s.tab(ctx)
	}

	switch key {
	case KeyRight:
		if s.mode == ModeApps {
			if out, ok := s.completePath(ctx); ok {
				return out
			}
		}
	case KeyEnter:
		return s.commit(ctx)
	}

	if s.mode == ModeColor {
		if s.adjustColor(key) {
			return Outcome{Handled: true}
		}
	}

	switch key {
	case KeyDown:
		s.move(1)
		return Outcome{Handled: true}
	case KeyUp:
		s.move(-1)
		return Outcome{Handled: true}
	}

	if s.mode == ModePower {
		switch key {
		case KeyLeft:
			s.powerIndex = wrapIndex(s.powerIndex-1, len(s.settings.Power))
			return Outcome{Handled: true}
		case KeyRight:
			s.powerIndex = wrapIndex(s.powerIndex+1, len(s.settings.Power))
			return Outcome{Handled: true}
		}
		if IsPrintable(key) {
			s.mode = ModeApps
			s.appIndex = 0
		}
	}
	return Outcome{}
}

func (s *Session) tab(ctx context.Context) Outcome {
	switch s.mode {
	case ModeColor:
		s.colorControl = (s.colorControl + 1) % (ControlRGBButton + 1)
	case ModeApps:
		s.mode = ModePower
		s.powerIndex = 0
	case ModePower:
		s.mode = ModeApps
	case ModeClipboard:
		s.query = ""
		s.resolve(ctx)
		return replaceQuery(s.query)
	}
	return Outcome{Handled: true}
}

// move steps the cursor of the Apps or Clipboard list, stopping at the ends
func (s *Session) move(delta int) {
	var idx *int
	switch s.mode {
	case ModeApps:
		idx = &s.appIndex
	case ModeClipboard:
		idx = &s.clipIndex
	default:
		return
	}
	next := *idx + delta
	if next < 0 || next >= len(s.results) {
		return
	}
	*idx = next
}

func wrapIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	return (idx%n + n) % n
}

func (s *Session) adjustColor(key string) bool {
	c := s.color
	switch s.colorControl {
	case ControlSquare:
		switch key {
		case KeyLeft:
			c = c.AddSaturation(-color.SVStep)
		case KeyRight:
			c = c.AddSaturation(color.SVStep)
		case KeyUp:
			c = c.AddValue(color.SVStep)
		case KeyDown:
			c = c.AddValue(-color.SVStep)
		default:
			return false
		}
	case ControlHue:
		switch key {
		case KeyLeft, KeyDown:
			c = c.AddHue(-color.HueStep)
		case KeyRight, KeyUp:
			c = c.AddHue(color.HueStep)
		default:
			return false
		}
	case ControlAlpha:
		switch key {
		case KeyLeft, KeyDown:
			c = c.AddAlpha(-color.AlphaStep)
		case KeyRight, KeyUp:
			c = c.AddAlpha(color.AlphaStep)
		default:
			return false
		}
	default:
		return false
	}
	s.color = c
	return true
}

// completePath replaces the query with the highlighted path and lists it
func (s *Session) completePath(ctx context.Context) (Outcome, bool) {
	c, ok := s.Selected()
	if !ok || c.Source != candidate.File || s.deps.Completer == nil {
		return Outcome{}, false
	}
	text, ok := s.deps.Completer.Complete(c)
	if !ok {
		return Outcome{}, false
	}
	s.query = text
	s.resolve(ctx)
	return replaceQuery(text), true
}

// commit launches the highlighted entry of the active mode
func (s *Session) commit(ctx context.Context) Outcome {
	var req launch.Request
	switch s.mode {
	case ModeColor:
		value := s.color.Hex()
		if s.colorControl == ControlRGBButton {
			value = s.color.CSS()
		}
		req = launch.Request{Action: candidate.CopyAction(value), Source: candidate.Color}
	case ModePower:
		if s.powerIndex >= len(s.settings.Power) {
			return Outcome{Handled: true}
		}
		c := provider.PowerCandidate(s.settings.Power[s.powerIndex])
		req = launch.Request{Action: c.Action, Source: candidate.System}
	default:
		c, ok := s.Selected()
		if !ok {
			return Outcome{Handled: true}
		}
		req = launch.NewRequest(c, s.settings.FocusOnLaunch, s.settings.Terminal)
	}

	if req.Action == candidate.ShowHotkeys {
		return Outcome{Handled: true, ShowHotkeys: true}
	}

	effect := s.deps.Launcher.Launch(ctx, req, s.deps.History)
	s.logger.Debug("launched", zap.String("action", req.Action), zap.Stringer("effect", effect))
	s.saveUsage()
	return Outcome{Handled: true, Close: true}
}

// deleteSelected forgets the usage history of a file, web or clipboard
// entry and refreshes the list for the unchanged query.
func (s *Session) deleteSelected(ctx context.Context) Outcome {
	c, ok := s.Selected()
	if !ok || !c.HistoryBacked() {
		return Outcome{}
	}
	s.deps.History.Remove(history.Key(c.Action))
	s.saveUsage()

	if s.mode == ModeClipboard {
		s.results = search.FilterClipboard(s.clipboard, s.query)
		s.clipIndex = clampIndex(s.clipIndex, len(s.results))
	} else {
		s.resolve(ctx)
	}
	return Outcome{Handled: true}
}

func (s *Session) toggleClipboard(ctx context.Context) Outcome {
	s.query = ""
	if s.mode == ModeClipboard {
		s.resolve(ctx)
	} else {
		s.mode = ModeClipboard
		if s.deps.Clipboard != nil {
			s.clipboard = s.deps.Clipboard.Entries(ctx)
		}
		s.results = s.clipboard
		s.clipIndex = 0
	}
	return replaceQuery(s.query)
}

func (s *Session) toggleColor(ctx context.Context) Outcome {
	s.query = ""
	if s.mode == ModeColor {
		s.resolve(ctx)
	} else {
		s.mode = ModeColor
		s.colorControl = ControlText
	}
	return replaceQuery(s.query)
}

func (s *Session) toggleHidden(ctx context.Context) Outcome {
	s.settings.ShowHidden = !s.settings.ShowHidden
	s.reloadApps()
	if s.mode == ModeApps || s.mode == ModePower {
		s.resolve(ctx)
	}
	return Outcome{Handled: true}
}

func (s *Session) toggleIconMode() Outcome {
	if s.settings.IconMode == provider.IconModeSystem {
		s.settings.IconMode = provider.IconModeNerd
	} else {
		s.settings.IconMode = provider.IconModeSystem
	}
	if s.deps.SaveIconMode != nil {
		if err := s.deps.SaveIconMode(s.settings.IconMode); err != nil {
			s.logger.Warn("saving icon mode failed", zap.Error(err))
		}
	}
	s.reloadApps()
	return Outcome{Handled: true}
}

func replaceQuery(text string) Outcome {
	return Outcome{Handled: true, Query: &text}
}
