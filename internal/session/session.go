// Package session holds the launcher's selection and editing state and
// applies keystrokes and query changes to it. A Session has a single owner:
// the front end's event loop.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/color"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/launch"
	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/search"
)

// Mode is the active selection list
type Mode int

const (
	ModeApps Mode = iota
	ModePower
	ModeClipboard
	ModeColor
)

func (m Mode) String() string {
	switch m {
	case ModePower:
		return "power"
	case ModeClipboard:
		return "clipboard"
	case ModeColor:
		return "color"
	default:
		return "apps"
	}
}

// Editing is the inline edit overlay shown on top of the app list
type Editing int

const (
	EditNone Editing = iota
	EditRename
	EditIcon
)

// ColorControl is the focused element of the color picker
type ColorControl int

const (
	ControlText ColorControl = iota
	ControlSquare
	ControlHue
	ControlAlpha
	ControlHexButton
	ControlRGBButton
)

// Searcher resolves query text into candidates
type Searcher interface {
	Resolve(ctx context.Context, text string, apps []candidate.Candidate, hist *history.Map) search.Result
}

// AppLoader lists installed applications
type AppLoader interface {
	Load(opts provider.LoadOptions) []provider.App
}

// ClipboardSource lists clipboard history entries
type ClipboardSource interface {
	Entries(ctx context.Context) []candidate.Candidate
}

// Launcher executes actions
type Launcher interface {
	Launch(ctx context.Context, req launch.Request, hist *history.Map) launch.Effect
}

// PathCompleter turns a file candidate into query text
type PathCompleter interface {
	Complete(c candidate.Candidate) (string, bool)
}

// Store persists usage counters and overrides
type Store interface {
	SaveUsage(m *history.Map) error
	SetOverride(id string, o history.Override) error
}

// Settings are the user preferences a Session reads
type Settings struct {
	FocusOnLaunch bool
	Terminal      string
	IconMode      string
	ShowHidden    bool
	Power         []provider.PowerOption
	Keys          Keymap
}

// Deps are the collaborators of a Session
type Deps struct {
	Search    Searcher
	Apps      AppLoader
	Clipboard ClipboardSource
	Launcher  Launcher
	Completer PathCompleter
	Store     Store

	History   *history.Map
	Overrides history.Overrides

	// SaveIconMode persists a toggled icon mode. Optional.
	SaveIconMode func(mode string) error

	Logger *zap.Logger
}

// Outcome tells the front end what to do after an event. When Handled is
// false the key belongs to the focused text field.
type Outcome struct {
	Handled     bool
	Close       bool
	ShowHotkeys bool

	// Query replaces the search field text when non-nil
	Query *string
}

// Session is the launcher state machine
type Session struct {
	deps     Deps
	settings Settings
	logger   *zap.Logger

	mode       Mode
	editing    Editing
	editingID  string
	editValue  string
	query      string
	apps       []provider.App
	appCands   []candidate.Candidate
	results    []candidate.Candidate
	clipboard  []candidate.Candidate
	appIndex   int
	clipIndex  int
	powerIndex int

	color        color.HSVA
	colorControl ColorControl

	busy bool
}

// New creates a Session, loads the app list and resolves the empty query
func New(ctx context.Context, deps Deps, settings Settings) *Session {
	if deps.History == nil {
		deps.History = history.NewMap()
	}
	if deps.Overrides == nil {
		deps.Overrides = make(history.Overrides)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if settings.IconMode == "" {
		settings.IconMode = provider.IconModeNerd
	}
	settings.Keys = settings.Keys.withDefaults()

	s := &Session{
		deps:     deps,
		settings: settings,
		logger:   deps.Logger,
		color:    color.Default,
	}
	s.reloadApps()
	s.resolve(ctx)
	return s
}

func (s *Session) Mode() Mode                 { return s.mode }
func (s *Session) Editing() Editing           { return s.editing }
func (s *Session) EditValue() string          { return s.editValue }
func (s *Session) Query() string              { return s.query }
func (s *Session) Color() color.HSVA          { return s.color }
func (s *Session) ColorControl() ColorControl { return s.colorControl }
func (s *Session) ShowHidden() bool           { return s.settings.ShowHidden }
func (s *Session) IconMode() string           { return s.settings.IconMode }
func (s *Session) History() *history.Map      { return s.deps.History }

// PowerOptions returns the configured power commands
func (s *Session) PowerOptions() []provider.PowerOption {
	return s.settings.Power
}

// Results returns the list shown for the active mode
func (s *Session) Results() []candidate.Candidate {
	return s.results
}

// Index returns the highlighted position in the active list
func (s *Session) Index() int {
	switch s.mode {
	case ModePower:
		return s.powerIndex
	case ModeClipboard:
		return s.clipIndex
	default:
		return s.appIndex
	}
}

// Selected returns the highlighted candidate of the Apps or Clipboard list
func (s *Session) Selected() (candidate.Candidate, bool) {
	var idx int
	switch s.mode {
	case ModeApps:
		idx = s.appIndex
	case ModeClipboard:
		idx = s.clipIndex
	default:
		return candidate.Candidate{}, false
	}
	if idx < 0 || idx >= len(s.results) {
		return candidate.Candidate{}, false
	}
	return s.results[idx], true
}

// SystemIcon returns the theme icon name of an application
func (s *Session) SystemIcon(desktopID string) string {
	for _, a := range s.apps {
		if a.DesktopID == desktopID {
			return a.SystemIcon
		}
	}
	return ""
}

// SetQuery applies a change of the search field. It is ignored while the
// edit overlay is open.
func (s *Session) SetQuery(ctx context.Context, text string) Outcome {
	if !s.enter() {
		return Outcome{}
	}
	defer s.leave()

	if s.editing != EditNone {
		return Outcome{}
	}
	s.query = text

	if s.mode == ModeClipboard {
		s.results = search.FilterClipboard(s.clipboard, text)
		s.clipIndex = 0
		return Outcome{}
	}
	// Clearing the field keeps an open color picker open
	if s.mode == ModeColor && text == "" {
		return Outcome{}
	}
	s.resolve(ctx)
	return Outcome{}
}

// Refresh resolves the unchanged query again. The front end calls it once
// typing pauses so results skipped by the calculator's debounce catch up.
func (s *Session) Refresh(ctx context.Context) {
	if !s.enter() {
		return
	}
	defer s.leave()

	if s.editing != EditNone || s.mode != ModeApps {
		return
	}
	idx := s.appIndex
	s.resolve(ctx)
	s.appIndex = clampIndex(idx, len(s.results))
}

// SetEditValue records the edit overlay's field text
func (s *Session) SetEditValue(text string) {
	if s.editing != EditNone {
		s.editValue = text
	}
}

func (s *Session) enter() bool {
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) leave() { s.busy = false }

// resolve recomputes results for the current query in Apps or Color mode
func (s *Session) resolve(ctx context.Context) {
	res := s.deps.Search.Resolve(ctx, s.query, s.appCands, s.deps.History)
	if res.ColorMode {
		s.mode = ModeColor
		if res.Color != nil {
			s.color = *res.Color
		}
		return
	}
	s.mode = ModeApps
	s.results = res.Candidates
	s.appIndex = 0
}

func (s *Session) reloadApps() {
	s.apps = s.deps.Apps.Load(provider.LoadOptions{
		ShowHidden: s.settings.ShowHidden,
		Overrides:  s.deps.Overrides,
	})
	s.appCands = provider.Candidates(s.apps)
}

func (s *Session) saveUsage() {
	if s.deps.Store == nil {
		return
	}
	if err := s.deps.Store.SaveUsage(s.deps.History); err != nil {
		s.logger.Warn("saving usage failed", zap.Error(err))
	}
}

func (s *Session) saveOverride(id string) {
	o := s.deps.Overrides[id]
	if o.IsZero() {
		delete(s.deps.Overrides, id)
	}
	if s.deps.Store == nil {
		return
	}
	if err := s.deps.Store.SetOverride(id, o); err != nil {
		s.logger.Warn("saving override failed", zap.String("id", id), zap.Error(err))
	}
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
