// internal/ui/model.go
// Package ui is the terminal front end. Its Update loop is the only writer of
// the launcher session.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/config"
	"github.com/nhath/centrum/internal/session"
	"github.com/nhath/centrum/internal/wm"
)

const (
	searchPlaceholder    = "Search..."
	clipboardPlaceholder = "Clipboard Search..."
	colorPlaceholder     = "#RRGGBBAA or rgba(r, g, b, a)"

	// centerDelay gives the compositor time to map the window before it is
	// centered.
	centerDelay = 400 * time.Millisecond
)

// Options are the collaborators of a Model
type Options struct {
	Config  *config.Config
	Session *session.Session

	// Windows centers the launcher after startup. Optional.
	Windows wm.Manager

	// SaveConfig persists preferences changed during the run. Defaults to
	// (*config.Config).Save.
	SaveConfig func(*config.Config) error

	Logger *zap.Logger
}

// Model is the root Bubble Tea model
type Model struct {
	ctx context.Context

	width, height int

	config     *config.Config
	keys       session.Keymap
	session    *session.Session
	windows    wm.Manager
	saveConfig func(*config.Config) error
	logger     *zap.Logger

	// Inputs
	search textinput.Model
	edit   textinput.Model

	// Popup state
	showHelp bool

	// Debounce
	debounceID int

	quitting bool
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SaveConfig == nil {
		opts.SaveConfig = (*config.Config).Save
	}

	si := textinput.New()
	si.Prompt = "  "
	si.PromptStyle = PromptStyle
	si.Placeholder = searchPlaceholder
	si.CharLimit = 512
	si.Focus()

	ei := textinput.New()
	ei.Prompt = "> "
	ei.PromptStyle = PromptStyle
	ei.CharLimit = 256
	ei.Width = 36

	return Model{
		ctx:        ctx,
		config:     opts.Config,
		keys:       opts.Config.Keymap(),
		session:    opts.Session,
		windows:    opts.Windows,
		saveConfig: opts.SaveConfig,
		logger:     opts.Logger,
		search:     si,
		edit:       ei,
		showHelp:   opts.Config.ShowHotkeys,
	}
}

// Init starts the cursor blink and schedules window centering
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.windows != nil {
		cmds = append(cmds, tea.Tick(centerDelay, func(time.Time) tea.Msg {
			return centerMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles one message
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DebounceMsg:
		if msg.ID == m.debounceID {
			m.session.Refresh(m.ctx)
		}
		return m, nil

	case centerMsg:
		if err := m.windows.CenterCursorOrWindow(m.ctx); err != nil {
			m.logger.Debug("centering launcher failed", zap.Error(err))
		}
		return m, nil
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	if m.session.Editing() != session.EditNone {
		m.edit, cmd = m.edit.Update(msg)
	} else {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// quit persists preferences changed during the run and exits
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.config.ShowHidden = m.session.ShowHidden()
	m.config.IconMode = m.session.IconMode()
	if err := m.saveConfig(m.config); err != nil {
		m.logger.Warn("saving config failed", zap.Error(err))
	}
	return m, tea.Quit
}
