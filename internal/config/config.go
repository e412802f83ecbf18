// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/runner"
	"github.com/nhath/centrum/internal/session"
)

// ErrUnknownEngine reports a search engine the web provider does not know.
var ErrUnknownEngine = errors.New("unknown search engine")

// ErrUnknownIconMode reports an icon mode other than "nerd" or "system".
var ErrUnknownIconMode = errors.New("unknown icon mode")

// Config represents the application configuration
type Config struct {
	SearchEngine  string        `toml:"search_engine"`
	Terminal      string        `toml:"terminal"`
	FocusOnLaunch bool          `toml:"focus_on_launch"`
	IconMode      string        `toml:"icon_mode"`
	ShowHotkeys   bool          `toml:"show_hotkeys"`
	ShowHidden    bool          `toml:"show_hidden"`
	PowerOptions  []PowerOption `toml:"power_options"`
	Theme         Theme         `toml:"theme_colors"`
	Keys          KeyMap        `toml:"keys"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Highlight     string `toml:"highlight"`
	Error         string `toml:"error"`
	BgPrimary     string `toml:"bg_primary"`
	BorderColor   string `toml:"border"`
	SelectedBg    string `toml:"selected_bg"`
}

// KeyMap defines hotkeys, written the way the terminal reports them
// (e.g. "ctrl+z").
type KeyMap struct {
	Clipboard      string `toml:"clipboard"`
	ColorPicker    string `toml:"color_picker"`
	Rename         string `toml:"rename"`
	Icon           string `toml:"icon"`
	HideApp        string `toml:"hide_app"`
	ToggleHidden   string `toml:"toggle_hidden"`
	ToggleIconMode string `toml:"toggle_icon_mode"`
}

// PowerOption is an entry of the power menu
type PowerOption struct {
	Class   string `toml:"class"` // shutdown-btn, reboot-btn, logout-btn, theme-btn
	Command string `toml:"command"`
	Icon    string `toml:"icon,omitempty"`
}

// Terminals are tried in this order when no terminal is configured
var Terminals = []string{"kitty", "alacritty", "ghostty", "foot", "wezterm", "gnome-terminal", "konsole", "xterm"}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		SearchEngine:  "google",
		Terminal:      "",
		FocusOnLaunch: true,
		IconMode:      provider.IconModeNerd,
		ShowHotkeys:   true,
		ShowHidden:    false,
		PowerOptions: []PowerOption{
			{Class: "shutdown-btn", Command: "systemctl poweroff"},
			{Class: "reboot-btn", Command: "systemctl reboot"},
			{Class: "logout-btn", Command: "LOGOUT"},
		},
		Theme: Theme{
			// Nord
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Highlight:     "#8FBCBB",
			Error:         "#BF616A",
			BgPrimary:     "#2E3440",
			BorderColor:   "#4C566A",
			SelectedBg:    "#434C5E",
		},
		Keys: KeyMap{
			Clipboard:      session.DefaultKeymap.Clipboard,
			ColorPicker:    session.DefaultKeymap.ColorPicker,
			Rename:         session.DefaultKeymap.Rename,
			Icon:           session.DefaultKeymap.Icon,
			HideApp:        session.DefaultKeymap.HideApp,
			ToggleHidden:   session.DefaultKeymap.ToggleHidden,
			ToggleIconMode: session.DefaultKeymap.ToggleIconMode,
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("centrum/config.toml")
}

// Load loads the config from disk or creates default
func Load(logger *zap.Logger) (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path, logger)
}

// LoadFile loads the config at path, writing the defaults there on first
// run. Keys missing from an existing file are filled in from the defaults
// and written back so the user can see and edit them. Settings naming an
// unknown engine or icon mode are logged and replaced by the defaults.
func LoadFile(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveFile(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if applyDefaults(&cfg, md) {
		// Proceed with in-memory defaults even if save fails
		_ = cfg.SaveFile(path)
	}

	for _, err := range cfg.replaceUnknown() {
		logger.Warn("invalid setting, using default", zap.String("path", path), zap.Error(err))
	}
	return &cfg, nil
}

// applyDefaults fills every setting the file does not define and reports
// whether anything was filled.
func applyDefaults(cfg *Config, md toml.MetaData) bool {
	def := DefaultConfig()
	fields := []struct {
		key []string
		set func()
	}{
		{[]string{"search_engine"}, func() { cfg.SearchEngine = def.SearchEngine }},
		{[]string{"terminal"}, func() { cfg.Terminal = def.Terminal }},
		{[]string{"focus_on_launch"}, func() { cfg.FocusOnLaunch = def.FocusOnLaunch }},
		{[]string{"icon_mode"}, func() { cfg.IconMode = def.IconMode }},
		{[]string{"show_hotkeys"}, func() { cfg.ShowHotkeys = def.ShowHotkeys }},
		{[]string{"show_hidden"}, func() { cfg.ShowHidden = def.ShowHidden }},
		{[]string{"power_options"}, func() { cfg.PowerOptions = def.PowerOptions }},
		{[]string{"theme_colors"}, func() { cfg.Theme = def.Theme }},
		{[]string{"keys", "clipboard"}, func() { cfg.Keys.Clipboard = def.Keys.Clipboard }},
		{[]string{"keys", "color_picker"}, func() { cfg.Keys.ColorPicker = def.Keys.ColorPicker }},
		{[]string{"keys", "rename"}, func() { cfg.Keys.Rename = def.Keys.Rename }},
		{[]string{"keys", "icon"}, func() { cfg.Keys.Icon = def.Keys.Icon }},
		{[]string{"keys", "hide_app"}, func() { cfg.Keys.HideApp = def.Keys.HideApp }},
		{[]string{"keys", "toggle_hidden"}, func() { cfg.Keys.ToggleHidden = def.Keys.ToggleHidden }},
		{[]string{"keys", "toggle_icon_mode"}, func() { cfg.Keys.ToggleIconMode = def.Keys.ToggleIconMode }},
	}

	updated := false
	for _, f := range fields {
		if !md.IsDefined(f.key...) {
			f.set()
			updated = true
		}
	}
	return updated
}

// Validate checks the settings that select behavior by name
func (c *Config) Validate() error {
	if !provider.KnownEngine(c.SearchEngine) {
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.SearchEngine)
	}
	if c.IconMode != provider.IconModeNerd && c.IconMode != provider.IconModeSystem {
		return fmt.Errorf("%w: %q", ErrUnknownIconMode, c.IconMode)
	}
	return nil
}

// replaceUnknown swaps every setting Validate would reject for its default
// and returns one error per replaced setting.
func (c *Config) replaceUnknown() []error {
	def := DefaultConfig()
	var errs []error
	if !provider.KnownEngine(c.SearchEngine) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownEngine, c.SearchEngine))
		c.SearchEngine = def.SearchEngine
	}
	if c.IconMode != provider.IconModeNerd && c.IconMode != provider.IconModeSystem {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownIconMode, c.IconMode))
		c.IconMode = def.IconMode
	}
	return errs
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path
func (c *Config) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// DetectTerminal returns the configured terminal, or the first of Terminals
// found on PATH, or "xterm".
func (c *Config) DetectTerminal(r runner.Runner) string {
	if c.Terminal != "" {
		return c.Terminal
	}
	for _, t := range Terminals {
		if r.LookPath(t) {
			return t
		}
	}
	return "xterm"
}

// Power converts the configured power menu for the providers
func (c *Config) Power() []provider.PowerOption {
	out := make([]provider.PowerOption, len(c.PowerOptions))
	for i, p := range c.PowerOptions {
		out[i] = provider.PowerOption{Class: p.Class, Command: p.Command, Icon: p.Icon}
	}
	return out
}

// Keymap converts the configured hotkeys for the session
func (c *Config) Keymap() session.Keymap {
	return session.Keymap{
		Clipboard:      c.Keys.Clipboard,
		ColorPicker:    c.Keys.ColorPicker,
		Rename:         c.Keys.Rename,
		Icon:           c.Keys.Icon,
		HideApp:        c.Keys.HideApp,
		ToggleHidden:   c.Keys.ToggleHidden,
		ToggleIconMode: c.Keys.ToggleIconMode,
	}
}
