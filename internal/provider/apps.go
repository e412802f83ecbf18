// Package provider produces candidates for a query from the individual
// sources the launcher searches: installed applications, files, the web,
// the calculator, clipboard history and power commands.
package provider

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/icons"
)

// DesktopEntry is an installed application as reported by a Registry
type DesktopEntry struct {
	ID       string
	Name     string
	Exec     string
	Icon     string
	Terminal bool

	// ShouldShow is false for NoDisplay entries and entries restricted to
	// other desktops.
	ShouldShow bool
}

// Registry lists installed applications
type Registry interface {
	Entries() ([]DesktopEntry, error)
}

// IconMode selects how application icons are presented
const (
	IconModeNerd   = "nerd"
	IconModeSystem = "system"
)

// LoadOptions controls how the app list is built
type LoadOptions struct {
	// ShowHidden lists only hidden applications instead of visible ones.
	ShowHidden bool
	Overrides  history.Overrides
}

// App is an application candidate together with its system icon name,
// which the front end uses in system icon mode.
type App struct {
	candidate.Candidate
	SystemIcon string
}

// AppIndex loads installed applications and applies user overrides
type AppIndex struct {
	registry Registry
	logger   *zap.Logger
}

// NewAppIndex creates an AppIndex reading from registry
func NewAppIndex(registry Registry, logger *zap.Logger) *AppIndex {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppIndex{registry: registry, logger: logger}
}

// Load returns every application visible under opts, in registry order.
func (a *AppIndex) Load(opts LoadOptions) []App {
	entries, err := a.registry.Entries()
	if err != nil {
		a.logger.Debug("listing applications failed", zap.Error(err))
		return nil
	}

	apps := make([]App, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		var icon *string
		systemIcon := e.Icon

		ovr, found := opts.Overrides.Lookup(e.ID, e.Name)
		hidden := !e.ShouldShow
		if found {
			if ovr.Hidden != nil {
				hidden = *ovr.Hidden
			}
			if ovr.Name != nil {
				name = *ovr.Name
			}
			icon = ovr.Icon
			if ovr.SystemIcon != nil {
				systemIcon = *ovr.SystemIcon
			}
		}
		if hidden != opts.ShowHidden {
			continue
		}

		glyph := icons.ForApp(name)
		if icon != nil {
			glyph = *icon
		}
		apps = append(apps, App{
			Candidate: candidate.Candidate{
				Name:      name,
				Action:    e.Exec,
				Icon:      glyph,
				Source:    candidate.App,
				Terminal:  e.Terminal,
				DesktopID: e.ID,
			},
			SystemIcon: systemIcon,
		})
	}
	return apps
}

// Candidates strips the system icon information from apps
func Candidates(apps []App) []candidate.Candidate {
	out := make([]candidate.Candidate, len(apps))
	for i, app := range apps {
		out[i] = app.Candidate
	}
	return out
}

type appNames []candidate.Candidate

func (s appNames) String(i int) string { return s[i].Name }
func (s appNames) Len() int            { return len(s) }

// Match fuzzy-matches query against every app name. Results are ordered by
// descending score, then by descending usage of the app's command; equal
// apps keep their input order. An empty query matches nothing.
func Match(apps []candidate.Candidate, query string, hist *history.Map) []candidate.Candidate {
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, appNames(apps))
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		ui, uj := usage(hist, apps[matches[i].Index]), usage(hist, apps[matches[j].Index])
		if ui != uj {
			return ui > uj
		}
		return matches[i].Index < matches[j].Index
	})

	out := make([]candidate.Candidate, len(matches))
	for i, m := range matches {
		out[i] = apps[m.Index]
	}
	return out
}

// ByUsage returns apps ordered by descending usage; ties keep input order.
func ByUsage(apps []candidate.Candidate, hist *history.Map) []candidate.Candidate {
	out := append([]candidate.Candidate(nil), apps...)
	sort.SliceStable(out, func(i, j int) bool {
		return usage(hist, out[i]) > usage(hist, out[j])
	})
	return out
}

func usage(hist *history.Map, c candidate.Candidate) uint32 {
	if hist == nil {
		return 0
	}
	return hist.Count(history.Key(c.Action))
}
