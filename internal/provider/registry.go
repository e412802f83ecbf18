package provider

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"gopkg.in/ini.v1"
)

const desktopSection = "Desktop Entry"

// XDGRegistry reads freedesktop .desktop files from the XDG application
// directories. Earlier directories shadow later ones for the same id.
type XDGRegistry struct {
	Dirs []string
	// Desktop is the current desktop, matched against OnlyShowIn/NotShowIn.
	Desktop []string
}

// NewXDGRegistry uses the standard application directories and the
// desktops named in $XDG_CURRENT_DESKTOP.
func NewXDGRegistry() *XDGRegistry {
	var desktops []string
	for _, d := range strings.Split(os.Getenv("XDG_CURRENT_DESKTOP"), ":") {
		if d != "" {
			desktops = append(desktops, d)
		}
	}
	return &XDGRegistry{Dirs: xdg.ApplicationDirs, Desktop: desktops}
}

func (r *XDGRegistry) Entries() ([]DesktopEntry, error) {
	seen := make(map[string]bool)
	var entries []DesktopEntry
	var errs []error

	for _, dir := range r.Dirs {
		files, err := desktopFiles(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		for _, rel := range files {
			id := strings.ReplaceAll(rel, "/", "-")
			if seen[id] {
				continue
			}
			seen[id] = true

			entry, ok, err := parseDesktopFile(filepath.Join(dir, rel), r.Desktop)
			if err != nil || !ok {
				continue
			}
			entry.ID = id
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return entries, nil
}

// desktopFiles returns the .desktop files under dir as sorted slash
// separated relative paths.
func desktopFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var files []string
	conf := fastwalk.Config{Follow: true}
	err := fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match("**/*.desktop", rel); ok {
			mu.Lock()
			files = append(files, rel)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// parseDesktopFile reads one entry. ok is false for entries that are not
// launchable applications.
func parseDesktopFile(path string, desktops []string) (DesktopEntry, bool, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		SkipUnrecognizableLines: true,
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return DesktopEntry{}, false, err
	}
	return desktopEntryFrom(f, desktops)
}

func desktopEntryFrom(f *ini.File, desktops []string) (DesktopEntry, bool, error) {
	sec, err := f.GetSection(desktopSection)
	if err != nil {
		return DesktopEntry{}, false, nil
	}
	if t := sec.Key("Type").String(); t != "" && t != "Application" {
		return DesktopEntry{}, false, nil
	}
	if sec.Key("Hidden").MustBool(false) {
		return DesktopEntry{}, false, nil
	}
	exec := strings.TrimSpace(sec.Key("Exec").String())
	name := strings.TrimSpace(sec.Key("Name").String())
	if exec == "" || name == "" {
		return DesktopEntry{}, false, nil
	}

	show := !sec.Key("NoDisplay").MustBool(false)
	if only := splitList(sec.Key("OnlyShowIn").String()); len(only) > 0 && !intersects(only, desktops) {
		show = false
	}
	if not := splitList(sec.Key("NotShowIn").String()); intersects(not, desktops) {
		show = false
	}

	return DesktopEntry{
		Name:       name,
		Exec:       exec,
		Icon:       strings.TrimSpace(sec.Key("Icon").String()),
		Terminal:   sec.Key("Terminal").MustBool(false),
		ShouldShow: show,
	}, true, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func intersects(list, desktops []string) bool {
	for _, a := range list {
		for _, b := range desktops {
			if strings.EqualFold(a, b) {
				return true
			}
		}
	}
	return false
}
