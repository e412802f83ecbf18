package provider

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/icons"
	"github.com/nhath/centrum/internal/runner"
)

const (
	findLimit   = 200
	resultLimit = 50
)

// Finder searches a directory tree for a pattern and returns absolute paths
type Finder interface {
	Find(ctx context.Context, pattern, root string, limit int) ([]string, error)
}

// FdFinder shells out to fd
type FdFinder struct {
	Runner runner.Runner
}

func (f FdFinder) Find(ctx context.Context, pattern, root string, limit int) ([]string, error) {
	args := []string{"--hidden", "--no-ignore", "--max-results", strconv.Itoa(limit), "--absolute-path", "--color=never"}
	if strings.Contains(pattern, "/") {
		args = append(args, "--full-path")
	}
	args = append(args, pattern, root)

	out, err := f.Runner.Output(ctx, "fd", args...)
	if err != nil {
		return nil, err
	}
	var paths []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, filepath.Clean(line))
		}
	}
	return paths, sc.Err()
}

var errFindLimit = errors.New("find limit reached")

// WalkFinder walks the tree in-process. It is used when fd is not installed
// and mirrors fd's defaults: the pattern is a smart-case regular expression
// matched against the file name, or the full path when it contains "/".
type WalkFinder struct{}

func (WalkFinder) Find(ctx context.Context, pattern, root string, limit int) ([]string, error) {
	re := compileFindPattern(pattern)
	fullPath := strings.Contains(pattern, "/")

	var mu sync.Mutex
	var paths []string
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil || p == root {
			return nil
		}

		subject := filepath.Base(p)
		if fullPath {
			subject = p
		}
		if !re.MatchString(subject) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		if len(paths) >= limit {
			return errFindLimit
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil && !errors.Is(err, errFindLimit) {
		return paths, err
	}
	return paths, nil
}

func compileFindPattern(pattern string) *regexp.Regexp {
	prefix := ""
	if !strings.ContainsFunc(pattern, unicode.IsUpper) {
		prefix = "(?i)"
	}
	if re, err := regexp.Compile(prefix + pattern); err == nil {
		return re
	}
	return regexp.MustCompile(prefix + regexp.QuoteMeta(pattern))
}

// Files resolves "/" and "~" queries to paths under the home directory
type Files struct {
	Home   string
	Finder Finder
	logger *zap.Logger
}

// NewFiles uses fd when it is on PATH and an in-process walk otherwise
func NewFiles(home string, r runner.Runner, logger *zap.Logger) *Files {
	if logger == nil {
		logger = zap.NewNop()
	}
	var finder Finder = WalkFinder{}
	if r.LookPath("fd") {
		finder = FdFinder{Runner: r}
	}
	return &Files{Home: filepath.Clean(home), Finder: finder, logger: logger}
}

// Search returns file candidates for query. Queries that do not start with
// "/" or "~" produce nothing.
func (f *Files) Search(ctx context.Context, query string) []candidate.Candidate {
	if !strings.HasPrefix(query, "/") && !strings.HasPrefix(query, "~") {
		return nil
	}
	if query == "/" {
		return f.listDir(f.Home)
	}

	var full string
	if strings.HasPrefix(query, "~") {
		full = strings.Replace(query, "~", f.Home, 1)
	} else if _, err := os.Stat(query); err == nil {
		full = query
	} else {
		full = filepath.Join(f.Home, query[1:])
	}

	if info, err := os.Stat(full); err == nil {
		if info.IsDir() && strings.HasSuffix(query, "/") {
			return f.listDir(full)
		}
		return []candidate.Candidate{f.pathCandidate(filepath.Clean(full), info.IsDir())}
	}

	pattern := query[1:]
	if pattern == "" {
		return f.listDir(f.Home)
	}
	if strings.HasSuffix(pattern, "/") {
		dir := filepath.Join(f.Home, pattern)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return f.listDir(dir)
		}
	}

	paths, err := f.Finder.Find(ctx, pattern, f.Home, findLimit)
	if err != nil {
		f.logger.Debug("file search failed", zap.String("pattern", pattern), zap.Error(err))
		if len(paths) == 0 {
			return nil
		}
	}
	return f.rank(pattern, paths)
}

type scoredPath struct {
	path   string
	exact  bool
	prefix bool
	hidden bool
	depth  int
	isDir  bool
}

func (f *Files) rank(pattern string, paths []string) []candidate.Candidate {
	needle := strings.ToLower(pattern)
	withSlash := strings.Contains(pattern, "/")

	scored := make([]scoredPath, 0, len(paths))
	for _, p := range paths {
		subject := strings.ToLower(filepath.Base(p))
		if withSlash {
			rel, err := filepath.Rel(f.Home, p)
			if err != nil {
				rel = ""
			}
			subject = strings.ToLower(filepath.ToSlash(rel))
		}
		info, statErr := os.Stat(p)
		scored = append(scored, scoredPath{
			path:   p,
			exact:  subject == needle,
			prefix: strings.HasPrefix(subject, needle),
			hidden: isHiddenPath(p),
			depth:  strings.Count(p, string(filepath.Separator)),
			isDir:  statErr == nil && info.IsDir(),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.exact != b.exact {
			return a.exact
		}
		if a.prefix != b.prefix {
			return a.prefix
		}
		if a.hidden != b.hidden {
			return !a.hidden
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.path < b.path
	})

	if len(scored) > resultLimit {
		scored = scored[:resultLimit]
	}
	out := make([]candidate.Candidate, len(scored))
	for i, s := range scored {
		out[i] = f.pathCandidate(s.path, s.isDir)
	}
	return out
}

func isHiddenPath(p string) bool {
	for _, part := range strings.Split(p, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// listDir returns the non-hidden children of dir, directories first
func (f *Files) listDir(dir string) []candidate.Candidate {
	entries, err := os.ReadDir(dir)
	if err != nil {
		f.logger.Debug("reading directory failed", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	out := make([]candidate.Candidate, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p := filepath.Join(dir, e.Name())
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(p); err == nil {
				isDir = info.IsDir()
			}
		}
		out = append(out, f.pathCandidate(p, isDir))
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Icon == icons.Folder, out[j].Icon == icons.Folder
		if di != dj {
			return di
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (f *Files) pathCandidate(abs string, isDir bool) candidate.Candidate {
	icon := icons.File
	if isDir {
		icon = icons.Folder
	}
	return candidate.Candidate{
		Name:   f.display(abs),
		Action: candidate.OpenPathAction(abs),
		Icon:   icon,
		Source: candidate.File,
	}
}

// display shows paths under the home directory relative to it, with a
// leading "/".
func (f *Files) display(abs string) string {
	if abs == f.Home {
		return "/"
	}
	if rest, ok := strings.CutPrefix(abs, f.Home+"/"); ok {
		return "/" + rest
	}
	return abs
}

// Complete returns the query text that selects a file candidate's path,
// with a trailing "/" for directories so the next keystroke lists it.
func (f *Files) Complete(c candidate.Candidate) (string, bool) {
	if c.Source != candidate.File {
		return "", false
	}
	a := candidate.ParseAction(c.Action)
	if a.Kind != candidate.ActionOpen {
		return "", false
	}
	text := f.display(a.Value)
	if info, err := os.Stat(a.Value); err == nil && info.IsDir() && !strings.HasSuffix(text, "/") {
		text += "/"
	}
	return text, true
}
