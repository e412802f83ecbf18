// internal/history/usage.go
package history

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nhath/centrum/internal/candidate"
)

// placeholderRe matches freedesktop Exec field codes that are filled in at
// launch time. A code followed by a word character (e.g. "%Df" inside a
// percent-encoded URL) is left alone.
var placeholderRe = regexp.MustCompile(`%[fFuUdDnNick]\b`)

// StripPlaceholders removes runtime placeholders and surrounding space,
// leaving the rest of the command as written.
func StripPlaceholders(cmd string) string {
	return strings.TrimSpace(placeholderRe.ReplaceAllString(cmd, ""))
}

// Normalize strips runtime placeholders from a command so equivalent
// invocations share one usage counter.
func Normalize(cmd string) string {
	return strings.Join(strings.Fields(placeholderRe.ReplaceAllString(cmd, "")), " ")
}

// Key returns the normalized usage key for an action string: the payload of
// an open action (path or URL), or the placeholder-free shell command.
// Clipboard, copy and internal actions have no key.
func Key(action string) string {
	a := candidate.ParseAction(action)
	switch a.Kind {
	case candidate.ActionOpen, candidate.ActionShell:
		return Normalize(a.Value)
	default:
		return ""
	}
}

// Entry is one usage counter
type Entry struct {
	Key   string
	Count uint32
}

// Map counts launches per normalized action key. It is not safe for
// concurrent use; the launcher mutates it from a single event loop.
type Map struct {
	counts map[string]uint32
}

// NewMap creates an empty usage map
func NewMap() *Map {
	return &Map{counts: make(map[string]uint32)}
}

// Count returns the number of recorded launches for key
func (m *Map) Count(key string) uint32 {
	return m.counts[key]
}

// Increment records one launch and returns the new count
func (m *Map) Increment(key string) uint32 {
	if key == "" {
		return 0
	}
	m.counts[key]++
	return m.counts[key]
}

// Set overwrites a counter, used when loading persisted state
func (m *Map) Set(key string, count uint32) {
	if key == "" || count == 0 {
		return
	}
	m.counts[key] = count
}

// Remove drops a key and reports whether it was present
func (m *Map) Remove(key string) bool {
	if _, ok := m.counts[key]; !ok {
		return false
	}
	delete(m.counts, key)
	return true
}

// Len returns the number of distinct keys
func (m *Map) Len() int {
	return len(m.counts)
}

// Entries returns every counter ordered by key
func (m *Map) Entries() []Entry {
	entries := make([]Entry, 0, len(m.counts))
	for k, c := range m.counts {
		entries = append(entries, Entry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
