package provider

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/icons"
)

const webLimit = 10

// Engine is a search engine the "?" prefix can query
type Engine struct {
	Name string
	Base string
}

var engines = map[string]Engine{
	"google":     {"Google", "https://www.google.com/search?q="},
	"bing":       {"Bing", "https://www.bing.com/search?q="},
	"duckduckgo": {"DuckDuckGo", "https://duckduckgo.com/?q="},
	"ddg":        {"DuckDuckGo", "https://duckduckgo.com/?q="},
	"startpage":  {"StartPage", "https://www.startpage.com/sp/search?q="},
	"ecosia":     {"Ecosia", "https://www.ecosia.org/search?q="},
	"qwant":      {"Qwant", "https://www.qwant.com/?q="},
}

// EngineFor returns the engine configured by name, falling back to Google
func EngineFor(name string) Engine {
	if e, ok := engines[strings.ToLower(name)]; ok {
		return e
	}
	return engines["google"]
}

// KnownEngine reports whether name selects a search engine
func KnownEngine(name string) bool {
	_, ok := engines[strings.ToLower(name)]
	return ok
}

// urlRe recognises bare links such as "example.com/path".
var urlRe = regexp.MustCompile(`^(https?://)?([\w-]+\.)+[\w-]+(/[\w\-. /?%&=]*)?$`)

// Web builds search and link candidates. It never touches the network.
type Web struct {
	Engine Engine
}

// NewWeb creates a web provider for the named engine
func NewWeb(engine string) *Web {
	return &Web{Engine: EngineFor(engine)}
}

// Search handles "?terms", ":address" and bare URL queries
func (w *Web) Search(query string, hist *history.Map) []candidate.Candidate {
	switch {
	case strings.HasPrefix(query, "?"):
		return w.search(strings.TrimSpace(query[1:]), hist)
	case strings.HasPrefix(query, ":"):
		return w.open(strings.TrimSpace(query[1:]), hist)
	case urlRe.MatchString(query) || strings.HasPrefix(query, "http"):
		return []candidate.Candidate{webCandidate("Open Link", withScheme(query), icons.Link)}
	default:
		return nil
	}
}

func (w *Web) search(terms string, hist *history.Map) []candidate.Candidate {
	var out []candidate.Candidate
	seen := make(map[string]bool)
	if terms != "" {
		name := fmt.Sprintf("Search %s for '%s'", w.Engine.Name, terms)
		seen[name] = true
		out = append(out, webCandidate(name, w.Engine.Base+url.QueryEscape(terms), icons.Search))
	}

	filter := strings.ToLower(terms)
	past := historyEntries(hist, func(key string) bool {
		return isHTTPURL(key) && strings.Contains(key, "?q=") && (filter == "" || strings.Contains(strings.ToLower(key), filter))
	})
	sort.SliceStable(past, func(i, j int) bool {
		if past[i].Count != past[j].Count {
			return past[i].Count > past[j].Count
		}
		return past[i].Key > past[j].Key
	})

	for _, e := range past {
		if len(out) >= webLimit {
			break
		}
		name := "Search: " + searchTerms(e.Key)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, webCandidate(name, e.Key, icons.Search))
	}
	return out
}

func (w *Web) open(address string, hist *history.Map) []candidate.Candidate {
	var out []candidate.Candidate
	seen := make(map[string]bool)
	if address != "" {
		name := fmt.Sprintf("Open '%s'", address)
		seen[name] = true
		out = append(out, webCandidate(name, withScheme(address), icons.Link))
	}

	filter := strings.ToLower(address)
	past := historyEntries(hist, func(key string) bool {
		return isHTTPURL(key) && !strings.Contains(key, "?q=") &&
			(filter == "" || strings.Contains(strings.ToLower(key), filter))
	})
	sort.SliceStable(past, func(i, j int) bool {
		if past[i].Count != past[j].Count {
			return past[i].Count > past[j].Count
		}
		return past[i].Key < past[j].Key
	})

	for _, e := range past {
		name := strings.TrimPrefix(strings.TrimPrefix(e.Key, "https://"), "http://")
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, webCandidate(name, e.Key, icons.Link))
	}
	return out
}

func isHTTPURL(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

// historyEntries returns the usage entries whose key satisfies keep
func historyEntries(hist *history.Map, keep func(string) bool) []history.Entry {
	if hist == nil {
		return nil
	}
	var out []history.Entry
	for _, e := range hist.Entries() {
		if keep(e.Key) {
			out = append(out, e)
		}
	}
	return out
}

// searchTerms extracts the q parameter of a search URL for display
func searchTerms(u string) string {
	_, q, _ := strings.Cut(u, "?q=")
	q, _, _ = strings.Cut(q, "&")
	if decoded, err := url.QueryUnescape(q); err == nil {
		return decoded
	}
	return strings.ReplaceAll(q, "+", " ")
}

func withScheme(address string) string {
	if strings.Contains(address, "://") {
		return address
	}
	return "https://" + address
}

func webCandidate(name, target, icon string) candidate.Candidate {
	return candidate.Candidate{
		Name:   name,
		Action: candidate.XDGOpenAction(target),
		Icon:   icon,
		Source: candidate.Web,
	}
}
