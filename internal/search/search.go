// Package search classifies raw query text and merges provider results into
// the ranked candidate list the launcher shows.
package search

import (
	"context"
	"strings"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/color"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/icons"
	"github.com/nhath/centrum/internal/provider"
)

// HotkeysQuery is the query that offers the hotkeys help entry
const HotkeysQuery = "hotkeys?"

// Calculator evaluates arithmetic queries
type Calculator interface {
	Evaluate(ctx context.Context, query string) *candidate.Candidate
}

// FileSearcher resolves path queries
type FileSearcher interface {
	Search(ctx context.Context, query string) []candidate.Candidate
}

// WebSearcher builds search and link candidates
type WebSearcher interface {
	Search(query string, hist *history.Map) []candidate.Candidate
}

// Providers are the sources a Resolver consults
type Providers struct {
	Calc  Calculator
	Files FileSearcher
	Web   WebSearcher
	Power []provider.PowerOption
}

// Result is the outcome of resolving a query. Color queries carry the parsed
// color (nil when the text does not parse yet) and no candidates.
type Result struct {
	ColorMode  bool
	Color      *color.HSVA
	Candidates []candidate.Candidate
}

// Resolver turns query text into ranked candidates
type Resolver struct {
	p Providers
}

// NewResolver creates a Resolver over p
func NewResolver(p Providers) *Resolver {
	return &Resolver{p: p}
}

// IsColorQuery reports whether text selects the color picker
func IsColorQuery(text string) bool {
	return strings.HasPrefix(text, "#") || strings.HasPrefix(text, "rgb(") || strings.HasPrefix(text, "rgba(")
}

// Resolve ranks candidates for text against apps. The list is the hotkeys
// entry, the calculator result, file and web results (files first for path
// queries), exact power command matches and finally fuzzy-matched apps, or
// every app by usage when text is empty.
func (r *Resolver) Resolve(ctx context.Context, text string, apps []candidate.Candidate, hist *history.Map) Result {
	if IsColorQuery(text) {
		res := Result{ColorMode: true}
		if c, ok := color.Parse(text); ok {
			res.Color = &c
		}
		return res
	}

	var out []candidate.Candidate
	if text == HotkeysQuery {
		out = append(out, candidate.Candidate{
			Name:   "Show Hotkeys Help",
			Action: candidate.ShowHotkeys,
			Icon:   icons.Help,
			Source: candidate.Internal,
		})
	}

	if r.p.Calc != nil && provider.IsCalcQuery(text) {
		if c := r.p.Calc.Evaluate(ctx, text); c != nil {
			out = append(out, *c)
		}
	}

	var files, web []candidate.Candidate
	if r.p.Files != nil {
		files = r.p.Files.Search(ctx, text)
	}
	if r.p.Web != nil {
		web = r.p.Web.Search(text, hist)
	}
	if strings.HasPrefix(text, "/") || strings.HasPrefix(text, "~") {
		out = append(out, files...)
		out = append(out, web...)
	} else {
		out = append(out, web...)
		out = append(out, files...)
	}

	out = append(out, provider.SystemCommands(text, r.p.Power)...)

	if text == "" {
		out = append(out, provider.ByUsage(apps, hist)...)
	} else {
		out = append(out, provider.Match(apps, text, hist)...)
	}
	return Result{Candidates: out}
}

// FilterClipboard keeps the clipboard entries whose name contains text,
// ignoring case, in their input order.
func FilterClipboard(entries []candidate.Candidate, text string) []candidate.Candidate {
	if text == "" {
		return append([]candidate.Candidate(nil), entries...)
	}
	needle := strings.ToLower(text)
	var out []candidate.Candidate
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
