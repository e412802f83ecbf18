package provider

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/icons"
	"github.com/nhath/centrum/internal/runner"
)

const htmlMetaPrefix = `<meta http-equiv="content-type" content="text/html;`

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".webp": true, ".svg": true,
}

// Clipboard lists clipboard history recorded by cliphist
type Clipboard struct {
	runner runner.Runner
	logger *zap.Logger
}

// NewClipboard creates a clipboard history provider
func NewClipboard(r runner.Runner, logger *zap.Logger) *Clipboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clipboard{runner: r, logger: logger}
}

// Entries returns the rendered clipboard history, newest first
func (c *Clipboard) Entries(ctx context.Context) []candidate.Candidate {
	out, err := c.runner.Output(ctx, "cliphist", "list")
	if err != nil {
		c.logger.Debug("cliphist list failed", zap.Error(err))
		if len(out) == 0 {
			return nil
		}
	}
	return ParseClipboardList(out)
}

// ParseClipboardList renders "id<TAB>content" lines into candidates,
// dropping empty entries and duplicates of an earlier rendering.
func ParseClipboardList(out []byte) []candidate.Candidate {
	var items []candidate.Candidate
	seen := make(map[string]bool)

	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		id, content, ok := strings.Cut(line, "\t")
		if !ok || strings.HasPrefix(content, htmlMetaPrefix) {
			continue
		}
		name, icon := renderClip(content)
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, candidate.Candidate{
			Name:   name,
			Action: candidate.ClipboardSetAction(strings.TrimSpace(id)),
			Icon:   icon,
			Source: candidate.Clipboard,
		})
	}
	return items
}

func renderClip(content string) (string, string) {
	if inner, ok := binarySummary(content); ok {
		fields := strings.Fields(inner)
		if len(fields) < 3 {
			return content, icons.Binary
		}
		n := len(fields)
		return fmt.Sprintf("%s %s (%s)", strings.ToUpper(fields[n-2]), fields[n-1], strings.Join(fields[:n-2], " ")), icons.Binary
	}
	if strings.HasPrefix(content, "/") && imageExtensions[strings.ToLower(filepath.Ext(content))] {
		return "[FILE] " + filepath.Base(content), icons.Image
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, content), icons.Clipboard
}

func binarySummary(content string) (string, bool) {
	inner, ok := strings.CutPrefix(content, "[[ binary data ")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, " ]]")
}
