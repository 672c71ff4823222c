package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/surface"
)

// maxSearchContent bounds the text stored per page.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page of the site.
type SearchEntry struct {
	Page    string `json:"page"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewSearchEntry builds the entry for a rendered page from the text of its
// surface. Top-level nodes are separated by a space and whitespace is
// collapsed.
func NewSearchEntry(e NavEntry, s *surface.Element) SearchEntry {
	var parts []string
	for _, n := range s.Nodes() {
		parts = append(parts, render.TextContent(n))
	}
	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if len(text) > maxSearchContent {
		text = truncateUTF8(text, maxSearchContent)
	}
	return SearchEntry{
		Page:    e.ID,
		Path:    e.Href,
		Title:   e.Title,
		Content: text,
	}
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	for n > 0 && n < len(s) && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	if entries == nil {
		entries = []SearchEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
