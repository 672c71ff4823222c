package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Fragments are the header and footer placed in every page layout.
type Fragments struct {
	Header template.HTML
	Footer template.HTML
}

// FragmentLoader reads header and footer files. Markdown files (.md,
// .markdown) are converted with goldmark, anything else is taken as HTML.
// Both are sanitized before they reach a page.
type FragmentLoader struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewFragmentLoader returns a loader whose fenced code blocks use the chroma
// classes of highlight.css.
func NewFragmentLoader(style string) *FragmentLoader {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowStyling()
	policy.AllowAttrs("target").OnElements("a")

	return &FragmentLoader{md: md, policy: policy}
}

// Load reads both fragments. An empty path leaves that fragment empty.
func (l *FragmentLoader) Load(headerPath, footerPath string) (Fragments, error) {
	header, err := l.LoadFile(headerPath)
	if err != nil {
		return Fragments{}, fmt.Errorf("header: %w", err)
	}
	footer, err := l.LoadFile(footerPath)
	if err != nil {
		return Fragments{}, fmt.Errorf("footer: %w", err)
	}
	return Fragments{Header: header, Footer: footer}, nil
}

// LoadFile reads and renders one fragment file.
func (l *FragmentLoader) LoadFile(path string) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return l.Markdown(data)
	default:
		return l.HTML(data), nil
	}
}

// Markdown converts src and sanitizes the result.
func (l *FragmentLoader) Markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return l.HTML(buf.Bytes()), nil
}

// HTML sanitizes src.
func (l *FragmentLoader) HTML(src []byte) template.HTML {
	return template.HTML(l.policy.SanitizeBytes(src))
}
