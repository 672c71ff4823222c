package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// Highlighter post-processes a built code element. language is the lowercased
// language of the block and may be empty. An error leaves the block as built.
type Highlighter interface {
	Highlight(code *html.Node, language string) error
}

// HighlighterFunc adapts a function to the Highlighter interface.
type HighlighterFunc func(code *html.Node, language string) error

func (f HighlighterFunc) Highlight(code *html.Node, language string) error {
	return f(code, language)
}

// ChromaHighlighter tokenises code blocks with chroma and replaces their text
// with class-annotated spans. The matching stylesheet comes from WriteCSS.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewChromaHighlighter(style string) *ChromaHighlighter {
	return &ChromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		style: styles.Get(style),
	}
}

// Highlight rewrites the children of code. Blocks without a language, or with
// a language chroma does not know, are left untouched.
func (h *ChromaHighlighter) Highlight(code *html.Node, language string) error {
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, TextContent(code))
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", language, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return fmt.Errorf("formatting %s: %w", language, err)
	}

	nodes, err := html.ParseFragment(&buf, code)
	if err != nil {
		return fmt.Errorf("parsing highlighted %s: %w", language, err)
	}

	for c := code.FirstChild; c != nil; c = code.FirstChild {
		code.RemoveChild(c)
	}
	for _, n := range nodes {
		code.AppendChild(n)
	}
	addClass(code, "chroma")
	return nil
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
