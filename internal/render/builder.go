package render

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/content"
)

// ErrUnknownKind marks content nodes whose kind the builder does not know.
var ErrUnknownKind = errors.New("unknown node kind")

// UnknownKindError reports the kind that could not be built.
type UnknownKindError struct {
	Kind content.Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown node kind %q", e.Kind)
}

func (e *UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// Builder converts content nodes into HTML node trees. It only constructs
// nodes: it never touches the network or storage and never mutates its input.
type Builder struct {
	highlighter Highlighter
	logger      *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithHighlighter sets the hook run on every built code element.
func WithHighlighter(h Highlighter) Option {
	return func(b *Builder) { b.highlighter = h }
}

// WithLogger sets the logger used for skipped nodes.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a Builder. Without options it builds unhighlighted code
// blocks and logs nothing.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildAll builds nodes in order. Nil nodes produce nothing and unknown kinds
// are skipped with a warning, so one bad node never hides the rest.
func (b *Builder) BuildAll(nodes content.PageContent) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for i, n := range nodes {
		el, err := b.BuildNode(n)
		if err != nil {
			b.logger.Warn("skipping content node", zap.Int("index", i), zap.Error(err))
			continue
		}
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}

// BuildNode builds a single node. It returns (nil, nil) for a nil node and an
// *UnknownKindError for kinds it does not recognize.
func (b *Builder) BuildNode(n *content.Node) (*html.Node, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case content.KindTitle:
		return b.heading(n), nil
	case content.KindParagraph:
		p := element("p", "text")
		Append(p, b.BuildInline(n.Content))
		return p, nil
	case content.KindCode:
		return b.codeBlock(n), nil
	case content.KindList:
		return b.list(n), nil
	case content.KindImage:
		return b.image(n), nil
	case content.KindLink:
		return b.link(n), nil
	case content.KindListItem:
		li := element("li", "")
		Append(li, b.BuildInline(n.Content))
		return li, nil
	case content.KindContentText:
		return b.BuildInline(n.Content), nil
	default:
		return nil, &UnknownKindError{Kind: n.Kind}
	}
}

// BuildInline returns a fragment holding the flattened runs of in. A plain
// string becomes one text node; spans with a known emphasis are wrapped in
// strong, em or code; anything else degrades to plain text.
func (b *Builder) BuildInline(in content.Inline) *html.Node {
	frag := fragment()
	appendInline(frag, in)
	return frag
}

func appendInline(parent *html.Node, in content.Inline) {
	switch in.Form {
	case content.FormText:
		parent.AppendChild(text(in.Text))
	case content.FormSpan:
		if !in.Emphasis.Known() {
			parent.AppendChild(text(in.Text))
			return
		}
		el := element(string(in.Emphasis), "")
		el.AppendChild(text(in.Text))
		parent.AppendChild(el)
	case content.FormSequence:
		for _, part := range in.Parts {
			appendInline(parent, part)
		}
	}
}

// heading clamps the level into h1..h6.
func (b *Builder) heading(n *content.Node) *html.Node {
	level := min(max(n.Level, minHeadingLevel), maxHeadingLevel)
	if level != n.Level {
		b.logger.Debug("clamped heading level", zap.Int("level", n.Level), zap.Int("used", level))
	}
	h := element(fmt.Sprintf("h%d", level), fmt.Sprintf("title-lvl%d", level))
	Append(h, b.BuildInline(n.Content))
	return h
}

func (b *Builder) codeBlock(n *content.Node) *html.Node {
	lang := strings.ToLower(strings.TrimSpace(n.Language))
	class := "language-plaintext"
	if lang != "" {
		class = "language-" + strings.Join(strings.Fields(lang), "-")
	}

	pre := element("pre", "code-pre")
	code := element("code", class)
	code.AppendChild(text(n.Text))
	pre.AppendChild(code)

	if b.highlighter != nil {
		if err := b.highlighter.Highlight(code, lang); err != nil {
			b.logger.Debug("leaving code block unstyled", zap.String("language", lang), zap.Error(err))
		}
	}
	return pre
}

// list wraps every item in an li. Kindless, listItem and contentText items
// contribute their inline content; every other known kind is built as its own
// element, so lists and code blocks may nest.
func (b *Builder) list(n *content.Node) *html.Node {
	class := "list"
	if n.Variant == content.ListDescriptive {
		class = "list-descriptions"
	}
	ul := element("ul", class)

	for i, item := range n.Items {
		if item == nil {
			continue
		}
		li := element("li", "")
		switch {
		case item.Kind.Structural():
			child, err := b.BuildNode(item)
			if err != nil {
				b.logger.Warn("skipping list item", zap.Int("index", i), zap.Error(err))
				continue
			}
			Append(li, child)
		case item.Kind == "" || item.Kind.Known():
			Append(li, b.BuildInline(item.Content))
		default:
			b.logger.Warn("skipping list item", zap.Int("index", i), zap.Error(&UnknownKindError{Kind: item.Kind}))
			continue
		}
		ul.AppendChild(li)
	}
	return ul
}

func (b *Builder) image(n *content.Node) *html.Node {
	img := element("img", "list-item-img")
	if src, ok := b.safeURL(n.Src, "src"); ok {
		img.Attr = append(img.Attr, attr("src", src))
	}
	if n.Alt != "" {
		img.Attr = append(img.Attr, attr("alt", n.Alt))
	}
	return img
}

func (b *Builder) link(n *content.Node) *html.Node {
	a := element("a", "link")
	if href, ok := b.safeURL(n.Href, "href"); ok {
		a.Attr = append(a.Attr, attr("href", href))
	}
	if n.OpensInNewTab() {
		a.Attr = append(a.Attr, attr("target", "_blank"), attr("rel", "noopener noreferrer"))
	}
	if n.Content.IsZero() {
		a.AppendChild(text("Link"))
	} else {
		Append(a, b.BuildInline(n.Content))
	}
	return a
}

// allowedSchemes are the URL schemes kept in href and src attributes.
// Relative references carry no scheme and are always kept.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// safeURL reports whether raw may be written into attribute key. URLs that do
// not parse or use another scheme (javascript:, data:, ...) are dropped with a
// warning and the element is built without the attribute.
func (b *Builder) safeURL(raw, key string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err == nil && (u.Scheme == "" || allowedSchemes[strings.ToLower(u.Scheme)]) {
		return raw, true
	}
	b.logger.Warn("dropping unsafe url", zap.String("attr", key), zap.String("url", raw))
	return "", false
}
