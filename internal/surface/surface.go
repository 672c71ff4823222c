package surface

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/folio/internal/render"
)

// Surface is the container a render pass writes into. It is only ever
// cleared and appended to.
type Surface interface {
	Clear()
	Append(nodes ...*html.Node)
}

// Element is a Surface backed by a single HTML element.
type Element struct {
	root *html.Node
}

// New returns a surface rooted at an element with the given tag and class.
func New(tag, class string) *Element {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class != "" {
		root.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return &Element{root: root}
}

// NewMain returns the default page surface, main.project-main.
func NewMain() *Element {
	return New("main", "project-main")
}

// Clear removes every child.
func (e *Element) Clear() {
	for c := e.root.FirstChild; c != nil; c = e.root.FirstChild {
		e.root.RemoveChild(c)
	}
}

// Append adds nodes in order. Fragments are unpacked.
func (e *Element) Append(nodes ...*html.Node) {
	for _, n := range nodes {
		render.Append(e.root, n)
	}
}

// Root returns the backing element.
func (e *Element) Root() *html.Node { return e.root }

// Nodes returns the current children in order.
func (e *Element) Nodes() []*html.Node {
	var out []*html.Node
	for c := e.root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Render writes the backing element, children included.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.root)
}

// InnerHTML returns the markup of the children only.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := e.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
