package content

import "strings"

// Kind identifies the type of a content node.
type Kind string

const (
	KindTitle       Kind = "title"
	KindParagraph   Kind = "paragraph"
	KindCode        Kind = "code"
	KindList        Kind = "list"
	KindImage       Kind = "image"
	KindLink        Kind = "link"
	KindListItem    Kind = "listItem"
	KindContentText Kind = "contentText"
)

// knownKinds is the set of recognized node kinds.
var knownKinds = map[Kind]bool{
	KindTitle:       true,
	KindParagraph:   true,
	KindCode:        true,
	KindList:        true,
	KindImage:       true,
	KindLink:        true,
	KindListItem:    true,
	KindContentText: true,
}

// Known reports whether k is one of the recognized kinds.
// The empty kind is used by bare list items and is not a known kind.
func (k Kind) Known() bool {
	return knownKinds[k]
}

// Structural reports whether a node of this kind is built as its own element
// when it appears inside a list. Kindless, listItem and contentText items only
// contribute their inline content.
func (k Kind) Structural() bool {
	return k.Known() && k != KindListItem && k != KindContentText
}

// ListVariant selects the presentation of a list.
type ListVariant string

const (
	ListPlain       ListVariant = "plain"
	ListDescriptive ListVariant = "descriptive"
)

// Emphasis names the styling applied to an inline span.
type Emphasis string

const (
	EmphasisNone   Emphasis = ""
	EmphasisStrong Emphasis = "strong"
	EmphasisEm     Emphasis = "em"
	EmphasisCode   Emphasis = "code"
)

// Known reports whether e maps to a styled element.
func (e Emphasis) Known() bool {
	return e == EmphasisStrong || e == EmphasisEm || e == EmphasisCode
}

// InlineForm tells which shape an Inline value was decoded from.
type InlineForm uint8

const (
	FormEmpty InlineForm = iota
	FormText
	FormSpan
	FormSequence
)

// Inline is text content that may contain styled runs. It is either a plain
// string, a single span with optional emphasis, or an ordered sequence of
// further Inline values, which may nest to any depth.
type Inline struct {
	Form     InlineForm
	Text     string   // FormText and FormSpan
	Emphasis Emphasis // FormSpan only
	Parts    []Inline // FormSequence only
}

// PlainText returns an Inline holding the string s.
func PlainText(s string) Inline {
	return Inline{Form: FormText, Text: s}
}

// Styled returns a span Inline with the given emphasis.
func Styled(text string, e Emphasis) Inline {
	return Inline{Form: FormSpan, Text: text, Emphasis: e}
}

// Sequence returns an Inline made of the given parts, in order.
func Sequence(parts ...Inline) Inline {
	return Inline{Form: FormSequence, Parts: parts}
}

// IsZero reports whether the inline carries no content at all.
func (in Inline) IsZero() bool {
	switch in.Form {
	case FormText, FormSpan:
		return in.Text == ""
	case FormSequence:
		for _, p := range in.Parts {
			if !p.IsZero() {
				return false
			}
		}
	}
	return true
}

// Run is one flattened piece of inline text.
type Run struct {
	Text     string
	Emphasis Emphasis
}

// Runs flattens the inline into its ordered text runs.
func (in Inline) Runs() []Run {
	var runs []Run
	in.appendRuns(&runs)
	return runs
}

func (in Inline) appendRuns(runs *[]Run) {
	switch in.Form {
	case FormText:
		*runs = append(*runs, Run{Text: in.Text})
	case FormSpan:
		*runs = append(*runs, Run{Text: in.Text, Emphasis: in.Emphasis})
	case FormSequence:
		for _, p := range in.Parts {
			p.appendRuns(runs)
		}
	}
}

// String returns the concatenated text of all runs, without styling.
func (in Inline) String() string {
	var b strings.Builder
	for _, r := range in.Runs() {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Node is one unit of page content. Which fields are meaningful depends on
// Kind; the rest stay at their zero value.
type Node struct {
	Kind     Kind        `json:"kind,omitempty"`
	Level    int         `json:"level,omitempty"`    // title
	Content  Inline      `json:"content,omitzero"`   // title, paragraph, link, listItem, contentText
	Text     string      `json:"text,omitempty"`     // code
	Language string      `json:"language,omitempty"` // code
	Variant  ListVariant `json:"variant,omitempty"`  // list
	Items    []*Node     `json:"items,omitempty"`    // list
	Src      string      `json:"src,omitempty"`      // image
	Alt      string      `json:"alt,omitempty"`      // image
	Href     string      `json:"href,omitempty"`     // link
	NewTab   *bool       `json:"newTab,omitempty"`   // link, defaults to true
}

// OpensInNewTab reports whether a link node should open in a new browsing
// context. Links do so unless newTab is explicitly false.
func (n *Node) OpensInNewTab() bool {
	return n.NewTab == nil || *n.NewTab
}

// PageContent is the ordered content of one page.
type PageContent []*Node

// Page pairs a page identifier with its content.
type Page struct {
	ID   string      `json:"page"`
	Data PageContent `json:"data"`
}

// Document is the full content description of the site.
type Document struct {
	Pages []Page `json:"pages"`
}

// Lookup returns the first page with the given identifier.
func (d *Document) Lookup(id string) (*Page, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Pages {
		if d.Pages[i].ID == id {
			return &d.Pages[i], true
		}
	}
	return nil, false
}

// IDs returns the page identifiers in document order.
func (d *Document) IDs() []string {
	if d == nil {
		return nil
	}
	ids := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		ids = append(ids, p.ID)
	}
	return ids
}
