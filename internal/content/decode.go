package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a Document from r and checks its shape. Any error means the
// document cannot be rendered as a whole.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding content document: %w", err)
	}
	return &doc, nil
}

// UnmarshalJSON requires the pages array to be present.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pages *[]Page `json:"pages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Pages == nil {
		return fmt.Errorf(`content document: missing "pages" array`)
	}
	d.Pages = *raw.Pages
	return nil
}

// UnmarshalJSON requires a page identifier and a data array.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   string       `json:"page"`
		Data *PageContent `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return fmt.Errorf(`page: missing "page" identifier`)
	}
	if raw.Data == nil {
		return fmt.Errorf(`page %q: missing "data" array`, raw.ID)
	}
	p.ID = raw.ID
	p.Data = *raw.Data
	return nil
}

// UnmarshalJSON accepts either a node object or a bare string. A bare string
// becomes a kindless node whose content is that string, which is how plain
// list items are written.
func (n *Node) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Node{Content: PlainText(s)}
		return nil
	}

	type plain Node
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Variant {
	case "", ListPlain, ListDescriptive:
	default:
		return fmt.Errorf("node %q: unknown list variant %q", raw.Kind, raw.Variant)
	}
	*n = Node(raw)
	return nil
}

// UnmarshalJSON decodes a string, a span object or a (possibly nested) array.
// A span takes its styling from "emphasis", or from "format" when emphasis is
// absent.
func (in *Inline) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("inline content: empty value")
	}

	switch data[0] {
	case 'n':
		*in = Inline{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = PlainText(s)
		return nil
	case '[':
		var parts []Inline
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*in = Sequence(parts...)
		return nil
	case '{':
		var span struct {
			Text     *string  `json:"text"`
			Emphasis Emphasis `json:"emphasis"`
			Format   Emphasis `json:"format"`
		}
		if err := json.Unmarshal(data, &span); err != nil {
			return err
		}
		if span.Text == nil {
			return fmt.Errorf(`inline span: missing "text"`)
		}
		// "format" is an older spelling of "emphasis".
		emphasis := span.Emphasis
		if emphasis == EmphasisNone {
			emphasis = span.Format
		}
		*in = Styled(*span.Text, emphasis)
		return nil
	default:
		return fmt.Errorf("inline content: unsupported value %s", truncate(data, 32))
	}
}

// MarshalJSON writes the inline back in the shape it was decoded from.
func (in Inline) MarshalJSON() ([]byte, error) {
	switch in.Form {
	case FormText:
		return json.Marshal(in.Text)
	case FormSpan:
		return json.Marshal(struct {
			Text     string   `json:"text"`
			Emphasis Emphasis `json:"emphasis,omitempty"`
		}{in.Text, in.Emphasis})
	case FormSequence:
		parts := in.Parts
		if parts == nil {
			parts = []Inline{}
		}
		return json.Marshal(parts)
	default:
		return []byte("null"), nil
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
