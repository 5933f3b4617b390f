package papertree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is an element of a section's content: either a nested *Section or a
// Text leaf.
type Item interface {
	item()
}

// Text is a body leaf holding the text of one paragraph-like token.
type Text string

func (Text) item() {}

// Section is a node of the outline tree. A section built from a run without
// a heading, or a container grouping sibling sections, has an empty Title.
type Section struct {
	Title   string
	Content []Item
}

func (*Section) item() {}

// Leaves returns the text of every leaf under s in depth-first order.
func (s *Section) Leaves() []string {
	var out []string
	s.Walk(func(_ int, it Item) {
		if t, ok := it.(Text); ok {
			out = append(out, string(t))
		}
	})
	return out
}

// Walk calls fn for every item under s in depth-first order. Depth is 1 for
// direct children of s.
func (s *Section) Walk(fn func(depth int, it Item)) {
	walk(s, 1, fn)
}

func walk(s *Section, depth int, fn func(int, Item)) {
	if s == nil {
		return
	}
	for _, it := range s.Content {
		fn(depth, it)
		if sub, ok := it.(*Section); ok {
			walk(sub, depth+1, fn)
		}
	}
}

type sectionJSON struct {
	Title   string `json:"sec_title"`
	Content []any  `json:"content"`
}

// MarshalJSON encodes the section as {"sec_title": ..., "content": [...]}
// with strings for leaves and objects for nested sections.
func (s *Section) MarshalJSON() ([]byte, error) {
	content := make([]any, 0, len(s.Content))
	for _, it := range s.Content {
		switch v := it.(type) {
		case Text:
			content = append(content, string(v))
		case *Section:
			content = append(content, v)
		default:
			return nil, fmt.Errorf("unexpected section item %T", it)
		}
	}
	return json.Marshal(sectionJSON{Title: s.Title, Content: content})
}

// UnmarshalJSON decodes the format written by MarshalJSON. Nested arrays, as
// written by older tooling for single-heading subsections, are spliced into
// the enclosing content.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title   string          `json:"sec_title"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	content, err := decodeItems(raw.Content)
	if err != nil {
		return err
	}
	s.Title = raw.Title
	s.Content = content
	return nil
}

func decodeItems(data json.RawMessage) ([]Item, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("section content: %w", err)
	}
	items := make([]Item, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 {
			continue
		}
		switch elem[0] {
		case '"':
			var text string
			if err := json.Unmarshal(elem, &text); err != nil {
				return nil, err
			}
			items = append(items, Text(text))
		case '{':
			sub := &Section{}
			if err := json.Unmarshal(elem, sub); err != nil {
				return nil, err
			}
			items = append(items, sub)
		case '[':
			nested, err := decodeItems(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, nested...)
		default:
			return nil, fmt.Errorf("section content: unexpected element %s", elem)
		}
	}
	return items, nil
}
