package papertree

import (
	"context"
	"strconv"
	"strings"
)

// Kind classifies a token in an extracted document stream.
type Kind string

// Token kinds. Every kind except KindHeading is body content.
const (
	KindHeading        Kind = "heading"
	KindParagraph      Kind = "p"
	KindListItem       Kind = "li"
	KindEquation       Kind = "eq"
	KindEquationNumber Kind = "eq_num"
	KindTableRef       Kind = "table"
)

// Token is one element of the flat stream an extractor produces.
// Depth is meaningful for headings only; depths are relative and need not
// start at 1.
type Token struct {
	Kind  Kind   `json:"kind"`
	Depth int    `json:"depth,omitempty"`
	Text  string `json:"text"`
}

// Heading returns a heading token at the given depth.
func Heading(depth int, text string) Token {
	return Token{Kind: KindHeading, Depth: depth, Text: text}
}

// Paragraph returns a paragraph token.
func Paragraph(text string) Token {
	return Token{Kind: KindParagraph, Text: text}
}

// IsHeading reports whether the token opens a section.
func (t Token) IsHeading() bool {
	return t.Kind == KindHeading
}

// Tag returns the markup tag the token was derived from ("h2", "p", "li", ...).
func (t Token) Tag() string {
	if t.Kind == KindHeading {
		return "h" + strconv.Itoa(t.Depth)
	}
	return string(t.Kind)
}

// NewToken maps a markup tag name to a token. Heading tags (h1-h9) become
// headings of the matching depth; "li", "eq", "eq_num" and "table" keep their
// kind; anything else is a paragraph.
func NewToken(tag, text string) Token {
	tag = strings.ToLower(tag)
	if depth, ok := headingDepth(tag); ok {
		return Heading(depth, text)
	}
	switch Kind(tag) {
	case KindListItem, KindEquation, KindEquationNumber, KindTableRef:
		return Token{Kind: Kind(tag), Text: text}
	}
	return Paragraph(text)
}

// IsHeadingTag reports whether tag names an HTML heading element.
func IsHeadingTag(tag string) bool {
	_, ok := headingDepth(strings.ToLower(tag))
	return ok
}

func headingDepth(tag string) (int, bool) {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '9' {
		return 0, false
	}
	return int(tag[1] - '0'), true
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
