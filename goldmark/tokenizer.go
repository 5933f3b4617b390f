// Package goldmark implements papertree.MarkdownTokenizer using goldmark.
package goldmark

import (
	"regexp"
	"strings"

	"github.com/fwojciec/papertree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var _ papertree.MarkdownTokenizer = (*Tokenizer)(nil)

var spaceRe = regexp.MustCompile(`\s+`)

// Tokenizer turns markdown into a flat token stream: ATX and setext headings
// become heading tokens of their level, list items become "li" tokens, and
// every other text block becomes a paragraph.
type Tokenizer struct {
	md goldmark.Markdown
}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{md: goldmark.New()}
}

// Tokenize parses markdown and returns its block-level tokens in document
// order. Raw HTML blocks and thematic breaks are dropped.
func (t *Tokenizer) Tokenize(markdown string) ([]papertree.Token, error) {
	src := []byte(markdown)
	doc := t.md.Parser().Parse(text.NewReader(src))

	var out []papertree.Token
	blocks(doc, src, &out)
	return out, nil
}

func blocks(parent ast.Node, src []byte, out *[]papertree.Token) {
	add := func(tok papertree.Token) {
		if tok.Text != "" {
			*out = append(*out, tok)
		}
	}
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			add(papertree.Heading(node.Level, inlineText(node, src)))
		case *ast.Paragraph, *ast.TextBlock:
			add(papertree.Paragraph(inlineText(node, src)))
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				add(papertree.Token{Kind: papertree.KindListItem, Text: itemText(item, src)})
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			add(papertree.Paragraph(strings.TrimSpace(linesOf(node, src))))
		case *ast.Blockquote:
			blocks(node, src, out)
		}
	}
}

// itemText flattens a list item, including nested lists, into one line.
func itemText(item ast.Node, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.List:
			for sub := c.FirstChild(); sub != nil; sub = sub.NextSibling() {
				parts = append(parts, itemText(sub, src))
			}
		default:
			parts = append(parts, inlineText(c, src))
		}
	}
	return clean(strings.Join(parts, " "))
}

func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	writeInline(n, src, &buf)
	return clean(buf.String())
}

func writeInline(n ast.Node, src []byte, buf *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.Label(src))
		case *ast.RawHTML:
		default:
			writeInline(c, src, buf)
		}
	}
}

func linesOf(n ast.Node, src []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

func clean(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
