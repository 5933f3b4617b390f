// Package fallback implements the generic papertree.Extractor used for pages
// no publisher extractor claims. It chains a boilerplate-removing content
// extractor, an HTML to markdown converter and a markdown tokenizer.
package fallback

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/papertree"
)

// Name identifies the fallback extractor in logs and parse results.
const Name = "generic"

var _ papertree.Extractor = (*Extractor)(nil)

// Extractor extracts articles of unknown layout.
type Extractor struct {
	Content   papertree.ContentExtractor
	Converter papertree.Converter
	Tokenizer papertree.MarkdownTokenizer
}

// NewExtractor creates a new Extractor from its three stages.
func NewExtractor(content papertree.ContentExtractor, conv papertree.Converter, tok papertree.MarkdownTokenizer) *Extractor {
	return &Extractor{
		Content:   content,
		Converter: conv,
		Tokenizer: tok,
	}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string {
	return Name
}

// Extract returns the page's main content as a single section stream. A
// leading heading repeating the page title is dropped.
func (e *Extractor) Extract(ctx context.Context, raw string) (*papertree.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := e.Content.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting content: %w", err)
	}

	ext := &papertree.Extraction{
		Title:    res.Title,
		Abstract: res.Description,
		Keywords: res.Keywords,
	}

	if strings.TrimSpace(res.ContentHTML) != "" {
		md, err := e.Converter.Convert(res.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("converting content: %w", err)
		}
		tokens, err := e.Tokenizer.Tokenize(md)
		if err != nil {
			return nil, fmt.Errorf("tokenizing content: %w", err)
		}
		if len(tokens) > 0 && tokens[0].IsHeading() && strings.EqualFold(tokens[0].Text, ext.Title) {
			tokens = tokens[1:]
		}
		if len(tokens) > 0 {
			ext.Sections = [][]papertree.Token{tokens}
		}
	}

	if ext.Title == "" && len(ext.Sections) == 0 {
		return nil, papertree.Errorf(papertree.EINVALID, "no content found")
	}
	return ext, nil
}
