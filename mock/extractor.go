package mock

import (
	"context"

	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of papertree.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, raw string) (*papertree.Extraction, error)
	NameFn    func() string
}

func (e *Extractor) Extract(ctx context.Context, raw string) (*papertree.Extraction, error) {
	return e.ExtractFn(ctx, raw)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

var _ papertree.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of papertree.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*papertree.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*papertree.ContentResult, error) {
	return e.ExtractFn(html)
}

var _ papertree.MarkdownTokenizer = (*MarkdownTokenizer)(nil)

// MarkdownTokenizer is a mock implementation of papertree.MarkdownTokenizer.
type MarkdownTokenizer struct {
	TokenizeFn func(markdown string) ([]papertree.Token, error)
}

func (t *MarkdownTokenizer) Tokenize(markdown string) ([]papertree.Token, error) {
	return t.TokenizeFn(markdown)
}
