// Package readability implements papertree.ContentExtractor with
// go-readability, as an alternative to trafilatura for the generic
// fallback.
package readability

import (
	"strings"

	"github.com/fwojciec/papertree"
	"github.com/go-shiori/go-readability"
)

var _ papertree.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The article
// excerpt becomes the description; readability exposes no keywords.
func (e *Extractor) Extract(rawHTML string) (*papertree.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, papertree.Errorf(papertree.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &papertree.ContentResult{
		Title:       article.Title,
		Description: article.Excerpt,
		Keywords:    []string{},
		ContentHTML: article.Content,
	}, nil
}
