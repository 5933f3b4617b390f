// Package trafilatura implements papertree.ContentExtractor with
// go-trafilatura. It is the default content extractor for pages whose
// publisher has no dedicated extractor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/papertree"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ papertree.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content along with the
// title, description and tags found in the page metadata.
func (e *Extractor) Extract(rawHTML string) (*papertree.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, papertree.Errorf(papertree.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	keywords := make([]string, 0, len(result.Metadata.Tags)+len(result.Metadata.Categories))
	keywords = append(keywords, result.Metadata.Tags...)
	keywords = append(keywords, result.Metadata.Categories...)

	return &papertree.ContentResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		Keywords:    keywords,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
