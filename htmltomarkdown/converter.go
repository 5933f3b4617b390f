// Package htmltomarkdown implements papertree.Converter with
// html-to-markdown. The fallback extractor uses it to turn the content HTML
// of an unknown page into markdown before tokenizing.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/papertree"
)

var _ papertree.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Headings are
// emitted in ATX style, so heading depth survives the round trip.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", papertree.Errorf(papertree.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", papertree.Errorf(papertree.EINVALID, "convert HTML to markdown: %v", err)
	}
	return md, nil
}
