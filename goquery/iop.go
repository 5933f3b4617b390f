package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*IOPExtractor)(nil)

// IOPExtractor extracts articles from IOP Publishing HTML pages. The article
// body is flat: every h2 child of div[itemprop=articleBody] starts a new
// top-level section.
type IOPExtractor struct{}

// NewIOPExtractor creates a new IOPExtractor.
func NewIOPExtractor() *IOPExtractor {
	return &IOPExtractor{}
}

// Name returns the extractor's identifier.
func (e *IOPExtractor) Name() string {
	return string(papertree.PublisherIOP)
}

// Extract parses an IOP article page.
func (e *IOPExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	ext := &papertree.Extraction{
		Title:    attrOf(doc.Find("meta[name='citation_title']").First(), "content"),
		Abstract: strings.Join(textsOf(doc.Find("div.wd-jnl-art-abstract").First().Find("p")), " "),
	}

	var current *tokens
	flush := func() {
		if current != nil && len(*current) > 0 {
			ext.Sections = append(ext.Sections, *current)
		}
		current = nil
	}
	doc.Find("div[itemprop='articleBody']").First().Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case tag == "h2":
			flush()
			current = &tokens{}
			current.add(tag, textOf(c))
		case papertree.IsHeadingTag(tag):
			if current == nil {
				current = &tokens{}
			}
			current.add(tag, textOf(c))
		case tag == "div" && c.HasClass("article-text"):
			if current == nil {
				current = &tokens{}
			}
			iopSection(c, current)
		}
	})
	flush()

	return checkExtraction(e.Name(), ext)
}

func iopSection(div *goquery.Selection, t *tokens) {
	div.Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case papertree.IsHeadingTag(tag):
			t.add(tag, textOf(c))
		case tag == "p":
			t.add("p", textOf(c))
		case tag == "div" && c.HasClass("article-text"):
			iopSection(c, t)
		}
	})
}
