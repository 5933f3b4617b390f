package goquery

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*MDPIExtractor)(nil)

// MDPIExtractor extracts articles from MDPI HTML pages.
// Top-level sections are the <section> elements of div.html-body that carry
// an h2[data-nested="1"] heading; nested sections are flattened into the
// same stream.
type MDPIExtractor struct{}

// NewMDPIExtractor creates a new MDPIExtractor.
func NewMDPIExtractor() *MDPIExtractor {
	return &MDPIExtractor{}
}

// Name returns the extractor's identifier.
func (e *MDPIExtractor) Name() string {
	return string(papertree.PublisherMDPI)
}

// Extract parses an MDPI article page.
func (e *MDPIExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	ext := &papertree.Extraction{
		Title:    textOf(doc.Find("h1.title.hypothesis_container").First()),
		Abstract: textOf(doc.Find("div.art-abstract").First()),
	}

	doc.Find("div.art-keywords span[itemprop='keywords']").Each(func(_ int, s *goquery.Selection) {
		ext.Keywords = append(ext.Keywords, splitKeywords(s.Text(), ";")...)
	})

	doc.Find("div.html-body").First().Find("section").Each(func(_ int, s *goquery.Selection) {
		if s.Find("h2[data-nested='1']").Length() == 0 {
			return
		}
		var t tokens
		mdpiSection(s, &t)
		if len(t) > 0 {
			ext.Sections = append(ext.Sections, t)
		}
	})

	doc.Find("div.html-table_show").Each(func(_ int, s *goquery.Selection) {
		caption := textOf(s.Find("div.html-caption").First())
		if caption == "" {
			caption = textOf(s.Find("caption").First())
		}
		if caption == "" {
			caption = "Untitled"
		}
		ext.Tables = append(ext.Tables, parseTables(s.Find("table"), caption)...)
	})

	return checkExtraction(e.Name(), ext)
}

func mdpiSection(sec *goquery.Selection, t *tokens) {
	sec.Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case tag == "section":
			mdpiSection(c, t)
		case papertree.IsHeadingTag(tag):
			t.add(tag, textOf(c))
		case tag == "div" && c.HasClass("html-p"):
			t.add("p", textOf(c))
		}
	})
}
