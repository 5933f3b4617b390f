package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*TaylorExtractor)(nil)

// TaylorExtractor extracts articles from Taylor & Francis Online HTML pages.
type TaylorExtractor struct{}

// NewTaylorExtractor creates a new TaylorExtractor.
func NewTaylorExtractor() *TaylorExtractor {
	return &TaylorExtractor{}
}

// Name returns the extractor's identifier.
func (e *TaylorExtractor) Name() string {
	return string(papertree.PublisherTaylor)
}

// Extract parses a Taylor & Francis article page.
func (e *TaylorExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	paras := doc.Find("div.abstractSection").First().Find("p").Not(".summary-title")
	ext := &papertree.Extraction{
		Title:    textOf(doc.Find("span.hlFld-title").First()),
		Abstract: strings.Join(textsOf(paras), " "),
		Keywords: textsOf(doc.Find("div.abstractKeywords").First().Find("a")),
	}

	doc.Find("div.hlFld-Fulltext").First().ChildrenFiltered("div.NLM_sec").Each(func(_ int, s *goquery.Selection) {
		var t tokens
		taylorSection(s, &t)
		if len(t) > 0 {
			ext.Sections = append(ext.Sections, t)
		}
	})

	return checkExtraction(e.Name(), ext)
}

func taylorSection(sec *goquery.Selection, t *tokens) {
	sec.Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case tag == "div" && c.HasClass("NLM_sec"):
			taylorSection(c, t)
		case papertree.IsHeadingTag(tag):
			t.add(tag, textOf(c))
		case tag == "p" || tag == "ul":
			t.add("p", textOf(c))
		}
	})
}
