package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*WileyExtractor)(nil)

// WileyExtractor extracts articles from Wiley Online Library HTML pages.
type WileyExtractor struct{}

// NewWileyExtractor creates a new WileyExtractor.
func NewWileyExtractor() *WileyExtractor {
	return &WileyExtractor{}
}

// Name returns the extractor's identifier.
func (e *WileyExtractor) Name() string {
	return string(papertree.PublisherWiley)
}

// Extract parses a Wiley article page.
func (e *WileyExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	ext := &papertree.Extraction{
		Title:    textOf(doc.Find("h1.citation__title").First()),
		Abstract: wileyAbstract(doc),
	}

	doc.Find("section.article-section__full").First().
		Find("section.article-section__content").
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.ParentsFiltered("section.article-section__content").Length() == 0
		}).
		Each(func(_ int, s *goquery.Selection) {
			var t tokens
			wileySection(s, &t)
			if len(t) > 0 {
				ext.Sections = append(ext.Sections, t)
			}
		})

	doc.Find("div.article-table-content").Each(func(_ int, s *goquery.Selection) {
		caption := textOf(s.Find("header").First())
		if caption == "" {
			caption = "Untitled"
		}
		ext.Tables = append(ext.Tables, parseTables(s.Find("table"), caption)...)
	})

	return checkExtraction(e.Name(), ext)
}

func wileyAbstract(doc *goquery.Document) string {
	group := doc.Find("div.abstract-group").First()
	if group.Length() == 0 {
		group = doc.Find("section.article-section__abstract").First()
	}
	if group.Length() == 0 {
		return ""
	}
	paras := group.Find("section.article-section__content p, section.article-section__abstract p")
	if paras.Length() == 0 {
		paras = group.Find("p")
	}
	return strings.Join(textsOf(paras), " ")
}

func wileySection(sec *goquery.Selection, t *tokens) {
	sec.Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case tag == "section":
			wileySection(c, t)
		case papertree.IsHeadingTag(tag):
			t.add(tag, textOf(c))
		case tag == "p":
			t.add("p", textOf(c))
		case tag == "ol":
			t.addList(c)
		}
	})
}
