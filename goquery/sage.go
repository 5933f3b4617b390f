package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*SAGEExtractor)(nil)

var sageSectionID = regexp.MustCompile(`^sec-\d+$`)

// SAGEExtractor extracts articles from SAGE Journals HTML pages. The page
// must contain an <article> element; its section[id=sec-N] children are the
// top-level sections.
type SAGEExtractor struct{}

// NewSAGEExtractor creates a new SAGEExtractor.
func NewSAGEExtractor() *SAGEExtractor {
	return &SAGEExtractor{}
}

// Name returns the extractor's identifier.
func (e *SAGEExtractor) Name() string {
	return string(papertree.PublisherSAGE)
}

// Extract parses a SAGE article page.
func (e *SAGEExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, papertree.Errorf(papertree.EINVALID, "no <article> element found")
	}

	ext := &papertree.Extraction{
		Title:    sageTitle(doc, article),
		Abstract: sageAbstract(doc),
		Keywords: sageKeywords(doc),
	}

	article.Find("section[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return sageSectionID.MatchString(attrOf(s, "id"))
	}).Each(func(_ int, s *goquery.Selection) {
		if h := s.Find("h2, h3, h4, h5, h6").First(); h.Length() > 0 && papertree.SkipSection(h.Text()) {
			return
		}
		var t tokens
		sageSection(s, &t)
		if len(t) > 0 {
			ext.Sections = append(ext.Sections, t)
		}
	})

	return checkExtraction(e.Name(), ext)
}

func sageTitle(doc *goquery.Document, article *goquery.Selection) string {
	if title := textOf(article.Find("h1").First()); title != "" {
		return title
	}
	if title := textOf(doc.Find("div.publicationContentTitle").First()); title != "" {
		return title
	}
	return textOf(doc.Find("title").First())
}

func sageAbstract(doc *goquery.Document) string {
	paras := doc.Find("section#abstract").First().ChildrenFiltered("p, div")
	if abstract := strings.Join(textsOf(paras), " "); abstract != "" {
		return abstract
	}
	return attrOf(doc.Find("meta[name='description']").First(), "content")
}

func sageKeywords(doc *goquery.Document) []string {
	if keywords := textsOf(doc.Find("section#keywords a")); len(keywords) > 0 {
		return keywords
	}
	return splitKeywords(attrOf(doc.Find("meta[name='keywords']").First(), "content"), ",")
}

// sageSection emits the section's own heading first, then its paragraphs
// and subsections in document order.
func sageSection(sec *goquery.Selection, t *tokens) {
	heading := sec.ChildrenFiltered(headingSelector).First()
	if heading.Length() > 0 {
		t.add(goquery.NodeName(heading), textOf(heading))
	}
	sec.Children().Each(func(_ int, c *goquery.Selection) {
		if heading.Length() > 0 && c.Get(0) == heading.Get(0) {
			return
		}
		tag := goquery.NodeName(c)
		switch {
		case tag == "section":
			sageSection(c, t)
		case tag == "p":
			t.add("p", textOf(c))
		case tag == "div" && attrOf(c, "role") == "paragraph":
			t.add("p", textOf(c))
		}
	})
}
