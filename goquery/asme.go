package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*ASMEExtractor)(nil)

// ASMEExtractor extracts articles from ASME Digital Collection HTML pages.
// Each div.article-section-wrapper yields one section: its first heading
// followed by all of its paragraphs.
type ASMEExtractor struct{}

// NewASMEExtractor creates a new ASMEExtractor.
func NewASMEExtractor() *ASMEExtractor {
	return &ASMEExtractor{}
}

// Name returns the extractor's identifier.
func (e *ASMEExtractor) Name() string {
	return string(papertree.PublisherASME)
}

// Extract parses an ASME article page.
func (e *ASMEExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	ext := &papertree.Extraction{
		Title:    textOf(doc.Find("h1.article-title-main").First()),
		Abstract: strings.Join(textsOf(doc.Find("section.abstract").First().Find("p")), " "),
		Keywords: textsOf(doc.Find("div.content-metadata-keywords").First().Find("a")),
	}
	if len(ext.Keywords) == 0 {
		doc.Find("meta[name='citation_keyword']").Each(func(_ int, s *goquery.Selection) {
			if kw := attrOf(s, "content"); kw != "" {
				ext.Keywords = append(ext.Keywords, kw)
			}
		})
	}

	doc.Find("div.article-section-wrapper").Each(func(_ int, wrap *goquery.Selection) {
		if wrap.Find("section.abstract").Length() > 0 {
			return
		}
		var t tokens
		if h := wrap.Find("h2, h3, h4, h5, h6").First(); h.Length() > 0 {
			t.add(goquery.NodeName(h), textOf(h))
		}
		wrap.Find("p").Each(func(_ int, p *goquery.Selection) {
			t.add("p", textOf(p))
		})
		if len(t) > 0 {
			ext.Sections = append(ext.Sections, t)
		}
	})

	return checkExtraction(e.Name(), ext)
}
