package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*SpringerExtractor)(nil)

// SpringerExtractor extracts articles from Springer (SpringerLink, BMC)
// HTML pages. Every section[data-title] not on the skip list is a top-level
// section; the Abstract section supplies the abstract and keywords.
type SpringerExtractor struct {
	// Fetcher, if set, retrieves tables that are only linked from the
	// article and hosted on a separate page.
	Fetcher papertree.Fetcher
}

// NewSpringerExtractor creates a new SpringerExtractor. The fetcher may be
// nil, in which case remote tables are skipped.
func NewSpringerExtractor(fetcher papertree.Fetcher) *SpringerExtractor {
	return &SpringerExtractor{Fetcher: fetcher}
}

// Name returns the extractor's identifier.
func (e *SpringerExtractor) Name() string {
	return string(papertree.PublisherSpringer)
}

// Extract parses a Springer article page.
func (e *SpringerExtractor) Extract(ctx context.Context, raw string) (*papertree.Extraction, error) {
	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	ext := &papertree.Extraction{
		Title: textOf(doc.Find("h1.c-article-title").First()),
	}

	doc.Find("section[data-title]").Each(func(_ int, s *goquery.Selection) {
		title := attrOf(s, "data-title")
		if !papertree.SkipSection(title) {
			var t tokens
			springerSection(s, &t)
			if len(t) > 0 {
				ext.Sections = append(ext.Sections, t)
			}
			return
		}
		if strings.Contains(title, "Abstract") && ext.Abstract == "" {
			content := s.Find("div.c-article-section__content").First()
			ext.Abstract = textOf(content.Find("p").First())
			ext.Keywords = textsOf(content.Find("li.c-article-subject-list__subject"))
		}
	})

	ext.Tables, ext.Warnings = e.tables(ctx, doc, ext.Title)

	return checkExtraction(e.Name(), ext)
}

func springerSection(sec *goquery.Selection, t *tokens) {
	sec.Children().Each(func(_ int, c *goquery.Selection) {
		tag := goquery.NodeName(c)
		switch {
		case tag == "div":
			switch firstClass(c) {
			case "c-article-equation__number":
				t.add("eq_num", textOf(c))
			case "c-article-equation":
				t.add("eq", textOf(c))
			default:
				springerSection(c, t)
			}
		case papertree.IsHeadingTag(tag):
			t.add(tag, textOf(c))
		case tag == "p":
			t.add("p", textOf(c))
		case tag == "ol":
			t.addList(c)
		}
	})
}

// tables collects inline tables from article-table containers. Containers
// without an inline table link to a table page, which is fetched when a
// Fetcher is configured; a page that cannot be fetched or parsed yields a
// warning. With no containers at all, every table on the page is taken
// under the article title.
func (e *SpringerExtractor) tables(ctx context.Context, doc *goquery.Document, title string) ([]papertree.Table, []papertree.Warning) {
	if title == "" {
		title = "Untitled"
	}

	var out []papertree.Table
	var warnings []papertree.Warning
	boxes := 0
	doc.Find("div, figure").FilterFunction(isTableBox).Each(func(_ int, box *goquery.Selection) {
		// Nested containers belong to the outermost one.
		if box.ParentsFiltered("div, figure").FilterFunction(isTableBox).Length() > 0 {
			return
		}
		boxes++
		caption := textOf(box.Find("figcaption").First())
		if caption == "" {
			caption = title
		}
		if inner := box.Find("table"); inner.Length() > 0 {
			out = append(out, parseTables(inner, caption)...)
			return
		}
		tables, err := e.remoteTables(ctx, doc, box)
		if err != nil {
			warnings = append(warnings, papertree.Warning{
				Code:    papertree.WarnRemoteTable,
				Index:   boxes - 1,
				Message: err.Error(),
			})
			return
		}
		out = append(out, tables...)
	})

	if boxes == 0 {
		out = parseTables(doc.Find("table"), title)
	}
	return out, warnings
}

func isTableBox(_ int, s *goquery.Selection) bool {
	return strings.Contains(attrOf(s, "class"), "article-table")
}

// remoteTables fetches the table page linked from box. It returns nothing
// when no Fetcher is configured or the box has no link.
func (e *SpringerExtractor) remoteTables(ctx context.Context, doc *goquery.Document, box *goquery.Selection) ([]papertree.Table, error) {
	if e.Fetcher == nil {
		return nil, nil
	}
	link := box.Find("a[class*='pill-button']").First()
	href, ok := link.Attr("href")
	if !ok {
		return nil, nil
	}
	base, err := url.Parse(attrOf(doc.Find("meta[property='og:url']").First(), "content"))
	if err != nil {
		return nil, fmt.Errorf("table link %s: invalid og:url: %w", href, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("table link %s: %w", href, err)
	}
	target := base.ResolveReference(ref).String()

	page, err := e.Fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	sub, err := parseHTML(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	caption := textOf(sub.Find("figcaption").First())
	if caption == "" {
		caption = target
	}
	return parseTables(sub.Find("table"), caption), nil
}
