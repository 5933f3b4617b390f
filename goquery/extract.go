// Package goquery implements publisher detection and publisher-specific
// article extraction for HTML exports using goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

var spaceRe = regexp.MustCompile(`\s+`)

// parseHTML parses raw HTML into a goquery document.
func parseHTML(raw string) (*goquery.Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, papertree.Errorf(papertree.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, papertree.Errorf(papertree.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cleanText collapses runs of whitespace, including newlines, into single
// spaces.
func cleanText(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// textOf returns the cleaned text content of the selection.
func textOf(sel *goquery.Selection) string {
	return cleanText(sel.Text())
}

// attrOf returns the cleaned value of an attribute, or "" when absent.
func attrOf(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return cleanText(v)
}

// firstClass returns the first class listed on the element.
func firstClass(sel *goquery.Selection) string {
	fields := strings.Fields(attrOf(sel, "class"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// tokens accumulates the token stream of one section.
type tokens []papertree.Token

// add appends a token for tag unless text is empty.
func (t *tokens) add(tag, text string) {
	if text == "" {
		return
	}
	*t = append(*t, papertree.NewToken(tag, text))
}

// addList appends one token per element child of a list, keeping the child's
// tag (usually "li").
func (t *tokens) addList(list *goquery.Selection) {
	list.Children().Each(func(_ int, item *goquery.Selection) {
		t.add(goquery.NodeName(item), textOf(item))
	})
}

// splitKeywords splits a delimited keyword string, dropping empty entries.
func splitKeywords(s, sep string) []string {
	var out []string
	for _, kw := range strings.Split(s, sep) {
		if kw = cleanText(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// textsOf returns the non-empty cleaned texts of every element in sel.
func textsOf(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := textOf(s); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// checkExtraction rejects pages on which none of the publisher's markers
// matched, which usually means the wrong extractor was chosen.
func checkExtraction(name string, ext *papertree.Extraction) (*papertree.Extraction, error) {
	if ext.Title == "" && ext.Abstract == "" && len(ext.Sections) == 0 {
		return nil, papertree.Errorf(papertree.EINVALID, "no %s article content found", name)
	}
	return ext, nil
}
