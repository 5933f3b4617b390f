// Package etree implements extraction of Elsevier full-text XML exports
// using etree.
package etree

import (
	"context"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/papertree"
)

// Namespaces used by Elsevier full-text retrieval responses.
const (
	nsCommon  = "http://www.elsevier.com/xml/common/dtd"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsXOCS    = "http://www.elsevier.com/xml/xocs/dtd"
	nsMathML  = "http://www.w3.org/1998/Math/MathML"
)

var _ papertree.Extractor = (*ElsevierExtractor)(nil)

var spaceRe = regexp.MustCompile(`\s+`)

// ElsevierExtractor extracts articles from Elsevier full-text XML.
// Metadata comes from the Dublin Core block; the body from the ce:section
// tree, or from xocs:rawtext when the export carries no structured body.
type ElsevierExtractor struct{}

// NewElsevierExtractor creates a new ElsevierExtractor.
func NewElsevierExtractor() *ElsevierExtractor {
	return &ElsevierExtractor{}
}

// Name returns the extractor's identifier.
func (e *ElsevierExtractor) Name() string {
	return string(papertree.PublisherElsevier)
}

// Extract parses an Elsevier XML document.
func (e *ElsevierExtractor) Extract(_ context.Context, raw string) (*papertree.Extraction, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, papertree.Errorf(papertree.EINVALID, "empty XML input")
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, papertree.Errorf(papertree.EINVALID, "failed to parse XML: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, papertree.Errorf(papertree.EINVALID, "empty XML document")
	}

	ext := &papertree.Extraction{
		Title:    textOf(root.FindElementPath(dcTitle)),
		Abstract: abstractOf(root),
		Keywords: keywordsOf(root),
		Sections: sectionsOf(root),
		Tables:   parseTables(root),
	}

	if ext.Title == "" && ext.Abstract == "" && len(ext.Sections) == 0 {
		return nil, papertree.Errorf(papertree.EINVALID, "no Elsevier article content found")
	}
	return ext, nil
}

func abstractOf(root *etree.Element) string {
	if abstract := textOf(root.FindElementPath(dcDescription)); abstract != "" {
		return abstract
	}
	var paras []string
	for _, a := range root.FindElementsPath(ceAbstract) {
		for _, p := range a.FindElementsPath(ceSimplePara) {
			if text := textOf(p); text != "" {
				paras = append(paras, text)
			}
		}
	}
	return strings.Join(paras, " ")
}

func keywordsOf(root *etree.Element) []string {
	keywords := textsOf(root.FindElementsPath(dcSubject))
	if len(keywords) > 0 {
		return keywords
	}
	for _, kw := range root.FindElementsPath(ceKeyword) {
		if text := textOf(kw.FindElementPath(ceText)); text != "" {
			keywords = append(keywords, text)
		}
	}
	return keywords
}

// sectionsOf returns one token stream per top-level body section. Without a
// ce:sections body the raw text, if any, becomes a single paragraph.
func sectionsOf(root *etree.Element) [][]papertree.Token {
	var out [][]papertree.Token
	if body := root.FindElementPath(ceSections); body != nil {
		for _, sec := range body.FindElementsPath(ceSection) {
			if papertree.SkipSection(textOf(sec.FindElementPath(ceSectionTitle))) {
				continue
			}
			var t []papertree.Token
			section(sec, 1, &t)
			if len(t) > 0 {
				out = append(out, t)
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	if raw := textOf(root.FindElementPath(xocsRawtext)); raw != "" {
		return [][]papertree.Token{{papertree.Paragraph(raw)}}
	}
	return nil
}

func section(sec *etree.Element, depth int, t *[]papertree.Token) {
	add := func(tok papertree.Token) {
		if tok.Text != "" {
			*t = append(*t, tok)
		}
	}
	for _, c := range sec.ChildElements() {
		if c.NamespaceURI() != nsCommon {
			continue
		}
		switch c.Tag {
		case "section-title":
			add(papertree.Heading(depth, textOf(c)))
		case "para", "simple-para":
			add(papertree.Paragraph(textOf(c)))
		case "section":
			section(c, depth+1, t)
		case "list":
			for _, item := range c.FindElementsPath(ceListItem) {
				add(papertree.Token{Kind: papertree.KindListItem, Text: textOf(item)})
			}
		case "display":
			for _, f := range c.FindElementsPath(ceFormula) {
				add(papertree.Token{Kind: papertree.KindEquation, Text: textOf(f)})
			}
		}
	}
}

// Compiled lookups for the elements the extractor reads. Elements are
// matched by namespace URI, so exports may bind any prefix.
var (
	dcTitle         = descendant(nsDC, "title")
	dcDescription   = descendant(nsDC, "description")
	dcSubject       = descendant(nsDCTerms, "subject")
	ceAbstract      = descendant(nsCommon, "abstract")
	ceSimplePara    = descendant(nsCommon, "simple-para")
	ceKeyword       = descendant(nsCommon, "keyword")
	ceText          = descendant(nsCommon, "text")
	ceSections      = descendant(nsCommon, "sections")
	ceSection       = childPath(nsCommon, "section")
	ceSectionTitle  = childPath(nsCommon, "section-title")
	ceListItem      = descendant(nsCommon, "list-item")
	ceFormula       = descendant(nsCommon, "formula")
	xocsRawtext     = descendant(nsXOCS, "rawtext")
	ceTable         = descendant(nsCommon, "table")
	ceLabel         = descendant(nsCommon, "label")
	ceCaption       = descendant(nsCommon, "caption")
	ceFootnote      = descendant(nsCommon, "footnote")
	ceTableFootnote = descendant(nsCommon, "table-footnote")
	mathMLMath      = descendant(nsMathML, "math")
)

// descendant compiles a path selecting descendants with the given namespace
// URI and local name.
func descendant(space, tag string) etree.Path {
	return etree.MustCompilePath(".//" + tag + "[namespace-uri()='" + space + "']")
}

// childPath compiles a path selecting direct children with the given
// namespace URI and local name.
func childPath(space, tag string) etree.Path {
	return etree.MustCompilePath("./" + tag + "[namespace-uri()='" + space + "']")
}

// innerText concatenates all character data beneath el.
func innerText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch tok := tok.(type) {
		case *etree.CharData:
			b.WriteString(tok.Data)
		case *etree.Element:
			innerText(tok, b)
		}
	}
}

// textOf returns the whitespace-collapsed text content of el, or "" for nil.
func textOf(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	innerText(el, &b)
	return strings.TrimSpace(spaceRe.ReplaceAllString(b.String(), " "))
}

func textsOf(els []*etree.Element) []string {
	var out []string
	for _, el := range els {
		if text := textOf(el); text != "" {
			out = append(out, text)
		}
	}
	return out
}
