package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papertree"
)

var _ papertree.PublisherDetector = (*Detector)(nil)

// elsevierNamespace appears in the root of every Elsevier full-text XML
// export.
const elsevierNamespace = "http://www.elsevier.com/xml/"

// Detector identifies publishers from article exports.
// It checks citation metadata first, then publisher-specific CSS classes and
// structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes the export and returns the identified publisher.
// Returns PublisherUnknown if the publisher cannot be determined.
func (d *Detector) Detect(raw string) papertree.Publisher {
	head := raw[:min(len(raw), 4096)]
	if strings.Contains(head, elsevierNamespace) && !strings.Contains(strings.ToLower(head), "<html") {
		return papertree.PublisherElsevier
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return papertree.PublisherUnknown
	}

	// Citation metadata is the most reliable signal when present.
	if p := d.detectFromMeta(doc); p != papertree.PublisherUnknown {
		return p
	}

	switch {
	case d.hasSelector(doc, "h1.hypothesis_container") || d.hasSelector(doc, "div.html-body div.html-p"):
		return papertree.PublisherMDPI
	case d.hasSelector(doc, "h1.c-article-title") || d.hasSelector(doc, "section[data-title] div.c-article-section__content"):
		return papertree.PublisherSpringer
	case d.hasSelector(doc, "section.article-section__full") || d.hasSelector(doc, "h1.citation__title"):
		return papertree.PublisherWiley
	case d.hasSelector(doc, "div.hlFld-Fulltext") || d.hasSelector(doc, "span.hlFld-title"):
		return papertree.PublisherTaylor
	case d.hasSelector(doc, "div.wd-jnl-art-abstract") || d.hasSelector(doc, "div[itemprop='articleBody'] div.article-text"):
		return papertree.PublisherIOP
	case d.hasSelector(doc, "div.article-section-wrapper") || d.hasSelector(doc, "h1.article-title-main"):
		return papertree.PublisherASME
	case d.hasSelector(doc, "div.publicationContentTitle") || d.hasSelector(doc, "article section#abstract[role='doc-abstract']"):
		return papertree.PublisherSAGE
	}

	return papertree.PublisherUnknown
}

// publisherNames maps lower-cased publisher names found in metadata.
var publisherNames = []struct {
	name      string
	publisher papertree.Publisher
}{
	{"mdpi", papertree.PublisherMDPI},
	{"multidisciplinary digital publishing", papertree.PublisherMDPI},
	{"springer", papertree.PublisherSpringer},
	{"biomed central", papertree.PublisherSpringer},
	{"wiley", papertree.PublisherWiley},
	{"sage", papertree.PublisherSAGE},
	{"iop publishing", papertree.PublisherIOP},
	{"taylor & francis", papertree.PublisherTaylor},
	{"taylor and francis", papertree.PublisherTaylor},
	{"american society of mechanical engineers", papertree.PublisherASME},
	{"asme", papertree.PublisherASME},
	{"elsevier", papertree.PublisherElsevier},
}

// detectFromMeta checks citation DOI and publisher meta tags.
func (d *Detector) detectFromMeta(doc *goquery.Document) papertree.Publisher {
	for _, sel := range []string{"meta[name='citation_doi']", "meta[name='dc.identifier']", "meta[name='DC.Identifier']"} {
		if p := papertree.PublisherFromDOI(attrOf(doc.Find(sel).First(), "content")); p != papertree.PublisherUnknown {
			return p
		}
	}

	for _, sel := range []string{"meta[name='citation_publisher']", "meta[name='dc.publisher']", "meta[name='DC.Publisher']", "meta[property='og:site_name']"} {
		value := strings.ToLower(attrOf(doc.Find(sel).First(), "content"))
		if value == "" {
			continue
		}
		for _, n := range publisherNames {
			if strings.Contains(value, n.name) {
				return n.publisher
			}
		}
	}

	return papertree.PublisherUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
