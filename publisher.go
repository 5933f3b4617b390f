package papertree

import (
	"context"
	"strings"
)

// Publisher identifies the publisher whose export layout an input follows.
type Publisher string

// Supported publishers.
const (
	PublisherUnknown  Publisher = ""
	PublisherMDPI     Publisher = "mdpi"
	PublisherSpringer Publisher = "springer"
	PublisherWiley    Publisher = "wiley"
	PublisherSAGE     Publisher = "sage"
	PublisherIOP      Publisher = "iop"
	PublisherTaylor   Publisher = "tandf"
	PublisherASME     Publisher = "asme"
	PublisherElsevier Publisher = "elsevier"
)

// Publishers lists every supported publisher in display order.
func Publishers() []Publisher {
	return []Publisher{
		PublisherMDPI,
		PublisherSpringer,
		PublisherWiley,
		PublisherSAGE,
		PublisherIOP,
		PublisherTaylor,
		PublisherASME,
		PublisherElsevier,
	}
}

// doiPrefixes maps registrant prefixes to publishers.
var doiPrefixes = map[string]Publisher{
	"10.3390": PublisherMDPI,
	"10.1007": PublisherSpringer,
	"10.1186": PublisherSpringer,
	"10.1002": PublisherWiley,
	"10.1111": PublisherWiley,
	"10.1177": PublisherSAGE,
	"10.1088": PublisherIOP,
	"10.1080": PublisherTaylor,
	"10.1115": PublisherASME,
	"10.1016": PublisherElsevier,
}

// PublisherFromDOI infers the publisher from a DOI's registrant prefix.
// Returns PublisherUnknown for unrecognized prefixes.
func PublisherFromDOI(doi string) Publisher {
	doi = strings.TrimSpace(strings.ToLower(doi))
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "doi:")
	prefix, _, ok := strings.Cut(doi, "/")
	if !ok {
		return PublisherUnknown
	}
	return doiPrefixes[prefix]
}

// Extraction is what a publisher extractor recovers from one article.
// Each element of Sections is a separate token stream that becomes one
// top-level section of the document.
type Extraction struct {
	Title    string
	Abstract string
	Keywords []string
	Sections [][]Token
	Tables   []Table

	// Warnings records content the extractor had to leave out.
	Warnings []Warning
}

// TokenCount returns the number of tokens across all sections.
func (e *Extraction) TokenCount() int {
	var n int
	for _, s := range e.Sections {
		n += len(s)
	}
	return n
}

// Extractor turns one publisher export into an Extraction.
type Extractor interface {
	// Extract parses the raw document. The context bounds any auxiliary
	// fetches, such as tables hosted on separate pages.
	Extract(ctx context.Context, raw string) (*Extraction, error)

	// Name returns the extractor's identifier (e.g., "mdpi", "generic").
	Name() string
}

// PublisherDetector identifies the publisher of a raw export.
type PublisherDetector interface {
	// Detect analyzes the document and returns the identified publisher.
	// Returns PublisherUnknown if the publisher cannot be determined.
	Detect(raw string) Publisher
}

// ExtractorRegistry manages publisher-specific extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a specific publisher.
	// Returns nil if no extractor is registered for the publisher.
	Get(publisher Publisher) Extractor

	// GetForSource detects the publisher from the document, then from the
	// source DOI, and returns the matching extractor.
	// Falls back to a generic extractor if the publisher is unknown.
	GetForSource(raw string, src Source) Extractor

	// Register adds an extractor for a publisher.
	Register(publisher Publisher, extractor Extractor)

	// List returns all registered publishers.
	List() []Publisher
}
