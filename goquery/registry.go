package goquery

import (
	"slices"

	"github.com/fwojciec/papertree"
)

var _ papertree.ExtractorRegistry = (*Registry)(nil)

// Registry manages publisher-specific extractors and auto-detects the
// publisher of an export. It uses a PublisherDetector on the content, then
// the DOI encoded in the file name, and falls back to a generic extractor
// when neither identifies a registered publisher.
type Registry struct {
	detector   papertree.PublisherDetector
	fallback   papertree.Extractor
	extractors map[papertree.Publisher]papertree.Extractor
}

// NewRegistry creates a new Registry with the given detector and fallback extractor.
func NewRegistry(detector papertree.PublisherDetector, fallback papertree.Extractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[papertree.Publisher]papertree.Extractor),
	}
}

// Get returns the extractor for a specific publisher.
// Returns nil if no extractor is registered for the publisher.
func (r *Registry) Get(publisher papertree.Publisher) papertree.Extractor {
	return r.extractors[publisher]
}

// GetForSource detects the publisher and returns the appropriate extractor.
func (r *Registry) GetForSource(raw string, src papertree.Source) papertree.Extractor {
	if e, ok := r.extractors[r.detector.Detect(raw)]; ok {
		return e
	}
	if e, ok := r.extractors[papertree.PublisherFromDOI(src.DOI)]; ok {
		return e
	}
	return r.fallback
}

// Register adds an extractor for a publisher.
// If an extractor is already registered for the publisher, it is replaced.
func (r *Registry) Register(publisher papertree.Publisher, extractor papertree.Extractor) {
	r.extractors[publisher] = extractor
}

// List returns all registered publishers in sorted order.
func (r *Registry) List() []papertree.Publisher {
	publishers := make([]papertree.Publisher, 0, len(r.extractors))
	for p := range r.extractors {
		publishers = append(publishers, p)
	}
	slices.Sort(publishers)
	return publishers
}
