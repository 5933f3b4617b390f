package mock

import "github.com/fwojciec/papertree"

var _ papertree.PublisherDetector = (*PublisherDetector)(nil)

// PublisherDetector is a mock implementation of papertree.PublisherDetector.
type PublisherDetector struct {
	DetectFn func(raw string) papertree.Publisher
}

func (d *PublisherDetector) Detect(raw string) papertree.Publisher {
	return d.DetectFn(raw)
}

var _ papertree.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of papertree.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn          func(publisher papertree.Publisher) papertree.Extractor
	GetForSourceFn func(raw string, src papertree.Source) papertree.Extractor
	RegisterFn     func(publisher papertree.Publisher, extractor papertree.Extractor)
	ListFn         func() []papertree.Publisher
}

func (r *ExtractorRegistry) Get(publisher papertree.Publisher) papertree.Extractor {
	return r.GetFn(publisher)
}

func (r *ExtractorRegistry) GetForSource(raw string, src papertree.Source) papertree.Extractor {
	return r.GetForSourceFn(raw, src)
}

func (r *ExtractorRegistry) Register(publisher papertree.Publisher, extractor papertree.Extractor) {
	r.RegisterFn(publisher, extractor)
}

func (r *ExtractorRegistry) List() []papertree.Publisher {
	return r.ListFn()
}
