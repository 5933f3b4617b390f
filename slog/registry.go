package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/papertree"
)

var _ papertree.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// publisher detection. Extractors it returns are wrapped in
// LoggingExtractor.
type LoggingRegistry struct {
	next     papertree.ExtractorRegistry
	detector papertree.PublisherDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next papertree.ExtractorRegistry, detector papertree.PublisherDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(publisher papertree.Publisher) papertree.Extractor {
	ext := r.next.Get(publisher)
	if ext == nil {
		return nil
	}
	return NewLoggingExtractor(ext, r.logger)
}

// GetForSource detects the publisher, logs it, and returns the extractor
// chosen by the wrapped registry.
func (r *LoggingRegistry) GetForSource(raw string, src papertree.Source) papertree.Extractor {
	begin := time.Now()
	publisher := r.detector.Detect(raw)
	name := string(publisher)
	if publisher == papertree.PublisherUnknown {
		name = "(unknown)"
	}
	ext := r.next.GetForSource(raw, src)
	extractor := "(none)"
	if ext != nil {
		extractor = ext.Name()
	}
	r.logger.Info("publisher detection",
		"file", src.File,
		"doi", src.DOI,
		"publisher", name,
		"extractor", extractor,
		"duration", time.Since(begin),
	)
	if ext == nil {
		return nil
	}
	return NewLoggingExtractor(ext, r.logger)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(publisher papertree.Publisher, extractor papertree.Extractor) {
	r.next.Register(publisher, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []papertree.Publisher {
	return r.next.List()
}
