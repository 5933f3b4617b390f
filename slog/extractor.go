package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papertree"
)

var _ papertree.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   papertree.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next papertree.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it recovered.
func (e *LoggingExtractor) Extract(ctx context.Context, raw string) (ext *papertree.Extraction, err error) {
	defer func(begin time.Time) {
		var sections, tokens, tables int
		if ext != nil {
			sections = len(ext.Sections)
			tokens = ext.TokenCount()
			tables = len(ext.Tables)
		}
		e.logger.Info("extract",
			"extractor", e.next.Name(),
			"bytes", len(raw),
			"sections", sections,
			"tokens", tokens,
			"tables", tables,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, raw)
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}
