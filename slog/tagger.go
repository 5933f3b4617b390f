package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papertree"
)

var _ papertree.Tagger = (*LoggingTagger)(nil)

// LoggingTagger wraps a Tagger with debug logging.
type LoggingTagger struct {
	next   papertree.Tagger
	model  string
	logger *slog.Logger
}

// NewLoggingTagger creates a new LoggingTagger. model is only used as a
// log attribute.
func NewLoggingTagger(next papertree.Tagger, model string, logger *slog.Logger) *LoggingTagger {
	return &LoggingTagger{next: next, model: model, logger: logger}
}

// Tag delegates to the wrapped tagger and logs the exchange sizes.
func (t *LoggingTagger) Tag(ctx context.Context, text string) (answer string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("tag",
			"model", t.model,
			"chars", len(text),
			"answer", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Tag(ctx, text)
}
