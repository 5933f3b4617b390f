package papertree

import (
	"context"
	_ "embed"
)

// SpecimenPrompt instructs a model to extract fatigue test specimen
// parameters, S-N and e-N data from an article, using "-" for anything the
// text does not state.
//
//go:embed specimen_prompt.txt
var SpecimenPrompt string

// Tagger sends article text to a language model and returns its answer.
type Tagger interface {
	// Tag returns the model's response to text under the tagger's system
	// prompt. Returns ERATELIMIT or EUNAVAILABLE for failures worth
	// retrying.
	Tag(ctx context.Context, text string) (string, error)
}

// Limiter provides keyed rate limiting, e.g. per model.
type Limiter interface {
	// Wait blocks until the rate limit allows a request for key.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, key string) error
}
