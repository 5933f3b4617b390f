package mock

import (
	"context"

	"github.com/fwojciec/papertree"
)

var _ papertree.Tagger = (*Tagger)(nil)

// Tagger is a mock implementation of papertree.Tagger.
type Tagger struct {
	TagFn func(ctx context.Context, text string) (string, error)
}

func (t *Tagger) Tag(ctx context.Context, text string) (string, error) {
	return t.TagFn(ctx, text)
}

var _ papertree.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of papertree.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, key string) error
}

func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.WaitFn(ctx, key)
}

var _ papertree.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of papertree.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}
