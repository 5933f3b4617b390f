package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/papertree"
	"golang.org/x/time/rate"
)

var _ papertree.Limiter = (*KeyedLimiter)(nil)

// KeyedLimiter provides per-key rate limiting using token buckets, e.g. one
// bucket per model so that tagging with different models does not share a
// budget.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewKeyedLimiter creates a new KeyedLimiter with the specified requests per
// second limit. Each key gets its own limiter with a burst of 1.
func NewKeyedLimiter(rps float64) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request for key.
// Returns an error if the context is canceled before the wait completes.
func (l *KeyedLimiter) Wait(ctx context.Context, key string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
