package batch

import (
	"context"
	"time"

	"github.com/fwojciec/papertree"
)

// TagFunc is the signature for a tagging call.
type TagFunc func(ctx context.Context, text string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for tagging retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether err is a rate limit or a transient provider
// failure.
func Retryable(err error) bool {
	switch papertree.ErrorCode(err) {
	case papertree.ERATELIMIT, papertree.EUNAVAILABLE:
		return true
	}
	return false
}

// TagWithRetry calls tag, retrying retryable failures once per delay.
// The logger, if provided, is called for each retry attempt.
func TagWithRetry(ctx context.Context, name, text string, tag TagFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := tag(ctx, text)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if !Retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", name, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
