package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, batch.Retryable(papertree.Errorf(papertree.ERATELIMIT, "slow down")))
	assert.True(t, batch.Retryable(papertree.Errorf(papertree.EUNAVAILABLE, "busy")))
	assert.False(t, batch.Retryable(papertree.Errorf(papertree.EINVALID, "bad key")))
	assert.False(t, batch.Retryable(errors.New("boom")))
}

func TestTagWithRetry(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{0, 0, 0}

	t.Run("retries rate limits until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		tag := func(ctx context.Context, text string) (string, error) {
			calls++
			if calls < 3 {
				return "", papertree.Errorf(papertree.ERATELIMIT, "slow down")
			}
			return "answer", nil
		}
		var logged []string
		logger := func(format string, args ...any) { logged = append(logged, format) }

		got, err := batch.TagWithRetry(context.Background(), "a.txt", "text", tag, logger, delays)

		require.NoError(t, err)
		assert.Equal(t, "answer", got)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("gives up after the last delay", func(t *testing.T) {
		t.Parallel()

		calls := 0
		tag := func(ctx context.Context, text string) (string, error) {
			calls++
			return "", papertree.Errorf(papertree.EUNAVAILABLE, "busy")
		}

		_, err := batch.TagWithRetry(context.Background(), "a.txt", "text", tag, nil, delays)

		assert.Equal(t, papertree.EUNAVAILABLE, papertree.ErrorCode(err))
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		tag := func(ctx context.Context, text string) (string, error) {
			calls++
			return "", papertree.Errorf(papertree.EINVALID, "bad key")
		}

		_, err := batch.TagWithRetry(context.Background(), "a.txt", "text", tag, nil, delays)

		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		tag := func(ctx context.Context, text string) (string, error) {
			cancel()
			return "", papertree.Errorf(papertree.ERATELIMIT, "slow down")
		}

		_, err := batch.TagWithRetry(ctx, "a.txt", "text", tag, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
