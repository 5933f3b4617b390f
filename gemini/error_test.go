package gemini

import (
	"errors"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestTranslateError(t *testing.T) {
	t.Parallel()

	t.Run("rate limit", func(t *testing.T) {
		t.Parallel()

		err := translateError(genai.APIError{Code: 429, Message: "quota"})

		assert.Equal(t, papertree.ERATELIMIT, papertree.ErrorCode(err))
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		err := translateError(genai.APIError{Code: 503, Message: "overloaded"})

		assert.Equal(t, papertree.EUNAVAILABLE, papertree.ErrorCode(err))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: refused")

		err := translateError(cause)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, papertree.EINTERNAL, papertree.ErrorCode(err))
	})
}
