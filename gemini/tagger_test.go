package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

func TestTagger_Tag(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed answer", func(t *testing.T) {
		t.Parallel()

		var path string
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":" 13. **Type of welding joint**: Butt Joint \n"}]}}]}`))
		})

		got, err := gemini.NewTagger(client, "").Tag(context.Background(), "Butt joints were tested.")

		require.NoError(t, err)
		assert.Equal(t, "13. **Type of welding joint**: Butt Joint", got)
		assert.Contains(t, path, "gemini-2.5-flash:generateContent")
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.NewTagger(nil, "").Tag(context.Background(), "")

		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
	})

	t.Run("returns error for bad request", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := gemini.NewTagger(client, "gemini-2.0-flash").Tag(context.Background(), "text")

		require.Error(t, err)
		assert.Equal(t, papertree.EINTERNAL, papertree.ErrorCode(err))
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(papertree.SpecimenPrompt)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "fatigue")
	require.NotNil(t, config.Temperature)
	assert.Zero(t, *config.Temperature)
	assert.Equal(t, int32(6000), config.MaxOutputTokens)
}
