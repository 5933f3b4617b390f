package chardet_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/papertree/chardet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("passes UTF-8 through", func(t *testing.T) {
		t.Parallel()

		got, err := chardet.NewDecoder().Decode([]byte("<p>Fatigue à 20 °C</p>"))

		require.NoError(t, err)
		assert.Equal(t, "<p>Fatigue à 20 °C</p>", got)
	})

	t.Run("strips UTF-8 byte order mark", func(t *testing.T) {
		t.Parallel()

		got, err := chardet.NewDecoder().Decode([]byte("\xef\xbb\xbf<html></html>"))

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", got)
	})

	t.Run("decodes Latin-1 text", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("<p>Les éprouvettes ont été sollicitées en fatigue jusqu'à la rupture complète du matériau étudié.</p>\n", 20)
		raw, err := charmap.ISO8859_1.NewEncoder().String(text)
		require.NoError(t, err)

		got, err := chardet.NewDecoder().Decode([]byte(raw))

		require.NoError(t, err)
		assert.Contains(t, got, "été sollicitées")
	})

	t.Run("decodes UTF-16 with byte order mark", func(t *testing.T) {
		t.Parallel()

		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		raw, err := enc.String("<html><body>Crack growth</body></html>")
		require.NoError(t, err)

		got, err := chardet.NewDecoder().Decode([]byte(raw))

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Crack growth</body></html>", got)
	})
}
