package readability_test

import (
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Residual stress in welded plates</title></head>
<body><article><p>Residual stresses were measured by hole drilling.</p></article></body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Residual stress in welded plates", result.Title)
	assert.NotNil(t, result.Keywords)
}

func TestExtractor_UsesDescriptionAsExcerpt(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Notch sensitivity</title>
<meta name="description" content="Notch sensitivity of high strength steels.">
</head>
<body><article><p>High strength steels are notch sensitive under cyclic loading conditions.</p></article></body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Notch sensitivity of high strength steels.", result.Description)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article text on fatigue crack closure that should be preserved in the output.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "fatigue crack closure")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
}
