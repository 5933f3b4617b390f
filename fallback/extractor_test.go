package fallback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/fallback"
	"github.com/fwojciec/papertree/goldmark"
	"github.com/fwojciec/papertree/htmltomarkdown"
	"github.com/fwojciec/papertree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentReturning(res *papertree.ContentResult, err error) *mock.ContentExtractor {
	return &mock.ContentExtractor{
		ExtractFn: func(string) (*papertree.ContentResult, error) { return res, err },
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("chains content conversion and tokenizing", func(t *testing.T) {
		t.Parallel()

		content := contentReturning(&papertree.ContentResult{
			Title:       "Weld toe cracking",
			Description: "Toe cracks dominate.",
			Keywords:    []string{"fatigue"},
			ContentHTML: "<h1>Weld toe cracking</h1><h2>Introduction</h2><p>Cracks start at the toe.</p><ul><li>butt</li></ul>",
		}, nil)
		e := fallback.NewExtractor(content, htmltomarkdown.NewConverter(), goldmark.NewTokenizer())

		ext, err := e.Extract(context.Background(), "<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Weld toe cracking", ext.Title)
		assert.Equal(t, "Toe cracks dominate.", ext.Abstract)
		assert.Equal(t, []string{"fatigue"}, ext.Keywords)
		assert.Equal(t, [][]papertree.Token{{
			papertree.Heading(2, "Introduction"),
			papertree.Paragraph("Cracks start at the toe."),
			{Kind: papertree.KindListItem, Text: "butt"},
		}}, ext.Sections)
	})

	t.Run("skips conversion without content", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				t.Fatal("converter must not be called")
				return "", nil
			},
		}
		e := fallback.NewExtractor(contentReturning(&papertree.ContentResult{Title: "Only a title"}, nil), conv, goldmark.NewTokenizer())

		ext, err := e.Extract(context.Background(), "<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Only a title", ext.Title)
		assert.Empty(t, ext.Sections)
	})

	t.Run("returns EINVALID when nothing was found", func(t *testing.T) {
		t.Parallel()

		e := fallback.NewExtractor(contentReturning(&papertree.ContentResult{}, nil), htmltomarkdown.NewConverter(), goldmark.NewTokenizer())

		_, err := e.Extract(context.Background(), "<html></html>")

		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
	})

	t.Run("wraps content extractor errors", func(t *testing.T) {
		t.Parallel()

		cause := papertree.Errorf(papertree.EINVALID, "empty HTML input")
		e := fallback.NewExtractor(contentReturning(nil, cause), htmltomarkdown.NewConverter(), goldmark.NewTokenizer())

		_, err := e.Extract(context.Background(), "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
	})

	t.Run("propagates tokenizer errors", func(t *testing.T) {
		t.Parallel()

		tok := &mock.MarkdownTokenizer{
			TokenizeFn: func(string) ([]papertree.Token, error) { return nil, errors.New("boom") },
		}
		e := fallback.NewExtractor(contentReturning(&papertree.ContentResult{ContentHTML: "<p>x</p>"}, nil), htmltomarkdown.NewConverter(), tok)

		_, err := e.Extract(context.Background(), "<p>x</p>")

		assert.ErrorContains(t, err, "boom")
	})

	t.Run("has generic name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "generic", fallback.NewExtractor(nil, nil, nil).Name())
	})
}
