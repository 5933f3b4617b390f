package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOPExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("starts a section at every h2", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="citation_title" content="Thermal fatigue of solder"></head><body>
<div class="wd-jnl-art-abstract"><p>Solder joints crack.</p><p>We model it.</p></div>
<div itemprop="articleBody">
  <div class="article-text"><p>Preface text.</p></div>
  <h2>1. Introduction</h2>
  <div class="article-text"><p>Electronics heat up.</p></div>
  <h3>1.1. Prior work</h3>
  <div class="article-text"><p>Coffin and Manson.</p><div class="article-text"><p>Nested.</p></div></div>
  <h2>2. Model</h2>
  <div class="article-text"><p>A creep model.</p></div>
</div>
</body></html>`

		ext, err := goquery.NewIOPExtractor().Extract(context.Background(), html)

		require.NoError(t, err)
		assert.Equal(t, "Thermal fatigue of solder", ext.Title)
		assert.Equal(t, "Solder joints crack. We model it.", ext.Abstract)
		require.Len(t, ext.Sections, 3)
		assert.Equal(t, []papertree.Token{papertree.Paragraph("Preface text.")}, ext.Sections[0])
		assert.Equal(t, []papertree.Token{
			papertree.Heading(2, "1. Introduction"),
			papertree.Paragraph("Electronics heat up."),
			papertree.Heading(3, "1.1. Prior work"),
			papertree.Paragraph("Coffin and Manson."),
			papertree.Paragraph("Nested."),
		}, ext.Sections[1])
		assert.Equal(t, []papertree.Token{
			papertree.Heading(2, "2. Model"),
			papertree.Paragraph("A creep model."),
		}, ext.Sections[2])
	})

	t.Run("returns error for unrelated page", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewIOPExtractor().Extract(context.Background(), "<html><body></body></html>")

		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
	})
}
