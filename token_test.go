package papertree_test

import (
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/stretchr/testify/assert"
)

func TestNewToken(t *testing.T) {
	t.Parallel()

	t.Run("maps heading tags to depths", func(t *testing.T) {
		t.Parallel()

		tok := papertree.NewToken("H3", "Method")

		assert.Equal(t, papertree.Heading(3, "Method"), tok)
		assert.True(t, tok.IsHeading())
		assert.Equal(t, "h3", tok.Tag())
	})

	t.Run("keeps known body kinds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, papertree.KindListItem, papertree.NewToken("li", "x").Kind)
		assert.Equal(t, papertree.KindEquation, papertree.NewToken("eq", "x").Kind)
		assert.Equal(t, papertree.KindEquationNumber, papertree.NewToken("eq_num", "(1)").Kind)
		assert.Equal(t, papertree.KindTableRef, papertree.NewToken("table", "x").Kind)
	})

	t.Run("treats anything else as paragraph", func(t *testing.T) {
		t.Parallel()

		for _, tag := range []string{"p", "div", "ul", "hx", "h10", ""} {
			tok := papertree.NewToken(tag, "x")
			assert.Equal(t, papertree.KindParagraph, tok.Kind, tag)
			assert.Equal(t, "p", tok.Tag())
		}
	})
}

func TestIsHeadingTag(t *testing.T) {
	t.Parallel()

	assert.True(t, papertree.IsHeadingTag("h1"))
	assert.True(t, papertree.IsHeadingTag("H6"))
	assert.False(t, papertree.IsHeadingTag("header"))
	assert.False(t, papertree.IsHeadingTag("p"))
}
