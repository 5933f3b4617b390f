package papertree_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/stretchr/testify/assert"
)

func TestNewSource(t *testing.T) {
	t.Parallel()

	src := papertree.NewSource("/data/springer/10.1007_s00170-020-05000-1.html")

	assert.Equal(t, "/data/springer", src.Path)
	assert.Equal(t, "10.1007_s00170-020-05000-1.html", src.File)
	assert.Equal(t, "10.1007/s00170-020-05000-1", src.DOI)
	assert.Equal(t, "10.1007_s00170-020-05000-1", src.Name())
	assert.Equal(t, ".html", src.Ext())
	assert.Equal(t, "/data/springer/10.1007_s00170-020-05000-1.html", src.FullPath())
}

func TestDOIFromFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.1016/j.ijfatigue.2020.105", papertree.DOIFromFilename("10.1016_j.ijfatigue.2020.105.xml"))
	assert.Equal(t, "plain", papertree.DOIFromFilename("plain"))
	assert.Equal(t, "10.1007/s00170_020_1", papertree.DOIFromFilename("10.1007_s00170:020:1.html"))
	assert.Equal(t, "10.1016/a:b", papertree.DOIFromFilename("10.1016_a:b.xml"), "only Springer names encode underscores")
}

func TestNameFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *papertree.NameFilter

		assert.True(t, f.Match("anything.html"))
	})

	t.Run("include requires a match", func(t *testing.T) {
		t.Parallel()

		f := &papertree.NameFilter{Include: []*regexp.Regexp{regexp.MustCompile(`^10\.3390`)}}

		assert.True(t, f.Match("10.3390_ma1.html"))
		assert.False(t, f.Match("10.1007_x.html"))
	})

	t.Run("exclude applies after include", func(t *testing.T) {
		t.Parallel()

		f := &papertree.NameFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`\.html$`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}

		assert.True(t, f.Match("a.html"))
		assert.False(t, f.Match("draft.html"))
	})
}
