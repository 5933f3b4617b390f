package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/goquery"
	"github.com/fwojciec/papertree/mock"
	"github.com/stretchr/testify/assert"
)

func namedExtractor(name string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(context.Context, string) (*papertree.Extraction, error) {
			return &papertree.Extraction{Title: name}, nil
		},
		NameFn: func() string { return name },
	}
}

func detectorReturning(p papertree.Publisher) *mock.PublisherDetector {
	return &mock.PublisherDetector{
		DetectFn: func(string) papertree.Publisher { return p },
	}
}

func TestRegistry_GetForSource(t *testing.T) {
	t.Parallel()

	t.Run("uses detected publisher", func(t *testing.T) {
		t.Parallel()

		mdpi := namedExtractor("mdpi")
		r := goquery.NewRegistry(detectorReturning(papertree.PublisherMDPI), namedExtractor("generic"))
		r.Register(papertree.PublisherMDPI, mdpi)

		got := r.GetForSource("<html></html>", papertree.NewSource("in/10.1007_abc.html"))

		assert.Same(t, mdpi, got)
	})

	t.Run("falls back to DOI in file name", func(t *testing.T) {
		t.Parallel()

		springer := namedExtractor("springer")
		r := goquery.NewRegistry(detectorReturning(papertree.PublisherUnknown), namedExtractor("generic"))
		r.Register(papertree.PublisherSpringer, springer)

		got := r.GetForSource("<html></html>", papertree.NewSource("in/10.1007_s00170-020-05000-1.html"))

		assert.Same(t, springer, got)
	})

	t.Run("ignores detected publisher without extractor", func(t *testing.T) {
		t.Parallel()

		springer := namedExtractor("springer")
		r := goquery.NewRegistry(detectorReturning(papertree.PublisherWiley), namedExtractor("generic"))
		r.Register(papertree.PublisherSpringer, springer)

		got := r.GetForSource("", papertree.NewSource("10.1007_x.html"))

		assert.Same(t, springer, got)
	})

	t.Run("returns fallback when nothing matches", func(t *testing.T) {
		t.Parallel()

		generic := namedExtractor("generic")
		r := goquery.NewRegistry(detectorReturning(papertree.PublisherUnknown), generic)

		got := r.GetForSource("", papertree.NewSource("article.html"))

		assert.Same(t, generic, got)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry(detectorReturning(papertree.PublisherUnknown), nil)
	first := namedExtractor("first")
	second := namedExtractor("second")

	r.Register(papertree.PublisherIOP, first)
	r.Register(papertree.PublisherIOP, second)

	assert.Same(t, second, r.Get(papertree.PublisherIOP))
	assert.Nil(t, r.Get(papertree.PublisherASME))
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry(detectorReturning(papertree.PublisherUnknown), nil)
	r.Register(papertree.PublisherWiley, namedExtractor("wiley"))
	r.Register(papertree.PublisherASME, namedExtractor("asme"))
	r.Register(papertree.PublisherMDPI, namedExtractor("mdpi"))

	assert.Equal(t, []papertree.Publisher{
		papertree.PublisherASME,
		papertree.PublisherMDPI,
		papertree.PublisherWiley,
	}, r.List())
}
