package papertree_test

import (
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sec builds an expected section; empty content is an empty, non-nil slice
// to match what the builder produces.
func sec(title string, items ...papertree.Item) *papertree.Section {
	if items == nil {
		items = []papertree.Item{}
	}
	return &papertree.Section{Title: title, Content: items}
}

func txt(s string) papertree.Text { return papertree.Text(s) }

func h(depth int, text string) papertree.Token { return papertree.Heading(depth, text) }

func p(text string) papertree.Token { return papertree.Paragraph(text) }

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields untitled empty section", func(t *testing.T) {
		t.Parallel()

		got, warnings := papertree.Build(nil)

		assert.Equal(t, sec(""), got)
		assert.Empty(t, warnings)
	})

	t.Run("body without headings becomes leaves", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{p("a"), p("b")})

		assert.Equal(t, sec("", txt("a"), txt("b")), got)
	})

	t.Run("single heading titles the section", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{h(2, "Intro"), p("a"), p("b")})

		assert.Equal(t, sec("Intro", txt("a"), txt("b")), got)
	})

	t.Run("sibling headings become children of a container", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{h(2, "A"), p("x"), h(2, "B"), p("y")})

		assert.Equal(t, sec("", sec("A", txt("x")), sec("B", txt("y"))), got)
	})

	t.Run("depths are relative to the shallowest heading", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{h(3, "A"), p("x"), h(5, "B"), p("y")})

		assert.Equal(t, sec("A", txt("x"), txt("y")), got)
	})

	t.Run("lone subsection is spliced into its parent", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{h(2, "A"), p("a"), h(3, "B"), p("b")})

		assert.Equal(t, sec("A", txt("a"), txt("b")), got)
	})

	t.Run("sibling subsections keep their titles", func(t *testing.T) {
		t.Parallel()

		tokens := []papertree.Token{
			h(2, "A"), p("a"),
			h(3, "B"), p("b"),
			h(3, "C"), p("c"),
		}

		got, _ := papertree.Build(tokens)

		assert.Equal(t, sec("A", txt("a"), sec("B", txt("b")), sec("C", txt("c"))), got)
	})

	t.Run("body before the first heading precedes sibling sections", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{p("pre"), h(2, "A"), p("x"), h(2, "B"), p("y")})

		assert.Equal(t, sec("", txt("pre"), sec("A", txt("x")), sec("B", txt("y"))), got)
	})

	t.Run("body before the only heading stays in the section", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{p("pre"), h(2, "A"), p("x")})

		assert.Equal(t, sec("A", txt("pre"), txt("x")), got)
	})

	t.Run("adjacent headings produce an empty section", func(t *testing.T) {
		t.Parallel()

		got, _ := papertree.Build([]papertree.Token{h(2, "A"), h(2, "B"), p("y")})

		assert.Equal(t, sec("", sec("A"), sec("B", txt("y"))), got)
	})

	t.Run("deep nesting inside siblings", func(t *testing.T) {
		t.Parallel()

		tokens := []papertree.Token{
			h(1, "Methods"),
			h(2, "Setup"), p("s1"),
			h(3, "Rig"), p("r1"),
			h(3, "Sensors"), p("r2"),
			h(1, "Results"), p("res"),
		}

		got, _ := papertree.Build(tokens)

		want := sec("",
			sec("Methods", txt("s1"), sec("Rig", txt("r1")), sec("Sensors", txt("r2"))),
			sec("Results", txt("res")),
		)
		assert.Equal(t, want, got)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		tokens := []papertree.Token{h(2, "A"), p("x"), h(3, "B"), p("y"), h(3, "C"), h(2, "D"), p("z")}

		first, _ := papertree.Build(tokens)
		second, _ := papertree.Build(tokens)

		assert.Equal(t, first, second)
	})
}

func TestBuild_PreservesLeafOrder(t *testing.T) {
	t.Parallel()

	streams := [][]papertree.Token{
		{p("a"), h(2, "A"), p("b"), h(4, "B"), p("c"), h(3, "C"), p("d"), h(2, "D"), p("e")},
		{h(5, "A"), h(4, "B"), p("a"), h(6, "C"), p("b"), p("c")},
		{h(1, "A"), h(2, "B"), h(3, "C"), p("a"), h(2, "D"), p("b"), h(1, "E"), h(3, "F"), p("c")},
		{p("a"), p("b"), h(2, "only"), p("c")},
	}

	for _, tokens := range streams {
		var want []string
		for _, tok := range tokens {
			if !tok.IsHeading() {
				want = append(want, tok.Text)
			}
		}

		root, _ := papertree.Build(tokens)
		assert.Equal(t, want, root.Leaves())

		nested, _ := papertree.Builder{KeepNestedTitles: true}.Build(tokens)
		assert.Equal(t, want, nested.Leaves())
	}
}

func TestBuilder_KeepNestedTitles(t *testing.T) {
	t.Parallel()

	t.Run("keeps lone subsection as titled child", func(t *testing.T) {
		t.Parallel()

		b := papertree.Builder{KeepNestedTitles: true}

		got, _ := b.Build([]papertree.Token{h(2, "A"), p("a"), h(3, "B"), p("b")})

		assert.Equal(t, sec("A", txt("a"), sec("B", txt("b"))), got)
	})

	t.Run("does not double wrap sibling subsections", func(t *testing.T) {
		t.Parallel()

		b := papertree.Builder{KeepNestedTitles: true}

		got, _ := b.Build([]papertree.Token{h(2, "A"), h(3, "B"), p("b"), h(3, "C"), p("c")})

		assert.Equal(t, sec("A", sec("B", txt("b")), sec("C", txt("c"))), got)
	})
}

func TestBuilder_MalformedHeadings(t *testing.T) {
	t.Parallel()

	t.Run("coerces headings above top depth and warns", func(t *testing.T) {
		t.Parallel()

		tokens := []papertree.Token{h(2, "A"), p("x"), h(1, "B"), p("y")}
		b := papertree.Builder{TopDepth: 2}

		got, warnings := b.Build(tokens)

		assert.Equal(t, sec("", sec("A", txt("x")), sec("B", txt("y"))), got)
		require.Len(t, warnings, 1)
		assert.Equal(t, papertree.WarnMalformedHeadingOrder, warnings[0].Code)
		assert.Equal(t, 2, warnings[0].Index)
		assert.Equal(t, 1, tokens[2].Depth, "input must not be modified")
	})

	t.Run("coerces non-positive depths", func(t *testing.T) {
		t.Parallel()

		got, warnings := papertree.Build([]papertree.Token{h(0, "Zero"), p("x")})

		assert.Equal(t, sec("Zero", txt("x")), got)
		require.Len(t, warnings, 1)
		assert.Equal(t, 0, warnings[0].Index)
	})

	t.Run("well formed input has no warnings", func(t *testing.T) {
		t.Parallel()

		_, warnings := papertree.Builder{TopDepth: 2}.Build([]papertree.Token{h(2, "A"), h(3, "B"), p("x")})

		assert.Empty(t, warnings)
	})
}
