package papertree_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("uses legacy field names", func(t *testing.T) {
		t.Parallel()

		s := sec("Methods", txt("a"), sec("Rig", txt("b")))

		data, err := json.Marshal(s)

		require.NoError(t, err)
		assert.JSONEq(t, `{"sec_title":"Methods","content":["a",{"sec_title":"Rig","content":["b"]}]}`, string(data))
	})

	t.Run("encodes empty content as empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&papertree.Section{Title: "Empty"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"sec_title":"Empty","content":[]}`, string(data))
	})
}

func TestSection_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trips a built tree", func(t *testing.T) {
		t.Parallel()

		tokens := []papertree.Token{
			p("pre"),
			h(2, "A"), p("a"), h(3, "B"), p("b"), h(3, "C"), p("c"),
			h(2, "D"), h(2, "E"), p("e"),
		}
		want, _ := papertree.Build(tokens)

		data, err := json.Marshal(want)
		require.NoError(t, err)

		var got papertree.Section
		require.NoError(t, json.Unmarshal(data, &got))

		assert.Equal(t, want, &got)
	})

	t.Run("splices legacy nested arrays", func(t *testing.T) {
		t.Parallel()

		var got papertree.Section
		err := json.Unmarshal([]byte(`{"sec_title":"A","content":["a",["b",["c"]],"d"]}`), &got)

		require.NoError(t, err)
		assert.Equal(t, sec("A", txt("a"), txt("b"), txt("c"), txt("d")), &got)
	})

	t.Run("rejects unexpected elements", func(t *testing.T) {
		t.Parallel()

		var got papertree.Section
		err := json.Unmarshal([]byte(`{"sec_title":"A","content":[42]}`), &got)

		assert.Error(t, err)
	})
}

func TestSection_Walk(t *testing.T) {
	t.Parallel()

	s := sec("", txt("a"), sec("B", txt("b"), sec("C", txt("c"))))

	var depths []int
	s.Walk(func(depth int, _ papertree.Item) {
		depths = append(depths, depth)
	})

	assert.Equal(t, []int{1, 1, 2, 2, 3}, depths)
	assert.Equal(t, []string{"a", "b", "c"}, s.Leaves())
}
