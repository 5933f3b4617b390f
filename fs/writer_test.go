package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, fs.CheckName("10.3390_ma1"))
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		err := fs.CheckName(name)
		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err), name)
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := fs.MarshalJSON(map[string]string{"t": "σ < 200 MPa & more"})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"t\": \"σ < 200 MPa & more\"\n}\n", string(data))
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes text and JSON renderings", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.CreateDocument(context.Background(), testDocument("10.1177_x.html"))
		require.NoError(t, err)

		text := readFile(t, filepath.Join(dir, "10.1177_x.txt"))
		assert.Equal(t, "Fatigue of welded joints\n\nAbstract\n\nWe test welds.\n\nKeywords\n\nfatigue\n\nWelds crack.\n\n", text)
		js := readFile(t, filepath.Join(dir, "json", "10.1177_x.json"))
		assert.Contains(t, js, `"doi": "10.1177/x"`)
	})

	t.Run("rejects documents without a file", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.CreateDocument(context.Background(), &papertree.Document{})

		assert.Equal(t, papertree.EINVALID, papertree.ErrorCode(err))
	})
}
