package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/fs"
	"github.com/fwojciec/papertree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0644))
	}
}

func TestListSources(t *testing.T) {
	t.Parallel()

	t.Run("lists matching extensions in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "b.html", "a.HTM", "c.xml", "notes.txt")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), 0755))

		got, err := fs.ListSources(dir, []string{".html", ".htm", ".xml"}, nil)

		require.NoError(t, err)
		var files []string
		for _, s := range got {
			files = append(files, s.File)
		}
		assert.Equal(t, []string{"a.HTM", "b.html", "c.xml"}, files)
	})

	t.Run("empty extension list accepts every file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.docx", "b.pdf")

		got, err := fs.ListSources(dir, nil, nil)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("derives DOI from file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "10.3390_ma12010001.html")

		got, err := fs.ListSources(dir, []string{".html"}, nil)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "10.3390/ma12010001", got[0].DOI)
		assert.Equal(t, dir, got[0].Path)
	})

	t.Run("applies name filter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "10.3390_a.html", "10.1002_b.html")
		filter := &papertree.NameFilter{Include: []*regexp.Regexp{regexp.MustCompile(`^10\.3390`)}}

		got, err := fs.ListSources(dir, []string{".html"}, filter)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "10.3390_a.html", got[0].File)
	})

	t.Run("returns ENOTFOUND for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ListSources(filepath.Join(t.TempDir(), "missing"), []string{".html"}, nil)

		assert.Equal(t, papertree.ENOTFOUND, papertree.ErrorCode(err))
	})
}

func TestReader_ReadSource(t *testing.T) {
	t.Parallel()

	t.Run("reads file bytes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.html")

		got, err := fs.NewReader().ReadSource(context.Background(), papertree.NewSource(filepath.Join(dir, "a.html")))

		require.NoError(t, err)
		assert.Equal(t, "a.html", string(got))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReader().ReadSource(context.Background(), papertree.NewSource(filepath.Join(t.TempDir(), "x.html")))

		assert.Equal(t, papertree.ENOTFOUND, papertree.ErrorCode(err))
	})
}

func TestTextReader_ReadText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")
	var decoded []byte
	r := fs.NewTextReader(&mock.Decoder{
		DecodeFn: func(raw []byte) (string, error) {
			decoded = raw
			return "decoded", nil
		},
	})

	got, err := r.ReadText(context.Background(), papertree.NewSource(filepath.Join(dir, "a.txt")))

	require.NoError(t, err)
	assert.Equal(t, "decoded", got)
	assert.Equal(t, "a.txt", string(decoded))
}
