package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/papertree"
)

// ListSources returns the regular files directly under dir whose extension
// is one of exts (case-insensitive, including the dot) and whose name passes
// filter. An empty exts accepts every extension. Sources are sorted by file
// name.
func ListSources(dir string, exts []string, filter *papertree.NameFilter) ([]papertree.Source, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, papertree.Errorf(papertree.ENOTFOUND, "input directory %s not found", dir)
	}
	if err != nil {
		return nil, err
	}

	var sources []papertree.Source
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		src := papertree.NewSource(filepath.Join(dir, e.Name()))
		if len(exts) > 0 && !slices.ContainsFunc(exts, func(ext string) bool { return strings.EqualFold(ext, src.Ext()) }) {
			continue
		}
		if !filter.Match(src.File) {
			continue
		}
		sources = append(sources, src)
	}
	return sources, nil
}

var _ papertree.SourceReader = (*Reader)(nil)

// Reader reads input files from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSource returns the raw bytes of src.
func (r *Reader) ReadSource(ctx context.Context, src papertree.Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src.FullPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, papertree.Errorf(papertree.ENOTFOUND, "%s not found", src.File)
	}
	return data, err
}

var _ papertree.TextReader = (*TextReader)(nil)

// TextReader reads plain-text files, converting them to UTF-8 with Decoder.
type TextReader struct {
	Reader  papertree.SourceReader
	Decoder papertree.Decoder
}

// NewTextReader creates a TextReader over files on disk.
func NewTextReader(dec papertree.Decoder) *TextReader {
	return &TextReader{Reader: NewReader(), Decoder: dec}
}

// ReadText returns the decoded content of src.
func (r *TextReader) ReadText(ctx context.Context, src papertree.Source) (string, error) {
	raw, err := r.Reader.ReadSource(ctx, src)
	if err != nil {
		return "", err
	}
	return r.Decoder.Decode(raw)
}
