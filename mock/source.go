package mock

import (
	"context"

	"github.com/fwojciec/papertree"
)

var _ papertree.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of papertree.SourceReader.
type SourceReader struct {
	ReadSourceFn func(ctx context.Context, src papertree.Source) ([]byte, error)
}

func (r *SourceReader) ReadSource(ctx context.Context, src papertree.Source) ([]byte, error) {
	return r.ReadSourceFn(ctx, src)
}

var _ papertree.TextReader = (*TextReader)(nil)

// TextReader is a mock implementation of papertree.TextReader.
type TextReader struct {
	ReadTextFn func(ctx context.Context, src papertree.Source) (string, error)
}

func (r *TextReader) ReadText(ctx context.Context, src papertree.Source) (string, error) {
	return r.ReadTextFn(ctx, src)
}

var _ papertree.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of papertree.Decoder.
type Decoder struct {
	DecodeFn func(raw []byte) (string, error)
}

func (d *Decoder) Decode(raw []byte) (string, error) {
	return d.DecodeFn(raw)
}
