package mock

import (
	"context"

	"github.com/fwojciec/papertree"
)

var _ papertree.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of papertree.OutputStore.
type OutputStore struct {
	SaveFn        func(ctx context.Context, doc *papertree.Document) error
	SaveFailureFn func(ctx context.Context, src papertree.Source, cause error) error
	CommitFn      func() error
	AbortFn       func() error
}

func (s *OutputStore) Save(ctx context.Context, doc *papertree.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *OutputStore) SaveFailure(ctx context.Context, src papertree.Source, cause error) error {
	return s.SaveFailureFn(ctx, src, cause)
}

func (s *OutputStore) Commit() error {
	return s.CommitFn()
}

func (s *OutputStore) Abort() error {
	return s.AbortFn()
}

var _ papertree.TextStore = (*TextStore)(nil)

// TextStore is a mock implementation of papertree.TextStore.
type TextStore struct {
	SaveTextFn func(ctx context.Context, name string, text string) error
	CommitFn   func() error
	AbortFn    func() error
}

func (s *TextStore) SaveText(ctx context.Context, name string, text string) error {
	return s.SaveTextFn(ctx, name, text)
}

func (s *TextStore) Commit() error {
	return s.CommitFn()
}

func (s *TextStore) Abort() error {
	return s.AbortFn()
}
