package mock

import (
	"context"

	"github.com/fwojciec/papertree"
)

var _ papertree.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of papertree.DocumentService.
type DocumentService struct {
	CreateDocumentFn              func(ctx context.Context, doc *papertree.Document) error
	FindDocumentByIDFn            func(ctx context.Context, id string) (*papertree.Document, error)
	FindDocumentsFn               func(ctx context.Context, filter papertree.DocumentFilter) ([]*papertree.Document, error)
	DeleteDocumentFn              func(ctx context.Context, id string) error
	DeleteDocumentsByCollectionFn func(ctx context.Context, collectionID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *papertree.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*papertree.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter papertree.DocumentFilter) ([]*papertree.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	return s.DeleteDocumentsByCollectionFn(ctx, collectionID)
}

var _ papertree.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of papertree.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *papertree.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *papertree.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
