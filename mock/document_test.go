package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/papertree"
	"github.com/fwojciec/papertree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateDocumentFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *papertree.Document
		w := &mock.DocumentWriter{
			CreateDocumentFn: func(_ context.Context, doc *papertree.Document) error {
				calledWith = doc
				return nil
			},
		}

		doc := &papertree.Document{
			CollectionID: "test-collection",
			Title:        "Fatigue of welded joints",
			Source:       papertree.NewSource("/in/10.1007_s001.html"),
		}

		err := w.CreateDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})
}
