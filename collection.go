package papertree

import (
	"context"
	"time"
)

// Collection is a named batch of parsed articles, usually one export
// directory.
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceDir string    `json:"sourceDir"`
	Publisher Publisher `json:"publisher"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if c.SourceDir == "" {
		return Errorf(EINVALID, "collection source directory required")
	}
	return nil
}

// CollectionService represents a service for managing collections.
type CollectionService interface {
	// CreateCollection creates a new collection.
	CreateCollection(ctx context.Context, collection *Collection) error

	// FindCollectionByID retrieves a collection by ID.
	// Returns ENOTFOUND if collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollections retrieves collections matching the filter.
	FindCollections(ctx context.Context, filter CollectionFilter) ([]*Collection, error)

	// UpdateCollection updates an existing collection.
	// Returns ENOTFOUND if collection does not exist.
	UpdateCollection(ctx context.Context, id string, upd CollectionUpdate) (*Collection, error)

	// DeleteCollection permanently removes a collection and all associated documents.
	// Returns ENOTFOUND if collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionFilter represents a filter for FindCollections.
type CollectionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CollectionUpdate represents fields that can be updated on a collection.
type CollectionUpdate struct {
	Name      *string    `json:"name"`
	SourceDir *string    `json:"sourceDir"`
	Publisher *Publisher `json:"publisher"`
}
