package papertree

import (
	"context"
	"slices"
	"time"
)

// Document is a parsed article: metadata plus one outline per section
// stream handed over by the extractor.
type Document struct {
	ID           string `json:"-"`
	CollectionID string `json:"-"`

	Title    string     `json:"title"`
	Abstract string     `json:"abstract"`
	Keywords []string   `json:"keywords"`
	Content  []*Section `json:"content"`
	Source

	Publisher Publisher `json:"publisher,omitempty"`
	Tables    []Table   `json:"tables,omitempty"`
	Warnings  []Warning `json:"warnings,omitempty"`

	// Tokens keeps the streams the outline was built from, for tagged
	// rendering. It is not persisted.
	Tokens [][]Token `json:"-"`

	ContentHash string    `json:"-"`
	Position    int       `json:"-"`
	ParsedAt    time.Time `json:"-"`
}

// NewDocument assembles a document from an extraction. Each section stream
// is built into its own outline; builder warnings are tagged with the index
// of the stream they came from and follow the extractor's warnings.
func NewDocument(ext *Extraction, src Source, b Builder) *Document {
	doc := &Document{
		Title:    ext.Title,
		Abstract: ext.Abstract,
		Keywords: ext.Keywords,
		Content:  make([]*Section, 0, len(ext.Sections)),
		Source:   src,
		Tables:   ext.Tables,
		Tokens:   ext.Sections,
		Warnings: slices.Clone(ext.Warnings),
	}
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}
	for i, tokens := range ext.Sections {
		sec, warnings := b.Build(tokens)
		for _, w := range warnings {
			w.Section = i
			doc.Warnings = append(doc.Warnings, w)
		}
		doc.Content = append(doc.Content, sec)
	}
	return doc
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.CollectionID == "" {
		return Errorf(EINVALID, "document collection ID required")
	}
	if d.File == "" {
		return Errorf(EINVALID, "document source file required")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByCollection removes all documents for a collection.
	DeleteDocumentsByCollection(ctx context.Context, collectionID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByParsedAt SortOrder = "parsed_at"
	SortByPosition SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID           *string    `json:"id"`
	CollectionID *string    `json:"collectionId"`
	DOI          *string    `json:"doi"`
	Publisher    *Publisher `json:"publisher"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
