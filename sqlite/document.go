package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/papertree"
	"github.com/google/uuid"
)

var _ papertree.DocumentService = (*DocumentService)(nil)

// DocumentService implements papertree.DocumentService using SQLite.
// Keywords, the outline and tables are stored as JSON in the legacy shape.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, collection_id, path, file, doi, publisher, title, abstract, keywords, content, tables, content_hash, position, parsed_at"

// hashContent returns the hex xxHash of the document's plain-text rendering.
func hashContent(doc *papertree.Document) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(papertree.FormatText(doc)))
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *papertree.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	keywords, content, tables, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ParsedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CollectionID, doc.Path, doc.File, doc.DOI, string(doc.Publisher),
		doc.Title, doc.Abstract, keywords, content, tables,
		doc.ContentHash, doc.Position, doc.ParsedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*papertree.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, papertree.Errorf(papertree.ENOTFOUND, "document not found")
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter papertree.DocumentFilter) ([]*papertree.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.DOI != nil {
		query.WriteString(" AND doi = ?")
		args = append(args, *filter.DOI)
	}
	if filter.Publisher != nil {
		query.WriteString(" AND publisher = ?")
		args = append(args, string(*filter.Publisher))
	}

	switch filter.SortBy {
	case papertree.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY parsed_at DESC, position ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*papertree.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return papertree.Errorf(papertree.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByCollection removes all documents for a collection.
func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection_id = ?", collectionID)
	return err
}

func encodeDocument(doc *papertree.Document) (keywords, content, tables string, err error) {
	kw := doc.Keywords
	if kw == nil {
		kw = []string{}
	}
	secs := doc.Content
	if secs == nil {
		secs = []*papertree.Section{}
	}
	tbs := doc.Tables
	if tbs == nil {
		tbs = []papertree.Table{}
	}

	var b []byte
	if b, err = json.Marshal(kw); err != nil {
		return "", "", "", fmt.Errorf("encode keywords: %w", err)
	}
	keywords = string(b)
	if b, err = json.Marshal(secs); err != nil {
		return "", "", "", fmt.Errorf("encode content: %w", err)
	}
	content = string(b)
	if b, err = json.Marshal(tbs); err != nil {
		return "", "", "", fmt.Errorf("encode tables: %w", err)
	}
	tables = string(b)
	return keywords, content, tables, nil
}

func scanDocument(sc scanner) (*papertree.Document, error) {
	var doc papertree.Document
	var publisher, keywords, content, tables, parsedAt string

	if err := sc.Scan(&doc.ID, &doc.CollectionID, &doc.Path, &doc.File, &doc.DOI, &publisher,
		&doc.Title, &doc.Abstract, &keywords, &content, &tables,
		&doc.ContentHash, &doc.Position, &parsedAt); err != nil {
		return nil, err
	}
	doc.Publisher = papertree.Publisher(publisher)

	if err := json.Unmarshal([]byte(keywords), &doc.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(content), &doc.Content); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := json.Unmarshal([]byte(tables), &doc.Tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	if len(doc.Tables) == 0 {
		doc.Tables = nil
	}

	var err error
	if doc.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}
