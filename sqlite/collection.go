package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/papertree"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

var _ papertree.CollectionService = (*CollectionService)(nil)

// CollectionService implements papertree.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection. Names are unique; a duplicate
// name returns EINVALID.
func (s *CollectionService) CreateCollection(ctx context.Context, c *papertree.Collection) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, source_dir, publisher, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.SourceDir, string(c.Publisher),
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339))
	if isConstraint(err) {
		return papertree.Errorf(papertree.EINVALID, "collection %q already exists", c.Name)
	}
	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*papertree.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_dir, publisher, created_at, updated_at
		FROM collections
		WHERE id = ?
	`, id)

	c, err := scanCollection(row)
	if err == sql.ErrNoRows {
		return nil, papertree.Errorf(papertree.ENOTFOUND, "collection not found")
	}
	return c, err
}

// FindCollections retrieves collections matching the filter, ordered by name.
func (s *CollectionService) FindCollections(ctx context.Context, filter papertree.CollectionFilter) ([]*papertree.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_dir, publisher, created_at, updated_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*papertree.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

// UpdateCollection updates an existing collection.
func (s *CollectionService) UpdateCollection(ctx context.Context, id string, upd papertree.CollectionUpdate) (*papertree.Collection, error) {
	c, err := s.FindCollectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.SourceDir != nil {
		c.SourceDir = *upd.SourceDir
	}
	if upd.Publisher != nil {
		c.Publisher = *upd.Publisher
	}
	c.UpdatedAt = time.Now().UTC()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE collections
		SET name = ?, source_dir = ?, publisher = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.SourceDir, string(c.Publisher), c.UpdatedAt.Format(time.RFC3339), id)
	if isConstraint(err) {
		return nil, papertree.Errorf(papertree.EINVALID, "collection %q already exists", c.Name)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// DeleteCollection permanently removes a collection. Its documents are
// removed by the foreign key cascade.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return papertree.Errorf(papertree.ENOTFOUND, "collection not found")
	}

	return nil
}

func scanCollection(sc scanner) (*papertree.Collection, error) {
	var c papertree.Collection
	var publisher, createdAt, updatedAt string

	if err := sc.Scan(&c.ID, &c.Name, &c.SourceDir, &publisher, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Publisher = papertree.Publisher(publisher)

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}

// isConstraint reports whether err is a SQLite constraint violation.
func isConstraint(err error) bool {
	return errors.Is(err, sqlite3.CONSTRAINT)
}
