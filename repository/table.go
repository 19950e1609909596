// Package repository is the entity store: atomic get/insert/patch/delete by
// id and an indexed scan with filter, per table. It enforces no relational
// invariants; that is the services layer's job.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an id does not resolve.
var ErrNotFound = errors.New("record not found")

// Clock supplies the time used for createdAt/updatedAt.
type Clock func() time.Time

// SortOrder orders scans by id. Ids are UUIDv7, so id order is creation order.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Indexes maps an index (column) name to the function reading that column
// from a row. The memory backend evaluates the function; the postgres backend
// filters on the column.
type Indexes[T any] map[string]func(row T) string

// Query describes an indexed scan.
type Query[T any] struct {
	// Index and Value select rows whose index column equals Value. An empty
	// Index scans the whole table.
	Index string
	Value string
	// Filter is applied after the index lookup.
	Filter func(row T) bool
	Order  SortOrder
	// After resumes strictly after this id in Order direction.
	After string
	// Limit caps the number of rows returned; 0 means no cap.
	Limit int
}

// Table is one logical collection. Every method is atomic on its own;
// nothing spans calls.
type Table[T any] interface {
	Name() string
	Get(ctx context.Context, id string) (T, error)
	// Insert assigns the id and timestamps and returns the stored row.
	Insert(ctx context.Context, row T) (T, error)
	// Patch loads the row, applies mutate and writes it back as one atomic
	// step. An error from mutate aborts the write and is returned as is.
	Patch(ctx context.Context, id string, mutate func(row *T) error) (T, error)
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context, q Query[T]) ([]T, error)
}

// Exists reports whether at least one row matches q.
func Exists[T any](ctx context.Context, t Table[T], q Query[T]) (bool, error) {
	q.Limit = 1
	rows, err := t.Scan(ctx, q)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Find returns the row with id, or nil when it does not exist.
func Find[T any](ctx context.Context, t Table[T], id string) (*T, error) {
	row, err := t.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

type recordPtr[T any] interface {
	*T
	models.Record
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func stamp(row interface{}, now time.Time, created bool) {
	ts, ok := row.(models.Timestamped)
	if !ok {
		return
	}
	ms := now.UnixMilli()
	if created {
		ts.SetCreatedAt(ms)
	}
	ts.SetUpdatedAt(ms)
}

func unknownIndex(table, index string) error {
	return fmt.Errorf("table %s has no index %q", table, index)
}
