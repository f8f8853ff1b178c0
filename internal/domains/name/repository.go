package name

import (
	"context"

	"dictionary-backend/internal/domains/name/model"
)

// Repository defines data access for canonical name entries and their
// duplicates.
type Repository interface {
	// Create inserts a new canonical entry. The insert is atomic
	// insert-or-report-existing: when another entry already holds the
	// (lower-cased) name, no row is written and created=false is returned.
	// Two concurrent creates for the same new name can therefore never both
	// become canonical; the unique constraint arbitrates.
	Create(ctx context.Context, entry *model.NameEntry) (created bool, err error)

	// CreateDuplicate registers a variant submission against an existing
	// canonical entry.
	// Errors: ErrNameNotFound if the canonical entry does not exist.
	CreateDuplicate(ctx context.Context, dup *model.DuplicateNameEntry) error

	// GetByName performs an exact lookup by lower-cased name.
	// Errors: ErrNameNotFound.
	GetByName(ctx context.Context, name string) (*model.NameEntry, error)

	// List returns a page of entries in stable order (insertion order:
	// created_at, then id).
	List(ctx context.Context, limit, offset int) ([]model.NameEntry, error)

	// DuplicatesFor returns all duplicates referencing the canonical entry.
	// A missing canonical entry yields an empty slice, not an error.
	DuplicatesFor(ctx context.Context, name string) ([]model.DuplicateNameEntry, error)

	// Update fully replaces the fields of an existing canonical entry,
	// addressed by its lower-cased name.
	// Errors: ErrNameNotFound.
	Update(ctx context.Context, entry *model.NameEntry) error

	// Delete removes a canonical entry. Its duplicates go with it in the
	// same operation (FK cascade); deleting an absent name is a no-op.
	Delete(ctx context.Context, name string) error

	// DeleteAll removes every canonical entry and, through the cascade,
	// every duplicate.
	DeleteAll(ctx context.Context) error
}
