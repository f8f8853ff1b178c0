package name

import (
	"context"

	"dictionary-backend/internal/domains/name/model"
)

// Service owns the duplicate-resolution policy and mediates between the API
// boundary and the stores.
type Service interface {
	// CreateOrDuplicate persists the candidate entry. First writer wins as
	// canonical; a later submission of the same (case-insensitive) name is
	// registered as a DuplicateNameEntry pointing at the existing record.
	// Exactly one row — canonical or duplicate — is created per call.
	// created reports which of the two happened.
	CreateOrDuplicate(ctx context.Context, entry *model.NameEntry) (created bool, err error)

	// List returns a page of entries. Defaults: page 0, count 50. Ordering
	// is stable across calls absent mutation.
	List(ctx context.Context, opts model.ListOptions) ([]model.NameEntry, error)

	// Get looks up a single entry by its lower-cased name.
	// Errors: ErrNameNotFound — a signal for the caller, not a fault.
	Get(ctx context.Context, name string) (*model.NameEntry, error)

	// Duplicates returns all variant submissions recorded against the
	// canonical entry for name.
	Duplicates(ctx context.Context, name string) ([]model.DuplicateNameEntry, error)

	// Update fully replaces an existing entry's fields. The caller has
	// already verified the entry exists and that the identifying name
	// matches the update target; the service does not re-verify.
	Update(ctx context.Context, entry *model.NameEntry) error

	// DeleteWithDuplicates removes a canonical entry and all of its
	// duplicates in one logical operation.
	DeleteWithDuplicates(ctx context.Context, name string) error

	// DeleteAll clears the dictionary, duplicates included.
	DeleteAll(ctx context.Context) error
}
