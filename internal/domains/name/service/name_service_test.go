package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dictionary-backend/internal/domains/name"
	"dictionary-backend/internal/domains/name/model"
)

// fakeRepository is an in-memory name.Repository. It mirrors the store's
// guarantees: name uniqueness on insert and duplicate cascade on delete.
type fakeRepository struct {
	entries map[string]model.NameEntry
	order   []string
	dups    map[string][]model.DuplicateNameEntry

	lastLimit  int
	lastOffset int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		entries: make(map[string]model.NameEntry),
		dups:    make(map[string][]model.DuplicateNameEntry),
	}
}

func (f *fakeRepository) Create(_ context.Context, e *model.NameEntry) (bool, error) {
	if _, exists := f.entries[e.Name]; exists {
		return false, nil
	}
	f.entries[e.Name] = *e
	f.order = append(f.order, e.Name)
	return true, nil
}

func (f *fakeRepository) CreateDuplicate(_ context.Context, d *model.DuplicateNameEntry) error {
	if _, exists := f.entries[d.CanonicalName]; !exists {
		return name.ErrNameNotFound
	}
	f.dups[d.CanonicalName] = append(f.dups[d.CanonicalName], *d)
	return nil
}

func (f *fakeRepository) GetByName(_ context.Context, nm string) (*model.NameEntry, error) {
	e, ok := f.entries[nm]
	if !ok {
		return nil, name.ErrNameNotFound
	}
	return &e, nil
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]model.NameEntry, error) {
	f.lastLimit = limit
	f.lastOffset = offset

	var out []model.NameEntry
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.entries[f.order[i]])
	}
	return out, nil
}

func (f *fakeRepository) DuplicatesFor(_ context.Context, nm string) ([]model.DuplicateNameEntry, error) {
	return f.dups[nm], nil
}

func (f *fakeRepository) Update(_ context.Context, e *model.NameEntry) error {
	if _, ok := f.entries[e.Name]; !ok {
		return name.ErrNameNotFound
	}
	f.entries[e.Name] = *e
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, nm string) error {
	if _, ok := f.entries[nm]; ok {
		delete(f.entries, nm)
		for i, n := range f.order {
			if n == nm {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
	delete(f.dups, nm)
	return nil
}

func (f *fakeRepository) DeleteAll(_ context.Context) error {
	f.entries = make(map[string]model.NameEntry)
	f.order = nil
	f.dups = make(map[string][]model.DuplicateNameEntry)
	return nil
}

func TestCreateOrDuplicate_NewNameBecomesCanonical(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)

	created, err := svc.CreateOrDuplicate(context.Background(), &model.NameEntry{
		Name:        "Adewale",
		Meaning:     "the crown has come home",
		SubmittedBy: "Alice",
	})
	require.NoError(t, err)
	assert.True(t, created)

	got, err := svc.Get(context.Background(), "ADEWALE")
	require.NoError(t, err)
	assert.Equal(t, "adewale", got.Name, "name must be stored lower-case")
	assert.Equal(t, "the crown has come home", got.Meaning)
}

func TestCreateOrDuplicate_ExistingNameBecomesDuplicate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)
	ctx := context.Background()

	created, err := svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "bolanle", SubmittedBy: "Alice"})
	require.NoError(t, err)
	require.True(t, created)

	created, err = svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "Bolanle", SubmittedBy: "Bob"})
	require.NoError(t, err)
	assert.False(t, created, "second writer must not become canonical")

	assert.Len(t, repo.entries, 1, "exactly one canonical entry")

	dups, err := svc.Duplicates(ctx, "bolanle")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.Equal(t, "bolanle", dups[0].CanonicalName)
	assert.Equal(t, "Bob", dups[0].SubmittedBy)
}

func TestCreateOrDuplicate_DefaultsSubmitter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)

	_, err := svc.CreateOrDuplicate(context.Background(), &model.NameEntry{Name: "kemi"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "kemi")
	require.NoError(t, err)
	assert.Equal(t, "Not Available", got.SubmittedBy)
}

func TestDeleteWithDuplicates_RemovesBoth(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)
	ctx := context.Background()

	_, err := svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "tunde"})
	require.NoError(t, err)
	_, err = svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "Tunde"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWithDuplicates(ctx, "Tunde"))

	_, err = svc.Get(ctx, "tunde")
	assert.ErrorIs(t, err, name.ErrNameNotFound)

	dups, err := svc.Duplicates(ctx, "tunde")
	require.NoError(t, err)
	assert.Empty(t, dups, "no duplicate may outlive its canonical entry")
}

func TestList_AppliesDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)

	_, err := svc.List(context.Background(), model.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
}

func TestList_PageOffsets(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: fmt.Sprintf("name%d", i)})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, model.ListOptions{Page: 1, Count: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "name3", page[0].Name, "ordering must be stable across pages")

	again, err := svc.List(ctx, model.ListOptions{Page: 1, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, page, again, "same page twice must return the same slice of entries")
}

func TestDeleteAll_ClearsEverything(t *testing.T) {
	repo := newFakeRepository()
	svc := NewNameService(repo)
	ctx := context.Background()

	_, err := svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "ayo"})
	require.NoError(t, err)
	_, err = svc.CreateOrDuplicate(ctx, &model.NameEntry{Name: "ayo"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAll(ctx))
	assert.Empty(t, repo.entries)
	assert.Empty(t, repo.dups)
}
