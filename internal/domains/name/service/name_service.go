package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dictionary-backend/internal/domains/name"
	"dictionary-backend/internal/domains/name/model"
)

// nameService implements name.Service.
type nameService struct {
	repo name.Repository
}

func NewNameService(repo name.Repository) name.Service {
	return &nameService{repo: repo}
}

// CreateOrDuplicate applies the duplicate policy: the store's atomic
// insert-or-report-existing decides whether this submission becomes the
// canonical entry or a variant of one that got there first.
func (s *nameService) CreateOrDuplicate(ctx context.Context, entry *model.NameEntry) (bool, error) {
	entry.Normalize()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return false, err
	}
	if created {
		return true, nil
	}

	dup := &model.DuplicateNameEntry{
		ID:            uuid.New(),
		Name:          entry.Name,
		CanonicalName: entry.Name,
		SubmittedBy:   entry.SubmittedBy,
	}
	if err := s.repo.CreateDuplicate(ctx, dup); err != nil {
		return false, fmt.Errorf("failed to register duplicate for %q: %w", entry.Name, err)
	}

	log.Info().
		Str("name", entry.Name).
		Str("submitted_by", entry.SubmittedBy).
		Msg("Name already exists, registered as duplicate")

	return false, nil
}

func (s *nameService) List(ctx context.Context, opts model.ListOptions) ([]model.NameEntry, error) {
	opts.Sanitize()
	offset := opts.Page * opts.Count
	return s.repo.List(ctx, opts.Count, offset)
}

func (s *nameService) Get(ctx context.Context, nm string) (*model.NameEntry, error) {
	return s.repo.GetByName(ctx, model.NormalizeName(nm))
}

func (s *nameService) Duplicates(ctx context.Context, nm string) ([]model.DuplicateNameEntry, error) {
	return s.repo.DuplicatesFor(ctx, model.NormalizeName(nm))
}

func (s *nameService) Update(ctx context.Context, entry *model.NameEntry) error {
	entry.Normalize()
	return s.repo.Update(ctx, entry)
}

func (s *nameService) DeleteWithDuplicates(ctx context.Context, nm string) error {
	normalized := model.NormalizeName(nm)

	if err := s.repo.Delete(ctx, normalized); err != nil {
		return err
	}

	log.Info().Str("name", normalized).Msg("Deleted name entry and its duplicates")
	return nil
}

func (s *nameService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}

	log.Warn().Msg("Deleted all name entries and duplicates")
	return nil
}
