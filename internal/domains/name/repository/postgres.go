package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dictionary-backend/internal/domains/name"
	"dictionary-backend/internal/domains/name/model"
	"dictionary-backend/pkg/cache"
)

// postgresRepository implements name.Repository on pgxpool with a cache-aside
// layer for single-entry reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) name.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	entryCacheKeyPrefix = "name:entry:"
	dupsCacheKeyPrefix  = "name:dups:"
	cacheTTL            = 15 * time.Minute
)

const entryColumns = `
        n.id, n.name, n.pronunciation, n.meaning, n.extended_meaning,
        n.morphology, n.etymology, n.tonal_mark, n.syllables, n.variants,
        n.geo_location_place, g.region, n.submitted_by, n.indexed,
        n.created_at, n.updated_at`

func scanEntry(row pgx.Row) (*model.NameEntry, error) {
	var e model.NameEntry
	var place, region *string

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Pronunciation,
		&e.Meaning,
		&e.ExtendedMeaning,
		&e.Morphology,
		&e.Etymology,
		&e.TonalMark,
		&e.Syllables,
		&e.Variants,
		&place,
		&region,
		&e.SubmittedBy,
		&e.Indexed,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if place != nil {
		e.GeoLocation = &model.GeoLocation{Place: *place}
		if region != nil {
			e.GeoLocation.Region = *region
		}
	}
	return &e, nil
}

func geoPlace(e *model.NameEntry) *string {
	if e.GeoLocation == nil || e.GeoLocation.Place == "" {
		return nil
	}
	return &e.GeoLocation.Place
}

// Create inserts a canonical entry. ON CONFLICT DO NOTHING makes the
// existence check and the insert one atomic statement, so the unique
// constraint on name arbitrates concurrent writers.
func (r *postgresRepository) Create(ctx context.Context, e *model.NameEntry) (bool, error) {
	query := `
        INSERT INTO names (id, name, pronunciation, meaning, extended_meaning,
                           morphology, etymology, tonal_mark, syllables, variants,
                           geo_location_place, submitted_by, indexed, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
        ON CONFLICT (name) DO NOTHING
    `

	tag, err := r.pool.Exec(ctx, query,
		e.ID,
		e.Name,
		e.Pronunciation,
		e.Meaning,
		e.ExtendedMeaning,
		e.Morphology,
		e.Etymology,
		e.TonalMark,
		e.Syllables,
		e.Variants,
		geoPlace(e),
		e.SubmittedBy,
		e.Indexed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return false, name.ErrUnknownGeoLocation
		}
		return false, fmt.Errorf("failed to create name entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// An entry already holds this name; the caller records a duplicate.
		return false, nil
	}

	r.cache.Delete(ctx, entryCacheKeyPrefix+e.Name)
	return true, nil
}

func (r *postgresRepository) CreateDuplicate(ctx context.Context, dup *model.DuplicateNameEntry) error {
	query := `
        INSERT INTO duplicate_names (id, name, canonical_name, submitted_by, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `

	_, err := r.pool.Exec(ctx, query, dup.ID, dup.Name, dup.CanonicalName, dup.SubmittedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return name.ErrNameNotFound
		}
		return fmt.Errorf("failed to create duplicate entry: %w", err)
	}

	r.cache.Delete(ctx, dupsCacheKeyPrefix+dup.CanonicalName)
	return nil
}

func (r *postgresRepository) GetByName(ctx context.Context, nm string) (*model.NameEntry, error) {
	cacheKey := entryCacheKeyPrefix + nm

	var cached model.NameEntry
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
        SELECT` + entryColumns + `
        FROM names n
        LEFT JOIN geo_locations g ON g.place = n.geo_location_place
        WHERE n.name = $1
    `

	e, err := scanEntry(r.pool.QueryRow(ctx, query, nm))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, name.ErrNameNotFound
		}
		return nil, fmt.Errorf("failed to get name entry: %w", err)
	}

	r.cache.Set(ctx, cacheKey, e, cacheTTL)
	return e, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.NameEntry, error) {
	query := `
        SELECT` + entryColumns + `
        FROM names n
        LEFT JOIN geo_locations g ON g.place = n.geo_location_place
        ORDER BY n.created_at, n.id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list name entries: %w", err)
	}
	defer rows.Close()

	var entries []model.NameEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan name entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating name entries: %w", err)
	}

	return entries, nil
}

func (r *postgresRepository) DuplicatesFor(ctx context.Context, nm string) ([]model.DuplicateNameEntry, error) {
	cacheKey := dupsCacheKeyPrefix + nm

	var cached []model.DuplicateNameEntry
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, name, canonical_name, submitted_by, created_at
        FROM duplicate_names
        WHERE canonical_name = $1
        ORDER BY created_at, id
    `

	rows, err := r.pool.Query(ctx, query, nm)
	if err != nil {
		return nil, fmt.Errorf("failed to query duplicates: %w", err)
	}
	defer rows.Close()

	var dups []model.DuplicateNameEntry
	for rows.Next() {
		var d model.DuplicateNameEntry
		if err := rows.Scan(&d.ID, &d.Name, &d.CanonicalName, &d.SubmittedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan duplicate entry: %w", err)
		}
		dups = append(dups, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duplicates: %w", err)
	}

	r.cache.Set(ctx, cacheKey, dups, cacheTTL)
	return dups, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *model.NameEntry) error {
	query := `
        UPDATE names
        SET pronunciation = $2,
            meaning = $3,
            extended_meaning = $4,
            morphology = $5,
            etymology = $6,
            tonal_mark = $7,
            syllables = $8,
            variants = $9,
            geo_location_place = $10,
            submitted_by = $11,
            indexed = $12,
            updated_at = NOW()
        WHERE name = $1
    `

	tag, err := r.pool.Exec(ctx, query,
		e.Name,
		e.Pronunciation,
		e.Meaning,
		e.ExtendedMeaning,
		e.Morphology,
		e.Etymology,
		e.TonalMark,
		e.Syllables,
		e.Variants,
		geoPlace(e),
		e.SubmittedBy,
		e.Indexed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return name.ErrUnknownGeoLocation
		}
		return fmt.Errorf("failed to update name entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return name.ErrNameNotFound
	}

	r.cache.Delete(ctx, entryCacheKeyPrefix+e.Name)
	return nil
}

// Delete removes a canonical entry; its duplicates are removed by the
// ON DELETE CASCADE on duplicate_names. Deleting an absent name is a no-op.
func (r *postgresRepository) Delete(ctx context.Context, nm string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM names WHERE name = $1`, nm); err != nil {
		return fmt.Errorf("failed to delete name entry: %w", err)
	}

	r.cache.Delete(ctx, entryCacheKeyPrefix+nm, dupsCacheKeyPrefix+nm)
	return nil
}

func (r *postgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM names`); err != nil {
		return fmt.Errorf("failed to delete all name entries: %w", err)
	}

	r.cache.DeletePattern(ctx, "name:*")
	return nil
}
