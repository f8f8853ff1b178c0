package geolocation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dictionary-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	listCacheKey = "geolocations:all"
	// The registry changes rarely; a long TTL is fine.
	listCacheTTL = time.Hour
)

func (r *postgresRepository) GetAll(ctx context.Context) ([]GeoLocation, error) {
	var cached []GeoLocation
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT place, region FROM geo_locations ORDER BY place`)
	if err != nil {
		return nil, fmt.Errorf("failed to query geolocations: %w", err)
	}
	defer rows.Close()

	var locations []GeoLocation
	for rows.Next() {
		var g GeoLocation
		if err := rows.Scan(&g.Place, &g.Region); err != nil {
			return nil, fmt.Errorf("failed to scan geolocation: %w", err)
		}
		locations = append(locations, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating geolocations: %w", err)
	}

	r.cache.Set(ctx, listCacheKey, locations, listCacheTTL)
	return locations, nil
}

func (r *postgresRepository) Exists(ctx context.Context, place string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM geo_locations WHERE LOWER(place) = LOWER($1))`,
		place,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check geolocation existence: %w", err)
	}
	return exists, nil
}
