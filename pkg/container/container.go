package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"dictionary-backend/internal/config"
	"dictionary-backend/internal/domains/geolocation"
	"dictionary-backend/internal/domains/importer"
	"dictionary-backend/internal/domains/name"
	nameHandler "dictionary-backend/internal/domains/name/handler"
	nameRepo "dictionary-backend/internal/domains/name/repository"
	nameService "dictionary-backend/internal/domains/name/service"
	infraCache "dictionary-backend/internal/infrastructure/cache"
	"dictionary-backend/internal/infrastructure/database"
	"dictionary-backend/pkg/cache"
)

// Container is the root of the dependency graph. Build order matters:
// config, then infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	NameRepo name.Repository
	GeoRepo  geolocation.Repository

	NameService name.Service
	Importer    importer.Importer

	NameHandler *nameHandler.NameHandler
	GeoHandler  *geolocation.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&database.DBConfig{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		User:              cfg.Database.User,
		Password:          cfg.Database.Password,
		Database:          cfg.Database.Database,
		SSLMode:           cfg.Database.SSLMode,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        3,
		RetryDelay:        time.Second,
		ConnectTimeout:    10 * time.Second,
	})

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// A missing cache degrades reads, it does not block startup.
			log.Warn().Err(err).Msg("Redis connection failed, continuing without warm cache")
		}
	}
	c.Cache = redisCache

	c.NameRepo = nameRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.GeoRepo = geolocation.NewPostgresRepository(db.Pool, c.Cache)

	c.NameService = nameService.NewNameService(c.NameRepo)
	c.Importer = importer.NewXlsxImporter(c.NameService, cfg.Import.MaxRows)

	c.NameHandler = nameHandler.NewNameHandler(c.NameService, c.GeoRepo, c.Importer, cfg.Import.MaxUploadBytes)
	c.GeoHandler = geolocation.NewHandler(c.GeoRepo)

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}
