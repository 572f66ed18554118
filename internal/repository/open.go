// Package repository selects the document storage backend named by configuration.
package repository

import (
	"context"
	"fmt"

	"github.com/dafibh/fortuna/budget-backend/internal/config"
	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/repository/file"
	"github.com/dafibh/fortuna/budget-backend/internal/repository/memory"
	"github.com/dafibh/fortuna/budget-backend/internal/repository/postgres"
	"github.com/dafibh/fortuna/budget-backend/internal/repository/sqlite"
	"github.com/dafibh/fortuna/budget-backend/internal/repository/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open returns the repository for cfg.StorageBackend and a function releasing
// whatever connections it holds
func Open(ctx context.Context, cfg *config.Config) (domain.DocumentRepository, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		return memory.NewDocumentRepository(), noop, nil

	case config.BackendFile:
		repo, err := file.NewDocumentRepository(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("dir", cfg.DataDir).Msg("Using file storage")
		return repo, noop, nil

	case config.BackendSQLite:
		repo, err := sqlite.NewDocumentRepository(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Using sqlite storage")
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close sqlite database")
			}
		}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		repo := postgres.NewDocumentRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Msg("Connected to database")
		return repo, pool.Close, nil

	case config.BackendS3:
		repo, err := storage.NewS3DocumentRepository(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Using S3 storage")
		return repo, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
