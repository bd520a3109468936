package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/stopbook/backend/internal/config"
	"github.com/stopbook/backend/internal/repo"
	"github.com/stopbook/backend/migrations"
)

// storage is an opened reservation store plus the *sql.DB goose migrates.
type storage struct {
	repo    repo.ReservationRepo
	sqlDB   *sql.DB
	dialect goose.Dialect
	close   func()
}

// openStorage connects to the configured backend and verifies it is
// reachable before any traffic is accepted.
func openStorage(ctx context.Context, cfg config.Config, log *slog.Logger) (*storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := repo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite database opened", "path", cfg.SQLitePath)
		return &storage{
			repo:    repo.NewSQLiteReservationRepo(db),
			sqlDB:   db,
			dialect: goose.DialectSQLite3,
			close:   func() { db.Close() },
		}, nil

	default:
		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately; the ping below does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("create database pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		log.Info("database connection established")
		db := stdlib.OpenDBFromPool(pool)
		return &storage{
			repo:    repo.NewReservationRepo(pool),
			sqlDB:   db,
			dialect: goose.DialectPostgres,
			close: func() {
				db.Close()
				pool.Close()
			},
		}, nil
	}
}

// provider returns a goose provider over the embedded migrations for the
// store's dialect.
func (s *storage) provider() (*goose.Provider, error) {
	fsys, err := migrations.For(s.dialect)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(s.dialect, s.sqlDB, fsys)
}

// migrateUp applies all pending migrations, logging each one applied.
func (s *storage) migrateUp(ctx context.Context, log *slog.Logger) error {
	p, err := s.provider()
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}
