package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/catalogkeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local database and the repositories built on it.
type Repositories struct {
	DB *sql.DB
	KV *kv.SQLiteRepository
}

// Close closes the underlying database.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies the embedded goose migrations. It is safe to call
// on an already migrated database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite database at dsn, migrates it and wires the
// repositories. Missing parent directories are created. ":memory:" is
// accepted for throwaway sessions.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	dsn, err := filex.EnsureParentDir(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare database path: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dsn, err)
	}
	// One connection keeps ":memory:" databases alive and serialises writes.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{DB: db, KV: kv.NewSQLiteRepository(db)}, nil
}
