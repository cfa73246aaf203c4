package storage

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Connect opens the single-file SQLite database, creating its directory if
// needed, and brings the schema up to date with the embedded migrations.
func Connect(ctx context.Context, databasePath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(databasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", databasePath)

	var db *sqlx.DB
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := sqlx.ConnectContext(ctx, "sqlite3", dsn)
		if err != nil {
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *sqlx.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
