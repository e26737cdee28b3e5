// Package pgstore is a storage.KV backed by a Postgres table, for running
// the dashboard against a shared database instead of local files.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"countdown/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createTableQuery = `CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type kvRow struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Store struct {
	log *slog.Logger
	db  *sqlx.DB
}

// New connects to Postgres and ensures the kv table exists.
func New(log *slog.Logger, cfg config.DBConfig) (*Store, error) {
	op := "pgstore.New()"

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("connected to postgres storage",
		slog.String("host", cfg.Host),
		slog.String("db", cfg.Name),
	)

	return &Store{log: log, db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	op := "pgstore.Store.Get()"

	var row kvRow
	query := `SELECT key, value, updated_at FROM kv_entries WHERE key = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &row, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return row.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	op := "pgstore.Store.Set()"

	upsertQuery := `INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) Shutdown(_ context.Context) error {
	return s.db.Close()
}
