// Package sqlite persists key-value entries in a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"spending/internal/kv"
	"spending/internal/log"

	_ "modernc.org/sqlite"
)

// Repository is a kv.Store backed by the kv_entries table.
type Repository struct {
	db      *sql.DB
	queries *Queries
	logger  *log.Logger

	mu     sync.RWMutex
	closed bool
}

var _ kv.Store = (*Repository)(nil)

func NewRepository(dbPath string, logger *log.Logger) (*Repository, error) {
	if logger == nil {
		logger = log.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between them
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{
		db:      db,
		queries: New(db),
		logger:  logger.WithComponent(log.ComponentKV).With(log.FieldBackend, "sqlite"),
	}, nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return "", false, kv.ErrClosed
	}

	value, err := r.queries.GetEntry(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return kv.ErrClosed
	}

	if err := r.queries.UpsertEntry(ctx, UpsertEntryParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	r.logger.DebugContext(ctx, "Entry saved", log.FieldKey, key, log.FieldBytes, len(value))
	return nil
}

func (r *Repository) Remove(ctx context.Context, key string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return kv.ErrClosed
	}

	if err := r.queries.DeleteEntry(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}
