package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// PostgresKV stores entries in the kv_store table.
type PostgresKV struct {
	db *sqlx.DB
}

func NewPostgresKV(db *sqlx.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

type kvRow struct {
	Key     string `db:"key"`
	Value   []byte `db:"value"`
	Version int64  `db:"version"`
}

func (r kvRow) entry() Entry {
	return Entry{Key: r.Key, Value: json.RawMessage(r.Value), Version: r.Version}
}

const sqlCreateKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value JSONB NOT NULL,
    version BIGINT NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`

// EnsureSchema creates the kv_store table when it does not exist
func (p *PostgresKV) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, sqlCreateKVTable); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

const sqlGetKV = `
SELECT key, value, version
FROM kv_store
WHERE key = $1
`

func (p *PostgresKV) Get(ctx context.Context, key string) (Entry, error) {
	var row kvRow
	err := p.db.GetContext(ctx, &row, sqlGetKV, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return row.entry(), nil
}

const sqlUpsertKV = `
INSERT INTO kv_store (key, value, version)
VALUES ($1, $2, 1)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, version = kv_store.version + 1, updated_at = NOW()
RETURNING version
`

func (p *PostgresKV) Set(ctx context.Context, key string, value json.RawMessage) (int64, error) {
	var version int64
	if err := p.db.GetContext(ctx, &version, sqlUpsertKV, key, []byte(value)); err != nil {
		return 0, fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return version, nil
}

const sqlInsertKVIfAbsent = `
INSERT INTO kv_store (key, value, version)
VALUES ($1, $2, 1)
ON CONFLICT (key) DO NOTHING
RETURNING version
`

const sqlUpdateKVIfVersion = `
UPDATE kv_store
SET value = $2, version = version + 1, updated_at = NOW()
WHERE key = $1 AND version = $3
RETURNING version
`

func (p *PostgresKV) SetIfVersion(ctx context.Context, key string, value json.RawMessage, version int64) (int64, error) {
	var (
		newVersion int64
		err        error
	)
	if version == 0 {
		err = p.db.GetContext(ctx, &newVersion, sqlInsertKVIfAbsent, key, []byte(value))
	} else {
		err = p.db.GetContext(ctx, &newVersion, sqlUpdateKVIfVersion, key, []byte(value), version)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrVersionConflict
		}
		return 0, fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return newVersion, nil
}

const sqlDeleteKV = `
DELETE FROM kv_store
WHERE key = $1
`

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	res, err := p.db.ExecContext(ctx, sqlDeleteKV, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetKVByPrefix = `
SELECT key, value, version
FROM kv_store
WHERE key LIKE $1
ORDER BY key
`

func (p *PostgresKV) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []kvRow
	if err := p.db.SelectContext(ctx, &rows, sqlGetKVByPrefix, likePrefix(prefix)); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
