package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")
)

// Entry is a single record held by a KV backend. Version starts at 1 and is
// bumped by every successful write.
type Entry struct {
	Key     string
	Value   json.RawMessage
	Version int64
}

// KV is the prefix-scannable key-value contract every backend implements.
//
// SetIfVersion writes only when the stored version equals version; a version
// of 0 means the key must not exist yet. A mismatch returns ErrVersionConflict.
// GetByPrefix returns entries ordered by key.
type KV interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, value json.RawMessage) (int64, error)
	SetIfVersion(ctx context.Context, key string, value json.RawMessage, version int64) (int64, error)
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
}
