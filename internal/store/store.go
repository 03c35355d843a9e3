package store

import (
	"boatshow-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrAlreadyExists = errors.New("already exists")

// maxIDAttempts bounds how many consecutive millisecond ids are tried on collision
const maxIDAttempts = 16

type Store struct {
	kv     KV
	logger *observability.Logger
	now    func() time.Time
}

func New(kv KV, logger *observability.Logger) Store {
	return Store{kv: kv, logger: logger, now: time.Now}
}

// NewWithClock is New with an injectable clock, used by tests that assert on ids
func NewWithClock(kv KV, logger *observability.Logger, now func() time.Time) Store {
	return Store{kv: kv, logger: logger, now: now}
}

// KV returns the underlying key-value backend
func (s *Store) KV() KV {
	return s.kv
}

// HasAnyWithPrefix reports whether at least one key starts with prefix
func (s *Store) HasAnyWithPrefix(ctx context.Context, prefix string) (bool, error) {
	entries, err := s.kv.GetByPrefix(ctx, prefix)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// keyFor accepts a bare id or an already prefixed key
func keyFor(prefix, id string) string {
	if strings.HasPrefix(id, prefix) {
		return id
	}
	return prefix + id
}

// BareID strips prefix from key
func BareID(prefix, key string) string {
	return strings.TrimPrefix(key, prefix)
}

func (s *Store) get(ctx context.Context, key string, dest any) (int64, error) {
	entry, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return entry.Version, nil
}

// put writes v at key if the stored version still equals version
func (s *Store) put(ctx context.Context, key string, v any, version int64) (int64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.SetIfVersion(ctx, key, data, version)
}

// insert writes v at key only if key is unused
func (s *Store) insert(ctx context.Context, key string, v any) (int64, error) {
	version, err := s.put(ctx, key, v, 0)
	if errors.Is(err, ErrVersionConflict) {
		return 0, ErrAlreadyExists
	}
	return version, err
}

// insertWithTimeID claims the first free "<prefix><epoch-millis>" key starting at
// the current time. build receives the claimed key and returns the record to store.
func (s *Store) insertWithTimeID(ctx context.Context, prefix string, build func(id string) any) (string, int64, error) {
	millis := s.now().UnixMilli()
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := prefix + strconv.FormatInt(millis+int64(attempt), 10)
		version, err := s.insert(ctx, id, build(id))
		if err == nil {
			return id, version, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return "", 0, err
		}
	}
	return "", 0, fmt.Errorf("no free id under %s after %d attempts: %w", prefix, maxIDAttempts, ErrAlreadyExists)
}

func list[T any](ctx context.Context, kv KV, prefix string, setVersion func(*T, int64)) ([]T, error) {
	entries, err := kv.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", e.Key, err)
		}
		setVersion(&v, e.Version)
		out = append(out, v)
	}
	return out, nil
}
