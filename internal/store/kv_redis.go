package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyNamespace  = "kv:"
	redisFieldValue    = "value"
	redisFieldVersion  = "version"
	redisScanBatchSize = 200
)

// RedisKV stores each entry as a hash holding its value and version.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) redisKey(key string) string {
	return redisKeyNamespace + key
}

func (r *RedisKV) Get(ctx context.Context, key string) (Entry, error) {
	fields, err := r.client.HGetAll(ctx, r.redisKey(key)).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return entryFromHash(key, fields)
}

func (r *RedisKV) Set(ctx context.Context, key string, value json.RawMessage) (int64, error) {
	rk := r.redisKey(key)
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, rk, redisFieldValue, []byte(value))
		incr = pipe.HIncrBy(ctx, rk, redisFieldVersion, 1)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return incr.Val(), nil
}

func (r *RedisKV) SetIfVersion(ctx context.Context, key string, value json.RawMessage, version int64) (int64, error) {
	rk := r.redisKey(key)
	var newVersion int64

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, rk, redisFieldVersion).Int64()
		switch {
		case errors.Is(err, redis.Nil):
			current = 0
		case err != nil:
			return err
		}
		if current != version {
			return ErrVersionConflict
		}

		newVersion = version + 1
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, rk, redisFieldValue, []byte(value), redisFieldVersion, newVersion)
			return nil
		})
		return err
	}, rk)

	switch {
	case err == nil:
		return newVersion, nil
	case errors.Is(err, ErrVersionConflict), errors.Is(err, redis.TxFailedErr):
		return 0, ErrVersionConflict
	default:
		return 0, fmt.Errorf("failed to set key %s: %w", key, err)
	}
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	n, err := r.client.Del(ctx, r.redisKey(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RedisKV) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	pattern := redisKeyNamespace + globEscaper.Replace(prefix) + "*"

	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, redisScanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}

	entries := make([]Entry, 0, len(keys))
	if len(keys) == 0 {
		return entries, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, k := range keys {
			cmds[i] = pipe.HGetAll(ctx, k)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load prefix %s: %w", prefix, err)
	}

	for i, cmd := range cmds {
		entry, err := entryFromHash(strings.TrimPrefix(keys[i], redisKeyNamespace), cmd.Val())
		if errors.Is(err, ErrNotFound) {
			// deleted between SCAN and HGETALL
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return entries, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func entryFromHash(key string, fields map[string]string) (Entry, error) {
	if len(fields) == 0 {
		return Entry{}, ErrNotFound
	}
	var version int64
	if _, err := fmt.Sscanf(fields[redisFieldVersion], "%d", &version); err != nil {
		return Entry{}, fmt.Errorf("corrupt version for key %s: %w", key, err)
	}
	return Entry{Key: key, Value: json.RawMessage(fields[redisFieldValue]), Version: version}, nil
}
