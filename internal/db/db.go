package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade by design -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	HashStore
	KVStore
	DeltaStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// HashDelta holds a per-key signed delta for a shared numeric hash field.
type HashDelta struct {
	Key   string
	Delta int64
}

// DeltaStore applies numeric hash-field deltas across multiple keys as one
// atomic unit (single server-side script, all-or-nothing).
type DeltaStore interface {
	// HIncrByMulti increments field on every key by its delta unconditionally.
	HIncrByMulti(ctx context.Context, field string, deltas []HashDelta) error

	// HDecrByMultiChecked decrements field on every key only if every key
	// currently holds at least the requested amount. Returns the first key
	// that fails the check ("" when the whole batch was applied).
	HDecrByMultiChecked(ctx context.Context, field string, decs []HashDelta) (string, error)
}
