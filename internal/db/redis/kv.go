package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/storefront/internal/db"
)

// Get retrieves a value by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.b().Get().Key(key).Build()
	data, err := s.do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}

// Set stores a value at the given key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	cmd := s.b().Set().Key(key).Value(string(value)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// SetNX stores a value only when the key does not exist yet.
// Returns false (no error) when the key was already present.
func (s *Store) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	cmd := s.b().Set().Key(key).Value(string(value)).Nx().Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpSetNX, Err: err}
	}
	return true, nil
}
