package product

import (
	"context"
	"testing"

	"github.com/kailas-cloud/storefront/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	hincrByMultiFn func(ctx context.Context, field string, deltas []db.HashDelta) error
	hdecrCheckedFn func(ctx context.Context, field string, decs []db.HashDelta) (string, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) HIncrByMulti(ctx context.Context, field string, deltas []db.HashDelta) error {
	if m.hincrByMultiFn != nil {
		return m.hincrByMultiFn(ctx, field, deltas)
	}
	return nil
}

func (m *mockStore) HDecrByMultiChecked(
	ctx context.Context, field string, decs []db.HashDelta,
) (string, error) {
	if m.hdecrCheckedFn != nil {
		return m.hdecrCheckedFn(ctx, field, decs)
	}
	return "", nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func productHash(id, name, desc, stock, price string) map[string]string {
	return map[string]string{
		"id":          id,
		"name":        name,
		"description": desc,
		"stock":       stock,
		"base_price":  price,
	}
}
