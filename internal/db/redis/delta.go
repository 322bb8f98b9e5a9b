package redis

import (
	"context"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/storefront/internal/db"
)

// Lua keeps multi-key field arithmetic atomic: either every key in the batch
// is adjusted or none is.
var (
	incrByMultiScript = rueidis.NewLuaScript(`
local field = ARGV[1]
for i, key in ipairs(KEYS) do
  redis.call('HINCRBY', key, field, ARGV[i + 1])
end
return #KEYS`)

	decrByMultiCheckedScript = rueidis.NewLuaScript(`
local field = ARGV[1]
for i, key in ipairs(KEYS) do
  local cur = tonumber(redis.call('HGET', key, field))
  local need = tonumber(ARGV[i + 1])
  if cur == nil or cur < need then
    return key
  end
end
for i, key in ipairs(KEYS) do
  redis.call('HINCRBY', key, field, -tonumber(ARGV[i + 1]))
end
return ''`)
)

// HIncrByMulti increments field on every key by its delta in one script call.
func (s *Store) HIncrByMulti(ctx context.Context, field string, deltas []db.HashDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	keys, args := deltaArgs(field, deltas)
	if err := incrByMultiScript.Exec(ctx, s.client, keys, args).Error(); err != nil {
		return &db.Error{Op: db.OpEval, Err: err}
	}
	return nil
}

// HDecrByMultiChecked decrements field on every key only when every key holds
// at least the requested amount. A missing key or field fails the check.
// Returns the first failing key, or "" when the batch was applied.
func (s *Store) HDecrByMultiChecked(
	ctx context.Context, field string, decs []db.HashDelta,
) (string, error) {
	if len(decs) == 0 {
		return "", nil
	}

	keys, args := deltaArgs(field, decs)
	failed, err := decrByMultiCheckedScript.Exec(ctx, s.client, keys, args).ToString()
	if err != nil {
		return "", &db.Error{Op: db.OpEval, Err: err}
	}
	return failed, nil
}

func deltaArgs(field string, deltas []db.HashDelta) (keys, args []string) {
	keys = make([]string, len(deltas))
	args = make([]string, len(deltas)+1)
	args[0] = field
	for i, d := range deltas {
		keys[i] = d.Key
		args[i+1] = strconv.FormatInt(d.Delta, 10)
	}
	return keys, args
}
