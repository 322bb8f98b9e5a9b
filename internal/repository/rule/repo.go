package rule

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/storefront/internal/domain"
	"github.com/kailas-cloud/storefront/internal/domain/customer"
	"github.com/kailas-cloud/storefront/internal/domain/pricing"
)

// store is the consumer interface for rules (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements pricing rule persistence over hash storage.
type Repo struct {
	store store
}

// New creates a rule repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert stores a rule.
func (r *Repo) Upsert(ctx context.Context, rule pricing.Rule) error {
	if err := r.store.HSet(ctx, ruleKey(rule.ID()), ruleToHash(rule)); err != nil {
		return fmt.Errorf("hset rule %s: %w", rule.ID(), err)
	}
	return nil
}

// Get retrieves a rule by id.
func (r *Repo) Get(ctx context.Context, id string) (pricing.Rule, error) {
	m, err := r.store.HGetAll(ctx, ruleKey(id))
	if err != nil {
		return pricing.Rule{}, fmt.Errorf("hgetall rule %s: %w", id, err)
	}
	if len(m) == 0 {
		return pricing.Rule{}, domain.ErrRuleNotFound
	}
	rule, err := ruleFromHash(m)
	if err != nil {
		return pricing.Rule{}, fmt.Errorf("hydrate rule %s: %w", id, err)
	}
	return rule, nil
}

// ListActive returns the active rules targeting the given customer class,
// sorted by id. Malformed hashes are skipped, not fatal.
func (r *Repo) ListActive(ctx context.Context, customerType customer.Type) ([]pricing.Rule, error) {
	keys, err := r.store.Scan(ctx, ruleKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall rules: %w", err)
	}

	rules := make([]pricing.Rule, 0, len(hashes))
	for _, m := range hashes {
		if len(m) == 0 {
			continue
		}
		rule, err := ruleFromHash(m)
		if err != nil {
			continue
		}
		if !rule.Active() || rule.CustomerType() != customerType {
			continue
		}
		rules = append(rules, rule)
	}

	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules, nil
}

func ruleKey(id string) string {
	return fmt.Sprintf("%srule:%s", domain.KeyPrefix, id)
}
