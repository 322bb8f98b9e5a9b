package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kailas-cloud/storefront/internal/domain"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/metrics"
)

// Service ranks catalog products against free-text queries and serves
// autocomplete and query expansion. Stateless; every call reads the catalog
// fresh.
type Service struct {
	products ProductLister
}

// New creates a search service.
func New(products ProductLister) *Service {
	return &Service{products: products}
}

// Search scores every product against the query and returns the top
// maxResults in descending score order. A blank query returns the catalog
// head unranked. Ties keep catalog order.
func (s *Service) Search(ctx context.Context, query string, maxResults int) ([]domprod.Product, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	normalized := normalize(query)
	if normalized == "" {
		if len(products) > maxResults {
			products = products[:maxResults]
		}
		return products, nil
	}

	words := strings.Fields(normalized)

	type scored struct {
		product domprod.Product
		score   float64
	}
	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		if sc := scoreProduct(p, words); sc > 0 {
			ranked = append(ranked, scored{product: p, score: sc})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	out := make([]domprod.Product, len(ranked))
	for i, r := range ranked {
		out[i] = r.product
	}
	return out, nil
}

// Suggestions returns autocomplete candidates for a partial query: catalog
// words strictly longer than the prefix, plus synonym table entries sharing
// it. Insertion order, deduplicated, truncated to maxSuggestions.
func (s *Service) Suggestions(ctx context.Context, partial string, maxSuggestions int) ([]string, error) {
	prefix := normalize(partial)
	if len(prefix) < 2 {
		return []string{}, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	seen := map[string]bool{}
	suggestions := []string{}
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			suggestions = append(suggestions, w)
		}
	}

	for _, p := range products {
		text := normalize(p.Name() + " " + p.Description())
		for _, w := range strings.Fields(text) {
			if strings.HasPrefix(w, prefix) && len(w) > len(prefix) {
				add(w)
			}
		}
	}

	for _, key := range synonymKeys {
		if strings.HasPrefix(key, prefix) {
			add(key)
		}
		for _, member := range synonymGroups[key] {
			if strings.HasPrefix(member, prefix) {
				add(member)
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

const maxRelatedTerms = 6

// RelatedTerms expands query words through the synonym and category tables.
// Returns up to six deduplicated terms; fails on a blank query.
func (s *Service) RelatedTerms(_ context.Context, query string) ([]string, error) {
	normalized := normalize(query)
	if normalized == "" {
		return nil, fmt.Errorf("%w: query must not be blank", domain.ErrValidation)
	}

	seen := map[string]bool{}
	terms := []string{}
	add := func(w string) {
		if !seen[w] && len(terms) < maxRelatedTerms {
			seen[w] = true
			terms = append(terms, w)
		}
	}

	for _, w := range strings.Fields(normalized) {
		for _, key := range synonymKeys {
			group := synonymGroups[key]
			if w == key {
				for i, member := range group {
					if i == 3 {
						break
					}
					add(member)
				}
				continue
			}
			if contains(group, w) {
				add(key)
				added := 0
				for _, member := range group {
					if member == w {
						continue
					}
					add(member)
					added++
					if added == 2 {
						break
					}
				}
			}
		}

		for _, cat := range categoryNames {
			keywords := categoryKeywords[cat]
			if !contains(keywords, w) {
				continue
			}
			added := 0
			for _, kw := range keywords {
				if kw == w {
					continue
				}
				add(kw)
				added++
				if added == 3 {
					break
				}
			}
		}
	}

	return terms, nil
}

// Categories returns the category table keys. Sorted, since table iteration
// order is otherwise randomized run to run.
func (s *Service) Categories(_ context.Context) []string {
	out := make([]string, len(categoryNames))
	copy(out, categoryNames)
	return out
}
