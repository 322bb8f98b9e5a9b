package chi

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/config"
	"github.com/kailas-cloud/storefront/internal/domain"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	cataloguc "github.com/kailas-cloud/storefront/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	pricinguc "github.com/kailas-cloud/storefront/internal/usecase/pricing"
	searchuc "github.com/kailas-cloud/storefront/internal/usecase/search"
)

// In-memory stores standing in for the Redis-backed repositories.

type memProducts struct {
	byID map[string]domprod.Product
}

func (m *memProducts) Get(_ context.Context, id string) (domprod.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return domprod.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (m *memProducts) List(_ context.Context) ([]domprod.Product, error) {
	ids := make([]string, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domprod.Product, len(ids))
	for i, id := range ids {
		out[i] = m.byID[id]
	}
	return out, nil
}

func (m *memProducts) Upsert(_ context.Context, p domprod.Product) error {
	m.byID[p.ID()] = p
	return nil
}

// ReduceStock applies the decrement through Reconstruct since Product is
// immutable from the outside.
func (m *memProducts) ReduceStock(_ context.Context, quantities map[string]int64) error {
	for id, qty := range quantities {
		p := m.byID[id]
		m.byID[id] = domprod.Reconstruct(p.ID(), p.Name(), p.Description(), p.Stock()-qty, p.BasePrice())
	}
	return nil
}

func (m *memProducts) ReserveStock(ctx context.Context, quantities map[string]int64) error {
	for id, qty := range quantities {
		p, ok := m.byID[id]
		if !ok || !p.HasStock(qty) {
			return domain.NewInsufficientStock(id)
		}
	}
	return m.ReduceStock(ctx, quantities)
}

type memCustomers struct {
	byID map[string]domcust.Customer
}

func (m *memCustomers) Get(_ context.Context, id string) (domcust.Customer, error) {
	c, ok := m.byID[id]
	if !ok {
		return domcust.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (m *memCustomers) Upsert(_ context.Context, c domcust.Customer) error {
	m.byID[c.ID()] = c
	return nil
}

type memRules struct {
	byID map[string]dompricing.Rule
}

func (m *memRules) Get(_ context.Context, id string) (dompricing.Rule, error) {
	r, ok := m.byID[id]
	if !ok {
		return dompricing.Rule{}, domain.ErrRuleNotFound
	}
	return r, nil
}

func (m *memRules) Upsert(_ context.Context, r dompricing.Rule) error {
	m.byID[r.ID()] = r
	return nil
}

func (m *memRules) ListActive(_ context.Context, t domcust.Type) ([]dompricing.Rule, error) {
	var out []dompricing.Rule
	for _, r := range m.byID {
		if r.Active() && r.CustomerType() == t {
			out = append(out, r)
		}
	}
	return out, nil
}

type memOrders struct {
	byID map[string]domorder.Order
	seq  int
}

func (m *memOrders) Create(_ context.Context, o domorder.Order) (domorder.Order, error) {
	m.seq++
	o = o.WithID("order-" + string(rune('0'+m.seq)))
	m.byID[o.ID()] = o
	return o, nil
}

func (m *memOrders) Get(_ context.Context, id string) (domorder.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return domorder.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (m *memOrders) UpdateStatus(
	_ context.Context, id string, status domorder.Status,
) (domorder.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return domorder.Order{}, domain.ErrOrderNotFound
	}
	o = o.WithStatus(status)
	m.byID[id] = o
	return o, nil
}

type healthyPinger struct{}

func (healthyPinger) Ping(_ context.Context) error { return nil }

type fixture struct {
	products  *memProducts
	customers *memCustomers
	rules     *memRules
	orders    *memOrders
	server    *Server
	router    *gochi.Mux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		products:  &memProducts{byID: map[string]domprod.Product{}},
		customers: &memCustomers{byID: map[string]domcust.Customer{}},
		rules:     &memRules{byID: map[string]dompricing.Rule{}},
		orders:    &memOrders{byID: map[string]domorder.Order{}},
	}

	pricing := pricinguc.New(f.products, f.products, f.customers, f.rules, f.orders, false)
	search := searchuc.New(f.products)
	catalog := cataloguc.New(f.products, f.customers, f.rules)
	health := healthuc.New(healthyPinger{})

	limits := config.CatalogConfig{
		DefaultSearchResults: 20,
		MaxSearchResults:     100,
		DefaultSuggestions:   5,
		MaxSuggestions:       20,
	}

	f.server = NewServer(pricing, search, catalog, health, limits, zap.NewNop())
	f.router = gochi.NewRouter()
	f.server.Register(f.router)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
