package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

type mockProducts struct {
	products map[string]domprod.Product
	getFn    func(ctx context.Context, id string) (domprod.Product, error)
}

func (m *mockProducts) Get(ctx context.Context, id string) (domprod.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	p, ok := m.products[id]
	if !ok {
		return domprod.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

type mockStock struct {
	reduceFn  func(ctx context.Context, quantities map[string]int64) error
	reserveFn func(ctx context.Context, quantities map[string]int64) error

	reduceCalls  []map[string]int64
	reserveCalls []map[string]int64
}

func (m *mockStock) ReduceStock(ctx context.Context, quantities map[string]int64) error {
	m.reduceCalls = append(m.reduceCalls, quantities)
	if m.reduceFn != nil {
		return m.reduceFn(ctx, quantities)
	}
	return nil
}

func (m *mockStock) ReserveStock(ctx context.Context, quantities map[string]int64) error {
	m.reserveCalls = append(m.reserveCalls, quantities)
	if m.reserveFn != nil {
		return m.reserveFn(ctx, quantities)
	}
	return nil
}

type mockCustomers struct {
	customers map[string]domcust.Customer
}

func (m *mockCustomers) Get(_ context.Context, id string) (domcust.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return domcust.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

type mockRules struct {
	rules        []dompricing.Rule
	listActiveFn func(ctx context.Context, t domcust.Type) ([]dompricing.Rule, error)
}

func (m *mockRules) ListActive(ctx context.Context, t domcust.Type) ([]dompricing.Rule, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, t)
	}
	out := make([]dompricing.Rule, 0, len(m.rules))
	for _, r := range m.rules {
		if r.Active() && r.CustomerType() == t {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockOrders struct {
	createFn func(ctx context.Context, o domorder.Order) (domorder.Order, error)
	orders   map[string]domorder.Order
}

func (m *mockOrders) Create(ctx context.Context, o domorder.Order) (domorder.Order, error) {
	if m.createFn != nil {
		return m.createFn(ctx, o)
	}
	o = o.WithID("o1")
	if m.orders == nil {
		m.orders = map[string]domorder.Order{}
	}
	m.orders[o.ID()] = o
	return o, nil
}

func (m *mockOrders) Get(_ context.Context, id string) (domorder.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return domorder.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockOrders) UpdateStatus(
	_ context.Context, id string, status domorder.Status,
) (domorder.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return domorder.Order{}, domain.ErrOrderNotFound
	}
	o = o.WithStatus(status)
	m.orders[id] = o
	return o, nil
}

type fixture struct {
	products  *mockProducts
	stock     *mockStock
	customers *mockCustomers
	rules     *mockRules
	orders    *mockOrders
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		products:  &mockProducts{products: map[string]domprod.Product{}},
		stock:     &mockStock{},
		customers: &mockCustomers{customers: map[string]domcust.Customer{}},
		rules:     &mockRules{},
		orders:    &mockOrders{},
	}
}

func (f *fixture) service(atomicReserve bool) *Service {
	return New(f.products, f.stock, f.customers, f.rules, f.orders, atomicReserve)
}

func (f *fixture) addProduct(id, name string, stock int64, price string) {
	f.products.products[id] = domprod.Reconstruct(id, name, "", stock, decimal.RequireFromString(price))
}

func (f *fixture) addCustomer(id string, t domcust.Type) {
	f.customers.customers[id] = domcust.Reconstruct(id, "Customer "+id, id+"@example.com", t)
}

func (f *fixture) addRule(id string, t domcust.Type, pct string, minimum string, active bool) {
	var min *decimal.Decimal
	if minimum != "" {
		m := decimal.RequireFromString(minimum)
		min = &m
	}
	f.rules.rules = append(f.rules.rules,
		dompricing.Reconstruct(id, t, decimal.RequireFromString(pct), min, active, ""))
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}
