package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain/customer"
	"github.com/kailas-cloud/storefront/internal/domain/quote"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "pending", want: Pending},
		{in: "Confirmed", want: Confirmed},
		{in: " SHIPPED ", want: Shipped},
		{in: "cancelled", want: Cancelled},
		{in: "delivered", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStatus(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseStatus(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromQuote_SnapshotsPricing(t *testing.T) {
	items := []quote.Item{
		quote.NewItem("p1", "Widget", 2, dec(t, "100"), dec(t, "90")),
		quote.NewItem("p2", "Gadget", 1, dec(t, "40"), dec(t, "40")),
	}
	q := quote.New("c1", customer.Wholesale, items, decimal.Zero)

	o := FromQuote(q)

	if o.Status() != Confirmed {
		t.Errorf("status = %s, want confirmed", o.Status())
	}
	if o.CustomerID() != "c1" {
		t.Errorf("customer = %s, want c1", o.CustomerID())
	}
	if !o.TotalAmount().Equal(dec(t, "220")) {
		t.Errorf("total = %s, want 220", o.TotalAmount())
	}
	if len(o.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items()))
	}
	if !o.Items()[0].UnitPrice().Equal(dec(t, "90")) {
		t.Errorf("unit price = %s, want discounted 90", o.Items()[0].UnitPrice())
	}
	if o.ID() != "" {
		t.Errorf("expected empty id before persist, got %q", o.ID())
	}
	if err := o.CheckTotals(); err != nil {
		t.Errorf("CheckTotals: %v", err)
	}
}

func TestCheckTotals_Violation(t *testing.T) {
	o := Reconstruct("o1", "c1", Confirmed, dec(t, "999"),
		[]Item{NewItem("p1", "Widget", 1, dec(t, "10"))}, time.Now())

	if err := o.CheckTotals(); err == nil {
		t.Error("expected totals violation")
	}
}

func TestWithID(t *testing.T) {
	o := Reconstruct("", "c1", Pending, decimal.Zero, nil, time.Now())
	o2 := o.WithID("o-42")

	if o2.ID() != "o-42" {
		t.Errorf("id = %q, want o-42", o2.ID())
	}
	if o.ID() != "" {
		t.Error("WithID must not mutate the receiver")
	}
}
