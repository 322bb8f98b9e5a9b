package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain/quote"
)

// Status is the order lifecycle state. There are no modeled transitions
// beyond placement: order placement produces Confirmed, the rest are set
// externally via the status endpoint.
type Status string

const (
	// Pending is an order awaiting confirmation.
	Pending Status = "pending"
	// Confirmed is the state produced by order placement.
	Confirmed Status = "confirmed"
	// Shipped is an order handed to fulfillment.
	Shipped Status = "shipped"
	// Cancelled is an abandoned order.
	Cancelled Status = "cancelled"
)

// IsValid checks if the status is part of the modeled set.
func (s Status) IsValid() bool {
	switch s {
	case Pending, Confirmed, Shipped, Cancelled:
		return true
	}
	return false
}

// ParseStatus parses an order status case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown order status: %q", s)
	}
	return st, nil
}

// Item is a persisted copy of a quote line's pricing. A value snapshot,
// never a live reference to the product or rule that produced it.
type Item struct {
	productID   string
	productName string
	quantity    int64
	unitPrice   decimal.Decimal
}

// NewItem creates an order line.
func NewItem(productID, productName string, quantity int64, unitPrice decimal.Decimal) Item {
	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

// ProductID returns the product id.
func (i Item) ProductID() string { return i.productID }

// ProductName returns the product name snapshot.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int64 { return i.quantity }

// UnitPrice returns the discounted unit price snapshot.
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Total returns quantity x unitPrice.
func (i Item) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(i.quantity))
}

// Order is a committed purchase. The id is assigned at persist time.
type Order struct {
	id          string
	customerID  string
	status      Status
	totalAmount decimal.Decimal
	items       []Item
	createdAt   time.Time
}

// FromQuote builds a Confirmed order from a generated quote, copying each
// quote line's pricing into an order line (unitPrice = discountedPrice).
func FromQuote(q quote.Quote) Order {
	items := make([]Item, len(q.Items()))
	for i, qi := range q.Items() {
		items[i] = NewItem(qi.ProductID(), qi.ProductName(), qi.Quantity(), qi.DiscountedPrice())
	}

	return Order{
		customerID:  q.CustomerID(),
		status:      Confirmed,
		totalAmount: q.Total(),
		items:       items,
		createdAt:   time.Now().UTC(),
	}
}

// Reconstruct creates an Order without validation (storage hydration).
func Reconstruct(
	id, customerID string, status Status,
	totalAmount decimal.Decimal, items []Item, createdAt time.Time,
) Order {
	return Order{
		id:          id,
		customerID:  customerID,
		status:      status,
		totalAmount: totalAmount,
		items:       items,
		createdAt:   createdAt,
	}
}

// ID returns the order id ("" until persisted).
func (o Order) ID() string { return o.id }

// CustomerID returns the customer id.
func (o Order) CustomerID() string { return o.customerID }

// Status returns the lifecycle state.
func (o Order) Status() Status { return o.status }

// TotalAmount returns the committed total (= quote total at commit time).
func (o Order) TotalAmount() decimal.Decimal { return o.totalAmount }

// Items returns the persisted line snapshots.
func (o Order) Items() []Item { return o.items }

// CreatedAt returns the creation timestamp.
func (o Order) CreatedAt() time.Time { return o.createdAt }

// WithID returns a copy with the assigned id (repository use).
func (o Order) WithID(id string) Order {
	o.id = id
	return o
}

// WithStatus returns a copy in the given state.
func (o Order) WithStatus(s Status) Order {
	o.status = s
	return o
}

// CheckTotals verifies the creation invariant:
// sum(items.quantity x unitPrice) == totalAmount, modulo the order-level
// discount which lowers totalAmount below the line sum.
func (o Order) CheckTotals() error {
	sum := decimal.Zero
	for _, it := range o.items {
		sum = sum.Add(it.Total())
	}
	if sum.LessThan(o.totalAmount) {
		return fmt.Errorf("order total %s exceeds line sum %s", o.totalAmount, sum)
	}
	return nil
}
