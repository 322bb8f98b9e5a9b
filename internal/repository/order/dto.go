package order

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
)

// itemDTO is the JSON shape of a persisted order line.
type itemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// orderToHash converts a domain Order to a map for HSET. Items go into a
// single JSON field.
func orderToHash(o domorder.Order) (map[string]string, error) {
	dtos := make([]itemDTO, len(o.Items()))
	for i, it := range o.Items() {
		dtos[i] = itemDTO{
			ProductID:   it.ProductID(),
			ProductName: it.ProductName(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice().String(),
		}
	}
	items, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	return map[string]string{
		"id":           o.ID(),
		"customer_id":  o.CustomerID(),
		"status":       string(o.Status()),
		"total_amount": o.TotalAmount().String(),
		"items":        string(items),
		"created_at":   o.CreatedAt().Format(time.RFC3339Nano),
	}, nil
}

// orderFromHash hydrates a domain Order from an HGETALL result map.
func orderFromHash(m map[string]string) (domorder.Order, error) {
	total, err := decimal.NewFromString(m["total_amount"])
	if err != nil {
		return domorder.Order{}, fmt.Errorf("parse total_amount: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, m["created_at"])
	if err != nil {
		return domorder.Order{}, fmt.Errorf("parse created_at: %w", err)
	}

	var dtos []itemDTO
	if err := json.Unmarshal([]byte(m["items"]), &dtos); err != nil {
		return domorder.Order{}, fmt.Errorf("unmarshal items: %w", err)
	}

	items := make([]domorder.Item, len(dtos))
	for i, d := range dtos {
		price, err := decimal.NewFromString(d.UnitPrice)
		if err != nil {
			return domorder.Order{}, fmt.Errorf("parse unit_price: %w", err)
		}
		items[i] = domorder.NewItem(d.ProductID, d.ProductName, d.Quantity, price)
	}

	return domorder.Reconstruct(
		m["id"], m["customer_id"], domorder.Status(m["status"]), total, items, createdAt,
	), nil
}
