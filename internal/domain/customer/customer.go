package customer

import (
	"fmt"
	"strings"
)

// Type distinguishes pricing classes.
type Type string

const (
	// Retail customers always pay the base price.
	Retail Type = "retail"
	// Wholesale customers are eligible for discount rules.
	Wholesale Type = "wholesale"
)

// IsValid checks if the customer type is supported.
func (t Type) IsValid() bool {
	return t == Retail || t == Wholesale
}

// ParseType parses a customer type case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown customer type: %q", s)
	}
	return t, nil
}

// Customer is an immutable customer record. Its type is fixed with respect
// to pricing once snapshotted onto an order line.
type Customer struct {
	id           string
	name         string
	email        string
	customerType Type
}

// New validates and creates a Customer.
func New(id, name, email string, customerType Type) (Customer, error) {
	if id == "" {
		return Customer{}, fmt.Errorf("customer id is required")
	}
	if name == "" {
		return Customer{}, fmt.Errorf("customer name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return Customer{}, fmt.Errorf("valid customer email is required")
	}
	if !customerType.IsValid() {
		return Customer{}, fmt.Errorf("invalid customer type: %q", customerType)
	}

	return Customer{id: id, name: name, email: email, customerType: customerType}, nil
}

// Reconstruct creates a Customer without validation (storage hydration).
func Reconstruct(id, name, email string, customerType Type) Customer {
	return Customer{id: id, name: name, email: email, customerType: customerType}
}

// ID returns the customer id.
func (c Customer) ID() string { return c.id }

// Name returns the customer name.
func (c Customer) Name() string { return c.name }

// Email returns the normalized (lowercased) email.
func (c Customer) Email() string { return c.email }

// CustomerType returns the pricing class.
func (c Customer) CustomerType() Type { return c.customerType }
