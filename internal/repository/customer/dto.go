package customer

import (
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
)

// customerToHash converts a domain Customer to a map for HSET.
func customerToHash(c domcust.Customer) map[string]string {
	return map[string]string{
		"id":            c.ID(),
		"name":          c.Name(),
		"email":         c.Email(),
		"customer_type": string(c.CustomerType()),
	}
}

// customerFromHash hydrates a domain Customer from an HGETALL result map.
func customerFromHash(m map[string]string) domcust.Customer {
	return domcust.Reconstruct(
		m["id"], m["name"], m["email"], domcust.Type(m["customer_type"]),
	)
}
