package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrCustomerNotFound signals a missing customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderNotFound signals a missing order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrRuleNotFound signals a missing pricing rule.
	ErrRuleNotFound = errors.New("pricing rule not found")

	// ErrValidation signals rejected input; the caller may correct and resubmit.
	ErrValidation = errors.New("validation failed")
	// ErrInsufficientStock signals a line whose requested quantity exceeds stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrDuplicateEmail signals a customer email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidOrderStatus signals an unparsable order status.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrStockConflict signals a stock decrement failure after the order was
	// already persisted. The order then references un-decremented stock, which
	// is a consistency violation and must never be swallowed.
	ErrStockConflict = errors.New("stock reduction failed after order commit")
)

// InsufficientStockError wraps ErrInsufficientStock with the offending product.
type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %s not found or insufficient stock", e.ProductID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NewInsufficientStock creates an insufficient stock error for a product line.
func NewInsufficientStock(productID string) error {
	return &InsufficientStockError{ProductID: productID}
}
