package storefront

import "github.com/kailas-cloud/storefront/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrProductNotFound    = domain.ErrProductNotFound
	ErrCustomerNotFound   = domain.ErrCustomerNotFound
	ErrOrderNotFound      = domain.ErrOrderNotFound
	ErrRuleNotFound       = domain.ErrRuleNotFound
	ErrValidation         = domain.ErrValidation
	ErrInsufficientStock  = domain.ErrInsufficientStock
	ErrDuplicateEmail     = domain.ErrDuplicateEmail
	ErrInvalidOrderStatus = domain.ErrInvalidOrderStatus
	ErrStockConflict      = domain.ErrStockConflict
)
