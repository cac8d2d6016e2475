package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
