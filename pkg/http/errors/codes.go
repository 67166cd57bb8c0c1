package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"

	// Resource errors
	ErrCodeNotFound        = "not_found"
	ErrCodeCompanyNotFound = "company_not_found"

	// Catalog errors
	ErrCodeCatalogUnavailable = "catalog_unavailable"
	ErrCodeUnknownRound       = "unknown_round"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
