package dto

import (
	"net/http"

	"github.com/assetledger/backend/internal/domain/shared"
)

// Transport-level codes that never originate in the domain
const (
	// ErrCodeRouteNotFound is used when no route matches the request
	ErrCodeRouteNotFound = "ROUTE_NOT_FOUND"
	// ErrCodeRateLimited is used when the client exceeded its request budget
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodePayloadTooLarge is used when the request body exceeds the limit
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	// ErrCodeServiceUnavailable is used when a dependency such as the sweep lock is down
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	// ErrCodeForbidden is used when the client address is not allowed
	ErrCodeForbidden = "FORBIDDEN"
)

// InternalErrorMessage replaces the text of unexpected errors
const InternalErrorMessage = "An unexpected error occurred"

// CategoryHTTPStatus maps domain error categories to HTTP status codes
var CategoryHTTPStatus = map[shared.ErrorCategory]int{
	shared.CategoryValidation: http.StatusBadRequest,
	shared.CategoryNotFound:   http.StatusNotFound,
	shared.CategoryConflict:   http.StatusConflict,
	shared.CategoryState:      http.StatusUnprocessableEntity,
	shared.CategoryInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error category.
// Unknown categories map to 500 Internal Server Error.
func GetHTTPStatus(category shared.ErrorCategory) int {
	if status, ok := CategoryHTTPStatus[category]; ok {
		return status
	}
	return http.StatusInternalServerError
}
