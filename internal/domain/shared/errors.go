package shared

import "errors"

// ErrorCategory groups domain error codes by how a caller should react to them
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryConflict   ErrorCategory = "CONFLICT"
	CategoryState      ErrorCategory = "STATE"
	CategoryNotFound   ErrorCategory = "NOT_FOUND"
	CategoryInternal   ErrorCategory = "INTERNAL"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Category ErrorCategory `json:"category"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code,
// so errors.Is works against the sentinel values below.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return de.Code == e.Code
}

// NewDomainError creates a new domain error. The category is derived from the code.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:     code,
		Message:  message,
		Category: CategoryOf(code),
	}
}

// Error codes
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidDateRange       = "INVALID_DATE_RANGE"
	CodeInvalidPaymentDate     = "INVALID_PAYMENT_DATE"
	CodeNoActiveLease          = "NO_ACTIVE_LEASE"
	CodeAmountOutOfRange       = "AMOUNT_OUT_OF_RANGE"
	CodeNoApplicableStandard   = "NO_APPLICABLE_STANDARD"
	CodeDuplicatePeriod        = "DUPLICATE_PERIOD"
	CodeDuplicateCode          = "DUPLICATE_CODE"
	CodeDuplicateTaxID         = "DUPLICATE_TAX_ID"
	CodeAlreadyInvoiced        = "ALREADY_INVOICED"
	CodeAlreadyDistributed     = "ALREADY_DISTRIBUTED"
	CodeOverlappingStandards   = "OVERLAPPING_STANDARDS"
	CodeSequenceExhausted      = "SEQUENCE_EXHAUSTED"
	CodeHasDependents          = "HAS_DEPENDENTS"
	CodeConcurrencyConflict    = "CONCURRENCY_CONFLICT"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeInvalidInvestmentState = "INVALID_INVESTMENT_STATE"
	CodePaymentNotPaid         = "PAYMENT_NOT_PAID"
	CodeNotFound               = "NOT_FOUND"
	CodeInternal               = "INTERNAL_ERROR"
)

var codeCategories = map[string]ErrorCategory{
	CodeInvalidInput:           CategoryValidation,
	CodeInvalidDateRange:       CategoryValidation,
	CodeInvalidPaymentDate:     CategoryValidation,
	CodeNoActiveLease:          CategoryValidation,
	CodeAmountOutOfRange:       CategoryValidation,
	CodeNoApplicableStandard:   CategoryValidation,
	CodeDuplicatePeriod:        CategoryConflict,
	CodeDuplicateCode:          CategoryConflict,
	CodeDuplicateTaxID:         CategoryConflict,
	CodeAlreadyInvoiced:        CategoryConflict,
	CodeAlreadyDistributed:     CategoryConflict,
	CodeOverlappingStandards:   CategoryConflict,
	CodeSequenceExhausted:      CategoryConflict,
	CodeHasDependents:          CategoryConflict,
	CodeConcurrencyConflict:    CategoryConflict,
	CodeInvalidTransition:      CategoryState,
	CodeInvalidInvestmentState: CategoryState,
	CodePaymentNotPaid:         CategoryState,
	CodeNotFound:               CategoryNotFound,
	CodeInternal:               CategoryInternal,
}

// CategoryOf returns the category for an error code.
// Unknown codes are treated as validation failures.
func CategoryOf(code string) ErrorCategory {
	if c, ok := codeCategories[code]; ok {
		return c
	}
	return CategoryValidation
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrInvalidTransition   = NewDomainError(CodeInvalidTransition, "Operation not allowed in current state")
	ErrDuplicateCode       = NewDomainError(CodeDuplicateCode, "Identifier already in use")
)

// IsCode reports whether err carries the given domain error code
func IsCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
