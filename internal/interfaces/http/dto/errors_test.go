package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		category shared.ErrorCategory
		expected int
	}{
		{shared.CategoryValidation, http.StatusBadRequest},
		{shared.CategoryNotFound, http.StatusNotFound},
		{shared.CategoryConflict, http.StatusConflict},
		{shared.CategoryState, http.StatusUnprocessableEntity},
		{shared.CategoryInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.category))
		})
	}
}

func TestDomainCodesMapToExpectedStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{shared.CodeInvalidDateRange, http.StatusBadRequest},
		{shared.CodeNoActiveLease, http.StatusBadRequest},
		{shared.CodeDuplicatePeriod, http.StatusConflict},
		{shared.CodeAlreadyInvoiced, http.StatusConflict},
		{shared.CodeConcurrencyConflict, http.StatusConflict},
		{shared.CodeInvalidTransition, http.StatusUnprocessableEntity},
		{shared.CodePaymentNotPaid, http.StatusUnprocessableEntity},
		{shared.CodeNotFound, http.StatusNotFound},
		{shared.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(shared.CategoryOf(tt.code)))
		})
	}
}

func TestNewErrorResponse_JSONShape(t *testing.T) {
	resp := NewErrorResponse(shared.CodeDuplicatePeriod, "already scheduled", "req-1", shared.CategoryConflict)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, false, decoded["success"])
	assert.NotContains(t, decoded, "data")

	errObj, ok := decoded["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DUPLICATE_PERIOD", errObj["code"])
	assert.Equal(t, "already scheduled", errObj["message"])
	assert.Equal(t, "req-1", errObj["request_id"])
	assert.Equal(t, "CONFLICT", errObj["category"])
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-2", []ValidationDetail{
		{Field: "tax_id", Message: "Invalid tax ID"},
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, shared.CodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "VALIDATION", resp.Error.Category)
	assert.Len(t, resp.Error.Details, 1)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2}, 45, 2, 20)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	empty := NewSuccessResponseWithMeta(nil, 0, 1, 0)
	assert.Equal(t, 0, empty.Meta.TotalPages)
}

func TestFromPaginated(t *testing.T) {
	p := shared.NewPaginated([]string{"a"}, 1, 1, 20)
	resp := FromPaginated(p)

	assert.True(t, resp.Success)
	assert.Equal(t, []string{"a"}, resp.Data)
	assert.Equal(t, int64(1), resp.Meta.Total)
}
