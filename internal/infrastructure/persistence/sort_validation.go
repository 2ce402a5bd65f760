package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// MemberSortFields contains allowed sort fields for members
var MemberSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"member_no":  true,
	"name":       true,
	"role":       true,
	"status":     true,
}

// CompanySortFields contains allowed sort fields for companies
var CompanySortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"company_no": true,
	"tax_id":     true,
	"name":       true,
}

func orderClause(f string, allowed map[string]bool, defaultField, dir string) string {
	return ValidateSortField(f, allowed, defaultField) + " " + ValidateSortOrder(dir)
}
