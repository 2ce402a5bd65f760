package membership

import (
	"fmt"
	"regexp"

	"github.com/assetledger/backend/internal/domain/shared"
)

// IdentifierCategory is the kind of entity an identifier is allocated for
type IdentifierCategory string

const (
	IdentifierCategoryMember  IdentifierCategory = "member"
	IdentifierCategoryCompany IdentifierCategory = "company"
)

// IsValid checks if the category is known
func (c IdentifierCategory) IsValid() bool {
	return c == IdentifierCategoryMember || c == IdentifierCategoryCompany
}

// CompanyPrefix is the letter every company number starts with
const CompanyPrefix = "A"

// MaxSequenceValue is the largest numeric part a three-digit code can hold
const MaxSequenceValue = 999

var codePattern = regexp.MustCompile(`^[A-Z]\d{3}$`)

// rolePrefixes maps member roles to their code prefix.
// Lifetime members use V.
var rolePrefixes = map[Role]string{
	RoleAdmin:    "A",
	RoleNormal:   "C",
	RoleLifetime: "V",
	RoleBusiness: "B",
}

// PrefixFor returns the code prefix for a category and its discriminant.
// For members the discriminant is the role; companies take no discriminant.
func PrefixFor(category IdentifierCategory, discriminant string) (string, error) {
	switch category {
	case IdentifierCategoryMember:
		prefix, ok := rolePrefixes[Role(discriminant)]
		if !ok {
			return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown member role %q", discriminant))
		}
		return prefix, nil
	case IdentifierCategoryCompany:
		return CompanyPrefix, nil
	default:
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown identifier category %q", category))
	}
}

// SequenceScope names the counter that backs codes of a category and prefix.
// Members of different roles never share a counter, and company numbers are
// counted apart from admin member numbers even though both start with A.
func SequenceScope(category IdentifierCategory, prefix string) string {
	return string(category) + ":" + prefix
}

// FormatCode renders a prefix and sequence value as a code such as C007
func FormatCode(prefix string, value int64) (string, error) {
	if value < 1 {
		return "", shared.NewDomainError(shared.CodeInvalidInput, "Sequence value must be positive")
	}
	if value > MaxSequenceValue {
		return "", shared.NewDomainError(shared.CodeSequenceExhausted,
			fmt.Sprintf("Sequence for prefix %s is exhausted", prefix))
	}
	return fmt.Sprintf("%s%03d", prefix, value), nil
}

// ValidCode reports whether code has the one-letter three-digit shape
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
