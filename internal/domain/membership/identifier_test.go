package membership

import (
	"testing"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixFor(t *testing.T) {
	tests := []struct {
		name         string
		category     IdentifierCategory
		discriminant string
		want         string
	}{
		{"admin member", IdentifierCategoryMember, "admin", "A"},
		{"normal member", IdentifierCategoryMember, "normal", "C"},
		{"lifetime member", IdentifierCategoryMember, "lifetime", "V"},
		{"business member", IdentifierCategoryMember, "business", "B"},
		{"company ignores discriminant", IdentifierCategoryCompany, "", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrefixFor(tt.category, tt.discriminant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := PrefixFor(IdentifierCategoryMember, "guest")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := PrefixFor("vendor", "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})
}

func TestFormatCode(t *testing.T) {
	code, err := FormatCode("C", 7)
	require.NoError(t, err)
	assert.Equal(t, "C007", code)
	assert.True(t, ValidCode(code))

	code, err = FormatCode("B", 999)
	require.NoError(t, err)
	assert.Equal(t, "B999", code)

	_, err = FormatCode("B", 1000)
	assert.True(t, shared.IsCode(err, shared.CodeSequenceExhausted))

	_, err = FormatCode("B", 0)
	assert.Error(t, err)
}

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("A001"))
	assert.False(t, ValidCode("a001"))
	assert.False(t, ValidCode("A01"))
	assert.False(t, ValidCode("A0001"))
	assert.False(t, ValidCode("AB01"))
}

func TestSequenceScope(t *testing.T) {
	assert.Equal(t, "member:A", SequenceScope(IdentifierCategoryMember, "A"))
	assert.NotEqual(t, SequenceScope(IdentifierCategoryMember, "A"), SequenceScope(IdentifierCategoryCompany, "A"))
}
