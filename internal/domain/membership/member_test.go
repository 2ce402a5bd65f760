package membership

import (
	"testing"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("creates pending member", func(t *testing.T) {
		m, err := NewMember("C001", "  王小明 ", RoleNormal, "ming@example.com", "0912345678")
		require.NoError(t, err)
		assert.Equal(t, "C001", m.MemberNo)
		assert.Equal(t, "王小明", m.Name)
		assert.Equal(t, MemberStatusPending, m.Status)
		assert.Equal(t, 1, m.Version)
		require.Len(t, m.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeMemberRegistered, m.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects number with wrong prefix for role", func(t *testing.T) {
		_, err := NewMember("C001", "Lin", RoleLifetime, "", "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("rejects malformed number", func(t *testing.T) {
		_, err := NewMember("C1", "Lin", RoleNormal, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewMember("C001", "   ", RoleNormal, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewMember("C001", "Lin", RoleNormal, "not-an-email", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewMember("X001", "Lin", Role("guest"), "", "")
		assert.Error(t, err)
	})
}

func TestMember_StatusTransitions(t *testing.T) {
	m, err := NewMember("V001", "Chen", RoleLifetime, "", "")
	require.NoError(t, err)
	m.ClearDomainEvents()

	require.NoError(t, m.Activate())
	assert.Equal(t, MemberStatusActive, m.Status)
	assert.NotNil(t, m.ActivatedAt)
	assert.Equal(t, 2, m.Version)

	err = m.Activate()
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))

	require.NoError(t, m.Disable())
	assert.True(t, m.IsDisabled())
	assert.NotNil(t, m.DisabledAt)

	err = m.Disable()
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))

	require.NoError(t, m.Activate())
	assert.Equal(t, "V001", m.MemberNo, "member number survives reactivation")
	assert.Nil(t, m.DisabledAt)
	assert.Len(t, m.GetDomainEvents(), 3)
}

func TestMember_PendingCannotBeDisabled(t *testing.T) {
	m, err := NewMember("B001", "Acme Rep", RoleBusiness, "", "")
	require.NoError(t, err)
	assert.Error(t, m.Disable())
}

func TestNewCompany(t *testing.T) {
	t.Run("creates company", func(t *testing.T) {
		c, err := NewCompany("A001", "04595257", "台灣資產股份有限公司", CompanyContact{Phone: "02-1234-5678"})
		require.NoError(t, err)
		assert.Equal(t, "A001", c.CompanyNo)
		assert.Equal(t, "02-1234-5678", c.Phone)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("rejects invalid tax id", func(t *testing.T) {
		_, err := NewCompany("A001", "12345678", "Acme", CompanyContact{})
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("rejects non company prefix", func(t *testing.T) {
		_, err := NewCompany("C001", "04595257", "Acme", CompanyContact{})
		assert.Error(t, err)
	})
}
