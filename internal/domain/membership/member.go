package membership

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
)

// Role is the membership tier of a member
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleNormal   Role = "normal"
	RoleLifetime Role = "lifetime"
	RoleBusiness Role = "business"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	_, ok := rolePrefixes[r]
	return ok
}

// MemberStatus represents the lifecycle status of a member
type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusActive   MemberStatus = "active"
	MemberStatusDisabled MemberStatus = "disabled"
)

// IsValid checks if the status is known
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusPending, MemberStatusActive, MemberStatusDisabled:
		return true
	}
	return false
}

// Member is a person holding shares in investments and owing membership fees.
// MemberNo is assigned once and never changes or gets reused.
type Member struct {
	shared.BaseAggregateRoot
	MemberNo    string
	Name        string
	Email       string
	Phone       string
	Role        Role
	Status      MemberStatus
	ActivatedAt *time.Time
	DisabledAt  *time.Time
}

// NewMember creates a pending member with an allocated member number
func NewMember(memberNo, name string, role Role, email, phone string) (*Member, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown member role %q", role))
	}
	if !ValidCode(memberNo) || !strings.HasPrefix(memberNo, rolePrefixes[role]) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("Member number %q does not match role %s", memberNo, role))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member name cannot exceed 100 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member email is not valid")
		}
	}

	m := &Member{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MemberNo:          memberNo,
		Name:              name,
		Email:             email,
		Phone:             phone,
		Role:              role,
		Status:            MemberStatusPending,
	}
	m.AddDomainEvent(NewMemberRegisteredEvent(m))
	return m, nil
}

// Activate moves a pending or disabled member to active
func (m *Member) Activate() error {
	if m.Status == MemberStatusActive {
		return shared.NewDomainError(shared.CodeInvalidTransition, "Member is already active")
	}
	from := m.Status
	now := shared.Now()
	m.Status = MemberStatusActive
	m.ActivatedAt = &now
	m.DisabledAt = nil
	m.Touch()
	m.AddDomainEvent(NewMemberStatusChangedEvent(m, from))
	return nil
}

// Disable moves an active member to disabled
func (m *Member) Disable() error {
	if m.Status != MemberStatusActive {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot disable member in %s status", m.Status))
	}
	now := shared.Now()
	m.Status = MemberStatusDisabled
	m.DisabledAt = &now
	m.Touch()
	m.AddDomainEvent(NewMemberStatusChangedEvent(m, MemberStatusActive))
	return nil
}

// IsDisabled returns true if the member can no longer accrue fees or profits
func (m *Member) IsDisabled() bool {
	return m.Status == MemberStatusDisabled
}
