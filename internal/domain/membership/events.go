package membership

import (
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	EventTypeMemberRegistered    = "MemberRegistered"
	EventTypeMemberStatusChanged = "MemberStatusChanged"
	EventTypeCompanyRegistered   = "CompanyRegistered"
)

// MemberRegisteredEvent is raised when a member receives a member number
type MemberRegisteredEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID `json:"member_id"`
	MemberNo string    `json:"member_no"`
	Role     Role      `json:"role"`
}

// NewMemberRegisteredEvent creates a new MemberRegisteredEvent
func NewMemberRegisteredEvent(m *Member) *MemberRegisteredEvent {
	return &MemberRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberRegistered, "Member", m.ID),
		MemberID:        m.ID,
		MemberNo:        m.MemberNo,
		Role:            m.Role,
	}
}

// MemberStatusChangedEvent is raised on activation and disabling
type MemberStatusChangedEvent struct {
	shared.BaseDomainEvent
	MemberID   uuid.UUID    `json:"member_id"`
	FromStatus MemberStatus `json:"from_status"`
	ToStatus   MemberStatus `json:"to_status"`
}

// NewMemberStatusChangedEvent creates a new MemberStatusChangedEvent
func NewMemberStatusChangedEvent(m *Member, from MemberStatus) *MemberStatusChangedEvent {
	return &MemberStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberStatusChanged, "Member", m.ID),
		MemberID:        m.ID,
		FromStatus:      from,
		ToStatus:        m.Status,
	}
}

// CompanyRegisteredEvent is raised when a company receives a company number
type CompanyRegisteredEvent struct {
	shared.BaseDomainEvent
	CompanyID uuid.UUID `json:"company_id"`
	CompanyNo string    `json:"company_no"`
	TaxID     string    `json:"tax_id"`
}

// NewCompanyRegisteredEvent creates a new CompanyRegisteredEvent
func NewCompanyRegisteredEvent(c *Company) *CompanyRegisteredEvent {
	return &CompanyRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyRegistered, "Company", c.ID),
		CompanyID:       c.ID,
		CompanyNo:       c.CompanyNo,
		TaxID:           c.TaxID,
	}
}
