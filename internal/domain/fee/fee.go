package fee

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PeriodKind is the billing cadence of a fee setting
type PeriodKind string

const (
	PeriodMonthly   PeriodKind = "monthly"
	PeriodQuarterly PeriodKind = "quarterly"
	PeriodYearly    PeriodKind = "yearly"
	PeriodLifetime  PeriodKind = "lifetime"
)

// IsValid checks if the period kind is known
func (k PeriodKind) IsValid() bool {
	switch k {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly, PeriodLifetime:
		return true
	}
	return false
}

// LifetimeGraceDays is how long a lifetime fee stays payable after it is raised
const LifetimeGraceDays = 30

// LifetimePeriodKey is the only valid period key for lifetime fees
const LifetimePeriodKey = "LIFETIME"

var (
	monthlyKey   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)
	quarterlyKey = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)
	yearlyKey    = regexp.MustCompile(`^(\d{4})$`)
)

// DueDateFor validates a period key against its kind and returns the last
// calendar day the fee may be paid without becoming overdue.
// raisedAt is only used for lifetime fees.
func DueDateFor(kind PeriodKind, key string, raisedAt time.Time) (time.Time, error) {
	invalid := shared.NewDomainError(shared.CodeInvalidInput,
		fmt.Sprintf("Period %q is not a valid %s period", key, kind))
	switch kind {
	case PeriodMonthly:
		m := monthlyKey.FindStringSubmatch(key)
		if m == nil {
			return time.Time{}, invalid
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return valueobject.MonthPeriod{Year: year, Month: month}.LastDay(), nil
	case PeriodQuarterly:
		m := quarterlyKey.FindStringSubmatch(key)
		if m == nil {
			return time.Time{}, invalid
		}
		year, _ := strconv.Atoi(m[1])
		quarter, _ := strconv.Atoi(m[2])
		return valueobject.MonthPeriod{Year: year, Month: quarter * 3}.LastDay(), nil
	case PeriodYearly:
		m := yearlyKey.FindStringSubmatch(key)
		if m == nil {
			return time.Time{}, invalid
		}
		year, _ := strconv.Atoi(m[1])
		return valueobject.MonthPeriod{Year: year, Month: 12}.LastDay(), nil
	case PeriodLifetime:
		if strings.ToUpper(key) != LifetimePeriodKey {
			return time.Time{}, invalid
		}
		return valueobject.StartOfDay(raisedAt).AddDate(0, 0, LifetimeGraceDays), nil
	}
	return time.Time{}, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown period kind %q", kind))
}

// Setting is a fee schedule entry: how much a member of a role owes per period
type Setting struct {
	shared.BaseAggregateRoot
	Name       string
	Amount     int64
	PeriodKind PeriodKind
	MemberRole membership.Role
	Active     bool
}

// NewSetting creates an active fee setting
func NewSetting(name string, amount int64, kind PeriodKind, role membership.Role) (*Setting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Fee setting name cannot be empty")
	}
	if amount <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Fee amount must be positive")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown period kind %q", kind))
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown member role %q", role))
	}
	return &Setting{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Amount:            amount,
		PeriodKind:        kind,
		MemberRole:        role,
		Active:            true,
	}, nil
}

// Status is the lifecycle status of a fee record
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// IsOpen returns true while the fee is still owed
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusOverdue
}

// Record is one fee obligation of a member for one period.
// The stored status is pending, paid or cancelled; overdue is never stored
// and is derived from the due date on every read.
type Record struct {
	shared.BaseAggregateRoot
	MemberID      uuid.UUID
	SettingID     uuid.UUID
	Period        string
	Amount        int64
	DueDate       time.Time
	Status        Status
	PaidDate      *time.Time
	PaymentMethod valueobject.PaymentMethod
	CancelReason  string
}

// NewRecord raises a fee for member according to setting
func NewRecord(memberID uuid.UUID, setting *Setting, period string, raisedAt time.Time) (*Record, error) {
	if memberID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member ID cannot be empty")
	}
	if setting == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Fee setting is required")
	}
	if !setting.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Fee setting is inactive")
	}
	if setting.PeriodKind == PeriodLifetime {
		period = strings.ToUpper(period)
	}
	dueDate, err := DueDateFor(setting.PeriodKind, period, raisedAt)
	if err != nil {
		return nil, err
	}

	r := &Record{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MemberID:          memberID,
		SettingID:         setting.ID,
		Period:            period,
		Amount:            setting.Amount,
		DueDate:           dueDate,
		Status:            StatusPending,
	}
	r.AddDomainEvent(NewFeeRecordCreatedEvent(r))
	return r, nil
}

// RecomputeStatus derives the effective status of a record at now.
// It depends only on the stored status, due date and paid date.
func RecomputeStatus(r *Record, now time.Time) Status {
	if r.PaidDate != nil || r.Status == StatusPaid {
		return StatusPaid
	}
	if r.Status == StatusCancelled {
		return StatusCancelled
	}
	if now.After(valueobject.EndOfDay(r.DueDate)) {
		return StatusOverdue
	}
	return StatusPending
}

// EffectiveStatus is RecomputeStatus bound to the record
func (r *Record) EffectiveStatus(now time.Time) Status {
	return RecomputeStatus(r, now)
}

// MarkPaid settles an open fee. paidDate may not lie in the future.
func (r *Record) MarkPaid(paidDate time.Time, method valueobject.PaymentMethod, now time.Time) error {
	status := r.EffectiveStatus(now)
	if !status.IsOpen() {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot mark fee record as paid in %s status", status))
	}
	if !method.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown payment method %q", method))
	}
	if paidDate.After(now) {
		return shared.NewDomainError(shared.CodeInvalidPaymentDate, "Paid date cannot be in the future")
	}
	r.Status = StatusPaid
	r.PaidDate = &paidDate
	r.PaymentMethod = method
	r.Touch()
	r.AddDomainEvent(NewFeeRecordPaidEvent(r, status == StatusOverdue))
	return nil
}

// Cancel voids an open fee
func (r *Record) Cancel(reason string, now time.Time) error {
	status := r.EffectiveStatus(now)
	if !status.IsOpen() {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot cancel fee record in %s status", status))
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Cancel reason is required")
	}
	r.Status = StatusCancelled
	r.CancelReason = reason
	r.Touch()
	return nil
}

// Outstanding sums the amounts still owed across records at now
func Outstanding(records []Record, now time.Time) int64 {
	var total int64
	for i := range records {
		if records[i].EffectiveStatus(now).IsOpen() {
			total += records[i].Amount
		}
	}
	return total
}
