package profitshare

import (
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is one member's part of a distributed total
type Allocation struct {
	MemberID uuid.UUID
	Amount   int64
}

// Distribute splits total across members. Without weights every member gets
// an equal floored share; with weights each share is floored in proportion.
// Whatever the flooring leaves over goes to the first member so the parts
// always sum to total.
func Distribute(total int64, memberIDs []uuid.UUID, weights map[uuid.UUID]int64) ([]Allocation, error) {
	if total < 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Total to distribute cannot be negative")
	}
	if len(memberIDs) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "At least one member is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		if id == uuid.Nil {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member ID cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Member listed more than once")
		}
		seen[id] = struct{}{}
	}

	var totalWeight int64
	if len(weights) > 0 {
		if len(weights) != len(memberIDs) {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Every member needs exactly one weight")
		}
		for _, id := range memberIDs {
			w, ok := weights[id]
			if !ok || w <= 0 {
				return nil, shared.NewDomainError(shared.CodeInvalidInput, "Weights must be positive for every member")
			}
			totalWeight += w
		}
	}

	out := make([]Allocation, len(memberIDs))
	var assigned int64
	for i, id := range memberIDs {
		var share int64
		if totalWeight > 0 {
			q, _ := decimal.NewFromInt(total).Mul(decimal.NewFromInt(weights[id])).QuoRem(decimal.NewFromInt(totalWeight), 0)
			share = q.IntPart()
		} else {
			share = total / int64(len(memberIDs))
		}
		out[i] = Allocation{MemberID: id, Amount: share}
		assigned += share
	}
	out[0].Amount += total - assigned
	return out, nil
}
