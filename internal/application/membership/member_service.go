package membership

import (
	"context"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxRegisterAttempts bounds how often registration retries with a fresh
// number after a duplicate-key collision
const maxRegisterAttempts = 3

// MemberService handles member registration and lifecycle
type MemberService struct {
	scope       uow.TransactionScope
	identifiers *IdentifierService
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewMemberService creates a new MemberService
func NewMemberService(scope uow.TransactionScope, identifiers *IdentifierService, publisher shared.EventPublisher, logger *zap.Logger) *MemberService {
	return &MemberService{
		scope:       scope,
		identifiers: identifiers,
		publisher:   publisher,
		logger:      logger,
	}
}

// Register allocates a member number for the role and creates a pending member
func (s *MemberService) Register(ctx context.Context, req RegisterMemberRequest) (*MemberResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "member", "register", "role", req.Role)
	defer span.End()

	role := membership.Role(req.Role)
	var member *membership.Member
	var events uow.Events
	for attempt := 1; ; attempt++ {
		memberNo, err := s.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, string(role))
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		member, err = membership.NewMember(memberNo, req.Name, role, req.Email, req.Phone)
		if err != nil {
			return nil, err
		}

		err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
			return repos.Members().Create(ctx, member)
		})
		if err == nil {
			break
		}
		if shared.IsCode(err, shared.CodeDuplicateCode) && attempt < maxRegisterAttempts {
			s.logger.Warn("Member number collided, retrying with a new number",
				zap.String("member_no", memberNo),
				zap.Int("attempt", attempt),
			)
			continue
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Collect(member)
	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Member registered",
		zap.String("member_id", member.ID.String()),
		zap.String("member_no", member.MemberNo),
		zap.String("role", string(member.Role)),
	)
	resp := ToMemberResponse(member)
	return &resp, nil
}

// Activate moves a member to active
func (s *MemberService) Activate(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	return s.transition(ctx, id, "activate", (*membership.Member).Activate)
}

// Disable moves an active member to disabled
func (s *MemberService) Disable(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	return s.transition(ctx, id, "disable", (*membership.Member).Disable)
}

func (s *MemberService) transition(ctx context.Context, id uuid.UUID, op string, apply func(*membership.Member) error) (*MemberResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "member", op, telemetry.SpanAttrMemberID, id)
	defer span.End()

	var member *membership.Member
	var events uow.Events
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		member, err = repos.Members().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(member); err != nil {
			return err
		}
		if err := repos.Members().SaveWithLock(ctx, member); err != nil {
			return err
		}
		events.Collect(member)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Member status changed",
		zap.String("member_id", member.ID.String()),
		zap.String("status", string(member.Status)),
	)
	resp := ToMemberResponse(member)
	return &resp, nil
}

// GetByID returns a member
func (s *MemberService) GetByID(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.scope.Members().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMemberResponse(member)
	return &resp, nil
}

// List returns a page of members
func (s *MemberService) List(ctx context.Context, f MemberListFilter) (shared.Paginated[MemberResponse], error) {
	filter := membership.MemberFilter{Filter: shared.DefaultFilter()}
	filter.OrderBy = "member_no"
	filter.OrderDir = "asc"
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	if f.Role != "" {
		role := membership.Role(f.Role)
		filter.Role = &role
	}
	if f.Status != "" {
		status := membership.MemberStatus(f.Status)
		filter.Status = &status
	}

	members, total, err := s.scope.Members().FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[MemberResponse]{}, err
	}
	items := make([]MemberResponse, len(members))
	for i := range members {
		items[i] = ToMemberResponse(&members[i])
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}
