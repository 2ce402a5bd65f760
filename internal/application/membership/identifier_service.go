// Package membership holds the use cases for members, companies and the
// identifiers they are registered under.
package membership

import (
	"context"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// IdentifierService allocates member and company numbers
type IdentifierService struct {
	repos  uow.Repositories
	logger *zap.Logger
}

// NewIdentifierService creates a new IdentifierService
func NewIdentifierService(repos uow.Repositories, logger *zap.Logger) *IdentifierService {
	return &IdentifierService{repos: repos, logger: logger}
}

// Allocate reserves the next code for a category. For members the
// discriminant is the role. A reserved code is consumed even when the caller
// never uses it.
func (s *IdentifierService) Allocate(ctx context.Context, category membership.IdentifierCategory, discriminant string) (string, error) {
	prefix, err := membership.PrefixFor(category, discriminant)
	if err != nil {
		return "", err
	}
	scope := membership.SequenceScope(category, prefix)

	ctx, span := telemetry.StartServiceSpan(ctx, "identifier", "allocate", telemetry.SpanAttrScope, scope)
	defer span.End()

	seed := func(ctx context.Context) (int64, error) {
		if category == membership.IdentifierCategoryCompany {
			return s.repos.Companies().CountByNoPrefix(ctx, prefix)
		}
		return s.repos.Members().CountByNoPrefix(ctx, prefix)
	}

	value, err := s.repos.Sequences().Reserve(ctx, scope, seed)
	if err != nil {
		telemetry.RecordError(span, err)
		return "", err
	}
	code, err := membership.FormatCode(prefix, value)
	if err != nil {
		s.logger.Warn("Identifier sequence exhausted",
			zap.String("scope", scope),
			zap.Int64("value", value),
		)
		telemetry.RecordError(span, err)
		return "", err
	}

	s.logger.Debug("Allocated identifier", zap.String("scope", scope), zap.String("code", code))
	return code, nil
}

// AllocateFromRequest validates the wire form of an allocation
func (s *IdentifierService) AllocateFromRequest(ctx context.Context, req AllocateIdentifierRequest) (*IdentifierResponse, error) {
	code, err := s.Allocate(ctx, membership.IdentifierCategory(req.Category), req.Discriminant)
	if err != nil {
		return nil, err
	}
	return &IdentifierResponse{Code: code}, nil
}
