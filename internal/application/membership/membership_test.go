package membership

import (
	"context"
	"testing"

	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	identifiers *IdentifierService
	members     *MemberService
	companies   *CompanyService
	events      *testutil.RecordingPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	scope := testutil.NewTestScope(t)
	events := testutil.NewRecordingPublisher()
	logger := zap.NewNop()
	identifiers := NewIdentifierService(scope, logger)
	return fixture{
		identifiers: identifiers,
		members:     NewMemberService(scope, identifiers, events, logger),
		companies:   NewCompanyService(scope, identifiers, events, logger),
		events:      events,
	}
}

func TestIdentifierService_Allocate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("sequential codes per role are strictly increasing", func(t *testing.T) {
		var codes []string
		for i := 0; i < 3; i++ {
			code, err := f.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, "normal")
			require.NoError(t, err)
			codes = append(codes, code)
		}
		assert.Equal(t, []string{"C001", "C002", "C003"}, codes)
	})

	t.Run("roles have independent counters", func(t *testing.T) {
		code, err := f.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, "lifetime")
		require.NoError(t, err)
		assert.Equal(t, "V001", code)

		code, err = f.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, "admin")
		require.NoError(t, err)
		assert.Equal(t, "A001", code)
	})

	t.Run("companies do not share the admin counter", func(t *testing.T) {
		code, err := f.identifiers.Allocate(ctx, membership.IdentifierCategoryCompany, "")
		require.NoError(t, err)
		assert.Equal(t, "A001", code)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := f.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, "guest")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("request form", func(t *testing.T) {
		resp, err := f.identifiers.AllocateFromRequest(ctx, AllocateIdentifierRequest{Category: "member", Discriminant: "business"})
		require.NoError(t, err)
		assert.Equal(t, "B001", resp.Code)
	})
}

func TestMemberService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.members.Register(ctx, RegisterMemberRequest{Name: "Lin Mei", Role: "normal", Email: "mei@example.com"})
	require.NoError(t, err)
	second, err := f.members.Register(ctx, RegisterMemberRequest{Name: "Chen Wei", Role: "normal"})
	require.NoError(t, err)

	assert.Equal(t, "C001", first.MemberNo)
	assert.Equal(t, "C002", second.MemberNo)
	assert.Equal(t, string(membership.MemberStatusPending), first.Status)
	assert.Equal(t, 2, f.events.Count(membership.EventTypeMemberRegistered))

	got, err := f.members.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lin Mei", got.Name)
}

func TestMemberService_Register_SkipsNumbersTakenOutsideTheCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := f.members.scope

	// C001 is consumed by the counter but C002 was inserted directly
	_, err := f.identifiers.Allocate(ctx, membership.IdentifierCategoryMember, "normal")
	require.NoError(t, err)
	taken, err := membership.NewMember("C002", "Legacy", membership.RoleNormal, "", "")
	require.NoError(t, err)
	require.NoError(t, scope.Members().Create(ctx, taken))

	resp, err := f.members.Register(ctx, RegisterMemberRequest{Name: "New", Role: "normal"})
	require.NoError(t, err)
	assert.Equal(t, "C003", resp.MemberNo)
}

func TestMemberService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.members.Register(ctx, RegisterMemberRequest{Name: "Wang", Role: "business"})
	require.NoError(t, err)
	assert.Equal(t, "B001", m.MemberNo)

	_, err = f.members.Disable(ctx, m.ID)
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition), "pending members cannot be disabled")

	active, err := f.members.Activate(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", active.Status)
	assert.NotNil(t, active.ActivatedAt)

	disabled, err := f.members.Disable(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "disabled", disabled.Status)

	reactivated, err := f.members.Activate(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", reactivated.Status)
	assert.Equal(t, "B001", reactivated.MemberNo, "reactivation keeps the member number")
	assert.Equal(t, 3, f.events.Count(membership.EventTypeMemberStatusChanged))

	_, err = f.members.Activate(ctx, uuid.New())
	assert.True(t, shared.IsCode(err, shared.CodeNotFound))
}

func TestMemberService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, role := range []string{"normal", "normal", "lifetime"} {
		_, err := f.members.Register(ctx, RegisterMemberRequest{Name: "Member " + role, Role: role})
		require.NoError(t, err)
	}

	all, err := f.members.List(ctx, MemberListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Equal(t, "C001", all.Items[0].MemberNo)

	lifetime, err := f.members.List(ctx, MemberListFilter{Role: "lifetime"})
	require.NoError(t, err)
	require.Len(t, lifetime.Items, 1)
	assert.Equal(t, "V001", lifetime.Items[0].MemberNo)

	paged, err := f.members.List(ctx, MemberListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, 2, paged.TotalPages)
}

func TestCompanyService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.companies.Register(ctx, RegisterCompanyRequest{TaxID: "04595257", Name: "Harbor Leasing Co."})
	require.NoError(t, err)
	assert.Equal(t, "A001", c.CompanyNo)
	assert.Equal(t, 1, f.events.Count(membership.EventTypeCompanyRegistered))

	_, err = f.companies.Register(ctx, RegisterCompanyRequest{TaxID: "04595257", Name: "Copycat"})
	assert.True(t, shared.IsCode(err, shared.CodeDuplicateTaxID))

	next, err := f.companies.Register(ctx, RegisterCompanyRequest{TaxID: "22099131", Name: "Second"})
	require.NoError(t, err)
	assert.Equal(t, "A002", next.CompanyNo, "a rejected tax ID does not consume a number")

	got, err := f.companies.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Leasing Co.", got.Name)

	page, err := f.companies.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}
