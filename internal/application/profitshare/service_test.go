package profitshare

import (
	"context"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence"
	"github.com/assetledger/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	service    *Service
	scope      *persistence.GormTransactionScope
	events     *testutil.RecordingPublisher
	investment *leasing.Investment
	lease      *leasing.LeaseItem
	members    []uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	scope := testutil.NewTestScope(t)
	events := testutil.NewRecordingPublisher()
	clock := testutil.NewClock(testutil.Day(2026, time.March, 10).Add(10 * time.Hour))

	service := NewService(scope, events, zap.NewNop())
	service.SetClock(clock.Now)

	inv, lease := testutil.SeedLeasedInvestment(t, scope,
		testutil.Day(2026, time.January, 1), testutil.Day(2026, time.December, 31), 10000)
	members := []uuid.UUID{
		testutil.SeedMember(t, scope, "C001", "Lin Mei", membership.RoleNormal).ID,
		testutil.SeedMember(t, scope, "C002", "Wang Hao", membership.RoleNormal).ID,
		testutil.SeedMember(t, scope, "C003", "Chang Yu", membership.RoleNormal).ID,
	}
	return fixture{service: service, scope: scope, events: events, investment: inv, lease: lease, members: members}
}

func (f fixture) paidPayment(t *testing.T, month time.Month) *leasing.RentalPayment {
	t.Helper()
	return testutil.SeedPayment(t, f.scope, f.investment, f.lease, 2026, month, testutil.Day(2026, month, 5))
}

func (f fixture) percentageStandard(t *testing.T, percent int64, start string, end *string) *StandardResponse {
	t.Helper()
	s, err := f.service.AddStandard(context.Background(), f.investment.ID, CreateStandardRequest{
		Type: "percentage", Value: decimal.NewFromInt(percent), StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	return s
}

func TestService_AddStandard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.percentageStandard(t, 10, "2026-01-01", strPtr("2026-06-30"))
	assert.Equal(t, "percentage", first.Type)
	assert.Equal(t, "2026-06-30", *first.EndDate)

	t.Run("overlap is rejected and nothing is stored", func(t *testing.T) {
		_, err := f.service.AddStandard(ctx, f.investment.ID, CreateStandardRequest{
			Type: "fixed_amount", Value: decimal.NewFromInt(500), StartDate: "2026-06-30",
		})
		assert.True(t, shared.IsCode(err, shared.CodeOverlappingStandards))

		list, err := f.service.ListStandards(ctx, f.investment.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("adjacent window is accepted", func(t *testing.T) {
		f.percentageStandard(t, 12, "2026-07-01", nil)
		list, err := f.service.ListStandards(ctx, f.investment.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "2026-07-01", list[1].StartDate)
		assert.Nil(t, list[1].EndDate)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.service.AddStandard(ctx, f.investment.ID, CreateStandardRequest{
			Type: "percentage", Value: decimal.NewFromInt(101), StartDate: "2027-01-01",
		})
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))

		_, err = f.service.AddStandard(ctx, f.investment.ID, CreateStandardRequest{
			Type: "fixed_amount", Value: decimal.NewFromInt(100), MinAmount: int64Ptr(500), MaxAmount: int64Ptr(100), StartDate: "2027-01-01",
		})
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("unknown investment", func(t *testing.T) {
		_, err := f.service.AddStandard(ctx, uuid.New(), CreateStandardRequest{
			Type: "percentage", Value: decimal.NewFromInt(5), StartDate: "2026-01-01",
		})
		assert.True(t, shared.IsCode(err, shared.CodeNotFound))
	})
}

func TestService_Distribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	standard := f.percentageStandard(t, 10, "2026-01-01", nil)
	payment := f.paidPayment(t, time.February)

	resp, err := f.service.Distribute(ctx, payment.ID, DistributeRequest{MemberIDs: f.members})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.Total, "10% of 10000")
	assert.Equal(t, standard.ID, resp.StandardID, "covering standard is selected")
	require.Len(t, resp.Profits, 3)
	assert.Equal(t, int64(334), resp.Profits[0].Amount)
	assert.Equal(t, int64(333), resp.Profits[1].Amount)
	assert.Equal(t, int64(333), resp.Profits[2].Amount)
	for i, p := range resp.Profits {
		assert.Equal(t, f.members[i], p.MemberID)
		assert.Equal(t, "pending", p.Status)
		assert.Equal(t, 2, p.Month)
	}
	assert.Equal(t, 1, f.events.Count(profitshare.EventTypeProfitDistributed))

	_, err = f.service.Distribute(ctx, payment.ID, DistributeRequest{MemberIDs: f.members[:1]})
	assert.True(t, shared.IsCode(err, shared.CodeAlreadyDistributed))

	stored, err := f.service.ListByPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3, "first distribution is unchanged")
}

func TestService_DistributeWeighted(t *testing.T) {
	f := newFixture(t)
	standard := f.percentageStandard(t, 10, "2026-01-01", nil)
	payment := f.paidPayment(t, time.February)

	resp, err := f.service.Distribute(context.Background(), payment.ID, DistributeRequest{
		StandardID:    &standard.ID,
		MemberIDs:     f.members[:2],
		MemberWeights: map[uuid.UUID]int64{f.members[0]: 3, f.members[1]: 1},
	})
	require.NoError(t, err)
	require.Len(t, resp.Profits, 2)
	assert.Equal(t, int64(750), resp.Profits[0].Amount)
	assert.Equal(t, int64(250), resp.Profits[1].Amount)
}

func TestService_DistributeRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.percentageStandard(t, 10, "2026-02-01", strPtr("2026-02-28"))

	t.Run("payment not paid", func(t *testing.T) {
		pending := testutil.SeedPayment(t, f.scope, f.investment, f.lease, 2026, time.February, time.Time{})
		_, err := f.service.Distribute(ctx, pending.ID, DistributeRequest{MemberIDs: f.members})
		assert.True(t, shared.IsCode(err, shared.CodePaymentNotPaid))
	})

	t.Run("no covering standard", func(t *testing.T) {
		jan := f.paidPayment(t, time.January)
		_, err := f.service.Distribute(ctx, jan.ID, DistributeRequest{MemberIDs: f.members})
		assert.True(t, shared.IsCode(err, shared.CodeNoApplicableStandard))
	})

	march := f.paidPayment(t, time.March)
	otherStandard, err := f.service.AddStandard(ctx, f.investment.ID, CreateStandardRequest{
		Type: "other", Value: decimal.Zero, MinAmount: int64Ptr(100), MaxAmount: int64Ptr(2000), StartDate: "2026-03-01",
	})
	require.NoError(t, err)

	t.Run("manual amount outside clamps", func(t *testing.T) {
		_, err := f.service.Distribute(ctx, march.ID, DistributeRequest{
			StandardID: &otherStandard.ID, MemberIDs: f.members, ManualAmount: int64Ptr(2500),
		})
		assert.True(t, shared.IsCode(err, shared.CodeAmountOutOfRange))
	})

	t.Run("duplicate member", func(t *testing.T) {
		_, err := f.service.Distribute(ctx, march.ID, DistributeRequest{
			MemberIDs: []uuid.UUID{f.members[0], f.members[0]}, ManualAmount: int64Ptr(900),
		})
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := f.service.Distribute(ctx, march.ID, DistributeRequest{
			MemberIDs: []uuid.UUID{uuid.New()}, ManualAmount: int64Ptr(900),
		})
		assert.True(t, shared.IsCode(err, shared.CodeNotFound))
	})

	profits, err := f.service.ListByPayment(ctx, march.ID)
	require.NoError(t, err)
	assert.Empty(t, profits, "failed distributions store nothing")

	resp, err := f.service.Distribute(ctx, march.ID, DistributeRequest{MemberIDs: f.members[:2], ManualAmount: int64Ptr(901)})
	require.NoError(t, err)
	assert.Equal(t, int64(451), resp.Profits[0].Amount)
	assert.Equal(t, int64(450), resp.Profits[1].Amount)
}

func TestService_MarkProfitPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.percentageStandard(t, 10, "2026-01-01", nil)
	payment := f.paidPayment(t, time.February)

	resp, err := f.service.Distribute(ctx, payment.ID, DistributeRequest{MemberIDs: f.members})
	require.NoError(t, err)

	paid, err := f.service.MarkProfitPaid(ctx, resp.Profits[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	require.NotNil(t, paid.PaidAt)

	_, err = f.service.MarkProfitPaid(ctx, resp.Profits[1].ID)
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))

	_, err = f.service.MarkProfitPaid(ctx, uuid.New())
	assert.True(t, shared.IsCode(err, shared.CodeNotFound))

	mine, err := f.service.ListByMember(ctx, f.members[1])
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "paid", mine[0].Status)
	assert.Equal(t, int64(333), mine[0].Amount)
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
