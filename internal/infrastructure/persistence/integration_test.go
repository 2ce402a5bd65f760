//go:build integration

package persistence

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/migration"
	"github.com/assetledger/backend/migrations"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newPostgresDB starts a throwaway PostgreSQL container with the embedded
// migrations applied
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("assetledger_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// The migrator closes its connection, so it gets its own
	migrationDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	m, err := migration.New(migrationDB, migrations.FS, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	database, err := Open(gormpostgres.Open(dsn), nil)
	require.NoError(t, err)
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	t.Cleanup(func() { _ = database.Close() })
	return database.DB
}

func TestSequenceRepository_Postgres_ConcurrentReserve(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newPostgresDB(t)
	repo := NewGormSequenceRepository(db, 50)
	ctx := context.Background()
	seed := func(context.Context) (int64, error) { return 0, nil }

	const workers = 30
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		values = make(map[int64]bool)
		errs   []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Reserve(ctx, "member:G", seed)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			values[v] = true
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, values, workers)
	for v := int64(1); v <= workers; v++ {
		assert.True(t, values[v], "value %d never handed out", v)
	}

	current, err := repo.Current(ctx, "member:G")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), current)
}

func TestMemberRepository_Postgres_DuplicateNumber(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newPostgresDB(t)
	repo := NewGormMemberRepository(db)
	ctx := context.Background()

	first, err := membership.NewMember("C001", "Lin Mei", membership.RoleNormal, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := membership.NewMember("C001", "Chen Wei", membership.RoleNormal, "", "")
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.True(t, shared.IsCode(err, shared.CodeDuplicateCode), "got %v", err)

	found, err := repo.FindByMemberNo(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}
