package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with every table migrated.
// A single connection keeps the in-memory database alive and shared.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := Open(sqlite.Open(":memory:"), nil)
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.DB.AutoMigrate(models.AllModels()...))
	return database.DB
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, valueobject.Location)
}

func seedInvestment(t *testing.T, db *gorm.DB) *leasing.Investment {
	t.Helper()
	inv, err := leasing.NewInvestment(uuid.New(), "Warehouse 7", 5_000_000, day(2026, 1, 1), nil,
		leasing.ImmovableDetail{Address: "No. 7, Zhongshan Rd", LandNumber: "0123-4567"})
	require.NoError(t, err)
	require.NoError(t, inv.Activate())
	require.NoError(t, NewGormInvestmentRepository(db).Create(context.Background(), inv))
	return inv
}
