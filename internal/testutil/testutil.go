// Package testutil provides common test utilities for the asset ledger backend.
// It sets up SQLite-backed repositories, records published events and drives
// gin handlers.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/persistence"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestDB opens an in-memory SQLite database with every table migrated.
// A single connection keeps the in-memory database alive and shared.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := persistence.Open(sqlite.Open(":memory:"), nil)
	require.NoError(t, err, "Failed to open SQLite database")

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.DB.AutoMigrate(models.AllModels()...), "Failed to migrate")
	return database.DB
}

// NewTestScope returns a transaction scope over a fresh SQLite database
func NewTestScope(t *testing.T) *persistence.GormTransactionScope {
	t.Helper()
	return persistence.NewGormTransactionScope(NewTestDB(t), persistence.DefaultSequenceRetries)
}

// Day returns midnight of a calendar day in the business time zone
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, valueobject.Location)
}

// Clock is a settable time source for services that take a now function
type Clock struct {
	now time.Time
}

// NewClock creates a clock frozen at now
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the clock's current time
func (c *Clock) Now() time.Time {
	return c.now
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// ContextWithTimeout creates a context with timeout for testing.
func ContextWithTimeout(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}

// AssertEventually polls condition until it holds or timeout passes.
func AssertEventually(t *testing.T, condition func() bool, timeout, interval time.Duration, msgAndArgs ...interface{}) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(interval)
	}
	if condition() {
		return true
	}
	if len(msgAndArgs) > 0 {
		t.Errorf("Condition not met within %v: %v", timeout, msgAndArgs)
	} else {
		t.Errorf("Condition not met within %v", timeout)
	}
	return false
}
