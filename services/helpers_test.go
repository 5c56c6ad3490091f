package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"shopcart-backend/config"
	"shopcart-backend/database"
	"shopcart-backend/dtos"
	"shopcart-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB returns a migrated in-memory database private to the calling test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, database.EnsureUser(context.Background(), db, models.User{ID: id, Name: "Demo User", Email: "demo@example.com"}))
}

func seedProduct(t *testing.T, db *gorm.DB, id, name, price string) models.Product {
	t.Helper()
	p := models.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func countCartItems(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{Timeout: 200 * time.Millisecond, IDPrefix: "fs-"}
}

type stubSource struct {
	products []dtos.ExternalProduct
	err      error
	calls    atomic.Int32
}

func (s *stubSource) FetchProducts(ctx context.Context) ([]dtos.ExternalProduct, error) {
	s.calls.Add(1)
	return s.products, s.err
}

func newLedger(db *gorm.DB) *CartLedger {
	return NewCartLedger(db, zap.NewNop())
}
