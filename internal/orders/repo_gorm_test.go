package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))
	return db
}

func testOrder(id string, userID int, status enums.OrderStatus, createdAt time.Time) *models.Order {
	return &models.Order{
		ID:     id,
		UserID: userID,
		Status: status,
		Total:  decimal.NewFromInt(1199),
		Items: []models.OrderItem{
			{ProductID: 4, Name: "iPhone 15 Pro Max", Price: decimal.NewFromInt(1199), Quantity: 1},
		},
		PaymentMethod:   map[string]any{"type": "card"},
		ShippingAddress: map[string]any{"city": "CDMX"},
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestGormOrdersListNewestFirst(t *testing.T) {
	repo := NewGormRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"ORD-001", "ORD-002", "ORD-003"} {
		_, err := repo.Create(ctx, testOrder(id, 1, enums.OrderStatusPending, base.AddDate(0, 0, i)))
		require.NoError(t, err)
	}

	orders, err := repo.List(ctx, ListFilters{})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-003", orders[0].ID)
	assert.Equal(t, "ORD-001", orders[2].ID)

	limited, err := repo.List(ctx, ListFilters{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "ORD-003", limited[0].ID)
}

func TestGormOrdersListFilters(t *testing.T) {
	repo := NewGormRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, testOrder("ORD-001", 1, enums.OrderStatusDelivered, base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("ORD-002", 2, enums.OrderStatusPending, base.AddDate(0, 0, 1)))
	require.NoError(t, err)

	user := 1
	byUser, err := repo.List(ctx, ListFilters{UserID: &user})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "ORD-001", byUser[0].ID)

	status := enums.OrderStatusPending
	byStatus, err := repo.List(ctx, ListFilters{Status: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "ORD-002", byStatus[0].ID)
}

func TestGormOrdersUpdateRoundTrip(t *testing.T) {
	repo := NewGormRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, testOrder("ORD-001", 1, enums.OrderStatusPending, created))
	require.NoError(t, err)

	order, err := repo.Get(ctx, "ORD-001")
	require.NoError(t, err)

	tracking := "MX123456789"
	shipped := created.AddDate(0, 0, 2)
	order.Status = enums.OrderStatusShipped
	order.TrackingNumber = &tracking
	order.ShippedAt = &shipped

	_, err = repo.Update(ctx, order)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipped, got.Status)
	require.NotNil(t, got.TrackingNumber)
	assert.Equal(t, tracking, *got.TrackingNumber)
	require.NotNil(t, got.ShippedAt)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "iPhone 15 Pro Max", got.Items[0].Name)
}

func TestGormOrdersGetMissing(t *testing.T) {
	repo := NewGormRepository(setupOrdersTestDB(t))

	_, err := repo.Get(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormOrdersCount(t *testing.T) {
	repo := NewGormRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err = repo.Create(ctx, testOrder("ORD-001", 1, enums.OrderStatusPending, base))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
