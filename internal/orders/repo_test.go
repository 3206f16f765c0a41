package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

func seedOrder(t *testing.T, db *gorm.DB, status enums.OrderStatus, orderedAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:              uuid.New(),
		CustomerName:    "Maria",
		CustomerContact: "5511987654321",
		Description:     "1x Calabresa (Grande) – R$ 75.00",
		OrderedAt:       orderedAt,
		Address:         "Rua das Flores, 123, casa 2, 01001-000",
		PaymentMethod:   enums.PaymentMethodPix,
		Total:           decimal.NewFromInt(75),
		Status:          status,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryCreateAndFindByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, enums.OrderStatusConfirmed, time.Now())

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Description, found.Description)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(75)))
}

func TestRepositoryListAdminFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 19, 0, 0, 0, time.UTC)

	delivered := seedOrder(t, db, enums.OrderStatusDelivered, day1)
	seedOrder(t, db, enums.OrderStatusConfirmed, day2)
	seedOrder(t, db, enums.OrderStatusDelivered, day2)

	byStatus, total, err := repo.ListAdmin(ctx, AdminListFilters{Status: "entregue"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byStatus, 2)

	byDate, total, err := repo.ListAdmin(ctx, AdminListFilters{Date: "2026-08-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byDate, 1)
	assert.Equal(t, delivered.ID, byDate[0].ID)

	byID, total, err := repo.ListAdmin(ctx, AdminListFilters{OrderID: delivered.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byID, 1)
}

func TestRepositoryListAdminPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedOrder(t, db, enums.OrderStatusConfirmed, base.Add(time.Duration(i)*time.Hour))
	}

	page1, total, err := repo.ListAdmin(ctx, AdminListFilters{Page: pagination.Params{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page1, 10)

	page2, _, err := repo.ListAdmin(ctx, AdminListFilters{Page: pagination.Params{Page: 2, Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, page2, 2)

	// newest first
	assert.True(t, page1[0].OrderedAt.After(page1[9].OrderedAt))
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, enums.OrderStatusConfirmed, time.Now())

	affected, err := repo.UpdateStatus(ctx, order.ID, enums.OrderStatusOutForDely)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusOutForDely, reloaded.Status)

	affected, err = repo.UpdateStatus(ctx, uuid.New(), enums.OrderStatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestRepositoryListWindow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedOrder(t, db, enums.OrderStatusDelivered, time.Date(2026, 7, 31, 23, 0, 0, 0, time.UTC))
	inWindow := seedOrder(t, db, enums.OrderStatusDelivered, time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	seedOrder(t, db, enums.OrderStatusDelivered, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	orders, err := repo.ListWindow(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, inWindow.ID, orders[0].ID)
}
