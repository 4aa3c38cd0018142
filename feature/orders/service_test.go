package orders_test

import (
	"context"
	"strings"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/feature/bookstore/fixtures"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/orders"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func addToCart(t *testing.T, db *gorm.DB, userID, variantID string, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.CartItem{UserID: userID, VariantID: variantID, Quantity: qty}).Error)
}

func stockOf(t *testing.T, db *gorm.DB, variantID string) int {
	t.Helper()
	var v models.BookVariant
	require.NoError(t, db.First(&v, "id = ?", variantID).Error)
	return v.Stock
}

func TestCheckout(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := orders.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	user := fixtures.User(t, db, "Ada", models.RoleCustomer)
	actor := &session.Actor{ID: user.ID, Role: session.RoleCustomer}

	onSale := fixtures.Variant("20.00", 5)
	salePrice := decimal.RequireFromString("12.00")
	onSale.SalePrice = &salePrice
	book := fixtures.Book(t, db, "Dracula", onSale, fixtures.Variant("7.50", 2))

	addToCart(t, db, user.ID, book.Variants[0].ID, 2)
	addToCart(t, db, user.ID, book.Variants[1].ID, 1)

	order, err := svc.Checkout(ctx, actor)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.Reference, "ORD-"))
	assert.Len(t, order.Reference, 14)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 31.50, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Dracula", order.Items[0].Title)
	assert.InDelta(t, 12.00, order.Items[0].UnitPrice, 0.001)

	assert.Equal(t, 3, stockOf(t, db, book.Variants[0].ID))
	assert.Equal(t, 1, stockOf(t, db, book.Variants[1].ID))
	assert.Zero(t, fixtures.Count(t, db, &models.CartItem{}, "user_id = ?", user.ID))

	_, err = svc.Checkout(ctx, actor)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := orders.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	user := fixtures.User(t, db, "Ada", models.RoleCustomer)
	book := fixtures.Book(t, db, "Frankenstein", fixtures.Variant("9.00", 10), fixtures.Variant("5.00", 1))
	addToCart(t, db, user.ID, book.Variants[0].ID, 4)
	addToCart(t, db, user.ID, book.Variants[1].ID, 3)

	_, err := svc.Checkout(ctx, &session.Actor{ID: user.ID})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	assert.Equal(t, 10, stockOf(t, db, book.Variants[0].ID))
	assert.Equal(t, 1, stockOf(t, db, book.Variants[1].ID))
	assert.EqualValues(t, 2, fixtures.Count(t, db, &models.CartItem{}, ""))
	assert.Zero(t, fixtures.Count(t, db, &models.Order{}, ""))
}

func TestHistoryAndGet(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := orders.NewService(db, pagination.Config{DefaultLimit: 1}, zap.NewNop())
	ctx := context.Background()

	owner := &session.Actor{ID: fixtures.User(t, db, "Owner", models.RoleCustomer).ID}
	other := &session.Actor{ID: fixtures.User(t, db, "Other", models.RoleCustomer).ID}
	admin := &session.Actor{ID: "admin", Role: session.RoleAdmin}
	book := fixtures.Book(t, db, "Walden", fixtures.Variant("8.00", 10))

	var placed []*orders.View
	for i := 0; i < 2; i++ {
		addToCart(t, db, owner.ID, book.Variants[0].ID, 1)
		order, err := svc.Checkout(ctx, owner)
		require.NoError(t, err)
		placed = append(placed, order)
	}

	page, err := svc.History(ctx, owner, orders.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.HasMore)

	page, err = svc.History(ctx, other, orders.ListQuery{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	got, err := svc.Get(ctx, owner, placed[0].Reference)
	require.NoError(t, err)
	assert.Equal(t, placed[0].ID, got.ID)

	_, err = svc.Get(ctx, other, placed[0].ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Get(ctx, admin, placed[0].ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, owner, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateStatusByReference(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := orders.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	user := &session.Actor{ID: fixtures.User(t, db, "Ada", models.RoleCustomer).ID}
	book := fixtures.Book(t, db, "Emma", fixtures.Variant("8.00", 3))
	addToCart(t, db, user.ID, book.Variants[0].ID, 1)
	order, err := svc.Checkout(ctx, user)
	require.NoError(t, err)

	paid, err := svc.UpdateStatus(ctx, order.Reference, orders.StatusRequest{Status: models.OrderPaid})
	require.NoError(t, err)
	assert.Equal(t, order.ID, paid.ID)
	assert.Equal(t, models.OrderPaid, paid.Status)
}

func TestUpdateStatus(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := orders.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	user := &session.Actor{ID: fixtures.User(t, db, "Ada", models.RoleCustomer).ID}
	book := fixtures.Book(t, db, "Jane Eyre", fixtures.Variant("11.00", 5))
	addToCart(t, db, user.ID, book.Variants[0].ID, 2)
	order, err := svc.Checkout(ctx, user)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.ID, orders.StatusRequest{Status: models.OrderShipped})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	paid, err := svc.UpdateStatus(ctx, order.ID, orders.StatusRequest{Status: models.OrderPaid})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPaid, paid.Status)

	assert.Equal(t, 3, stockOf(t, db, book.Variants[0].ID))
	cancelled, err := svc.UpdateStatus(ctx, order.ID, orders.StatusRequest{Status: models.OrderCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Equal(t, 5, stockOf(t, db, book.Variants[0].ID))

	_, err = svc.UpdateStatus(ctx, "missing", orders.StatusRequest{Status: models.OrderPaid})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	page, err := svc.List(ctx, orders.ListQuery{Status: models.OrderCancelled})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}
