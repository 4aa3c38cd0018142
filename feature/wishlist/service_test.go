package wishlist_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/feature/bookstore/fixtures"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/wishlist"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddIsIdempotent(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := wishlist.NewService(db, zap.NewNop())
	ctx := context.Background()

	actor := &session.Actor{ID: fixtures.User(t, db, "Ada", models.RoleCustomer).ID}
	book := fixtures.Book(t, db, "Middlemarch")

	first, err := svc.Add(ctx, actor, wishlist.AddRequest{BookID: book.ID})
	require.NoError(t, err)
	second, err := svc.Add(ctx, actor, wishlist.AddRequest{BookID: book.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = svc.Add(ctx, actor, wishlist.AddRequest{BookID: "missing"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	entries, err := svc.List(ctx, actor)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Middlemarch", entries[0].Title)
	assert.Equal(t, "middlemarch", entries[0].Slug)
}

func TestRemove(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := wishlist.NewService(db, zap.NewNop())
	ctx := context.Background()

	owner := &session.Actor{ID: fixtures.User(t, db, "Owner", models.RoleCustomer).ID}
	other := &session.Actor{ID: fixtures.User(t, db, "Other", models.RoleCustomer).ID}
	item, err := svc.Add(ctx, owner, wishlist.AddRequest{BookID: fixtures.Book(t, db, "Persuasion").ID})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, owner, "missing"), apperror.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, other, item.ID), apperror.ErrUnauthorized)
	require.NoError(t, svc.Remove(ctx, owner, item.ID))
	assert.Zero(t, fixtures.Count(t, db, &models.WishlistItem{}, ""))
}

func TestHandler_RequiresUser(t *testing.T) {
	db := fixtures.NewDB(t)
	user := fixtures.User(t, db, "Ada", models.RoleCustomer)
	book := fixtures.Book(t, db, "Beloved")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if id := c.Get(session.Header); id != "" {
			session.WithActor(c, &session.Actor{ID: id, Role: session.RoleCustomer})
		}
		return c.Next()
	})
	require.NoError(t, wishlist.NewFeature(db, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/wishlist", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("POST", "/wishlist", strings.NewReader(`{"book_id":"`+book.ID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.Header, user.ID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
