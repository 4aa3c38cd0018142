package users_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/feature/bookstore/fixtures"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAndResolve(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := users.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	user, err := svc.Create(ctx, users.UserRequest{Name: "Ada", Email: " Ada@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.RoleCustomer, user.Role)

	_, err = svc.Create(ctx, users.UserRequest{Name: "Ada again", Email: "ada@example.com"})
	assert.Equal(t, apperror.CodeUnprocessable, apperror.CodeOf(err))

	_, err = svc.Create(ctx, users.UserRequest{Name: "Bad", Email: "not-an-email"})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	actor, err := svc.ResolveActor(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, &session.Actor{ID: user.ID, Name: "Ada", Role: models.RoleCustomer}, actor)

	_, err = svc.ResolveActor(ctx, "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSetRole(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := users.NewService(db, pagination.Config{}, zap.NewNop())
	ctx := context.Background()

	admin := fixtures.User(t, db, "Root", models.RoleAdmin)
	customer := fixtures.User(t, db, "Bob", models.RoleCustomer)
	actor := &session.Actor{ID: admin.ID, Role: session.RoleAdmin}

	updated, err := svc.SetRole(ctx, actor, customer.ID, users.RoleRequest{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = svc.SetRole(ctx, actor, admin.ID, users.RoleRequest{Role: models.RoleCustomer})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	page, err := svc.List(ctx, users.ListQuery{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestHandler_Me(t *testing.T) {
	db := fixtures.NewDB(t)
	user := fixtures.User(t, db, "Ada", models.RoleCustomer)

	feature := users.NewFeature(db, pagination.Config{}, zap.NewNop())
	app := fiber.New()
	app.Use(session.New(feature.Service(), zap.NewNop()))
	require.NoError(t, feature.Load(app))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(session.Header, user.ID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set(session.Header, user.ID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(session.Header, "ghost")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
