package cmd

import (
	"context"
	"net/http/httptest"
	"testing"

	"bookstore/core/config"
	"bookstore/core/database"
	"bookstore/core/middleware/auth"
	"bookstore/core/middleware/session"
	"bookstore/feature/bookstore/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, migrate(db))
	return db
}

func TestNewApp_Wiring(t *testing.T) {
	db := testDB(t)
	require.NoError(t, seed(context.Background(), db, zap.NewNop(), "Admin", "admin@example.com"))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)

	cfg := &config.Config{}
	cfg.Server.ApiKey = "secret"
	cfg.Server.BodyLimitBytes = 1 << 20

	app, err := newApp(cfg, zap.NewNop(), db, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		apiKey string
		user   string
		status int
	}{
		{"health is public", "/healthz", "", "", fiber.StatusOK},
		{"api key required", "/books", "", "", fiber.StatusUnauthorized},
		{"public catalog", "/categories/tree", "secret", "", fiber.StatusOK},
		{"unknown session user", "/me", "secret", "ghost", fiber.StatusUnauthorized},
		{"profile", "/me", "secret", admin.ID, fiber.StatusOK},
		{"admin route", "/admin/users", "secret", admin.ID, fiber.StatusOK},
		{"cart needs user", "/cart", "secret", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set(auth.Header, tt.apiKey)
			}
			if tt.user != "" {
				req.Header.Set(session.Header, tt.user)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, seed(ctx, db, zap.NewNop(), "Admin", "admin@example.com"))
	require.NoError(t, seed(ctx, db, zap.NewNop(), "Admin", "admin@example.com"))

	var users, cats int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Category{}).Where("parent_id IS NULL").Count(&cats).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, len(rootCategories), cats)
}
