package models_test

import (
	"testing"

	"bookstore/core/database"
	"bookstore/feature/bookstore/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "categories", models.Category{}.TableName())
	assert.Equal(t, "series", models.Series{}.TableName())
	assert.Equal(t, "book_categories", models.BookCategory{}.TableName())
	assert.Equal(t, "book_series", models.BookSeries{}.TableName())
}

func TestAutoMigrateAll(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	for _, table := range []string{"books", "book_authors", "book_categories", "book_tags", "book_series", "book_variants", "book_images", "orders"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestModelAssignsID(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	author := models.Author{Name: "Ursula K. Le Guin", Slug: "ursula-k-le-guin"}
	require.NoError(t, db.Create(&author).Error)
	assert.Len(t, author.ID, 36)
}

func TestEffectivePrice(t *testing.T) {
	sale := decimal.RequireFromString("7.50")
	v := models.BookVariant{Price: decimal.RequireFromString("9.99")}
	assert.Equal(t, "9.99", v.EffectivePrice().StringFixed(2))

	v.SalePrice = &sale
	assert.Equal(t, "7.50", v.EffectivePrice().StringFixed(2))
}
