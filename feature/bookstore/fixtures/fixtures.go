// Package fixtures builds in-memory databases and catalog rows for tests.
package fixtures

import (
	"testing"

	"bookstore/core/database"
	"bookstore/core/utils"
	"bookstore/feature/bookstore/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns an in-memory SQLite database with the full schema migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// User inserts a user with the given role.
func User(t testing.TB, db *gorm.DB, name, role string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: utils.Slugify(name) + "@example.com", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Author inserts an author.
func Author(t testing.TB, db *gorm.DB, name string) *models.Author {
	t.Helper()
	a := &models.Author{Name: name, Slug: utils.Slugify(name)}
	require.NoError(t, db.Create(a).Error)
	return a
}

// Category inserts a category under parent (nil for a root).
func Category(t testing.TB, db *gorm.DB, name string, parent *models.Category) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Code: utils.Slugify(name), Slug: utils.Slugify(name)}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Tag inserts a tag.
func Tag(t testing.TB, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: utils.Slugify(name)}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// Series inserts a series.
func Series(t testing.TB, db *gorm.DB, name string) *models.Series {
	t.Helper()
	s := &models.Series{Name: name, Slug: utils.Slugify(name)}
	require.NoError(t, db.Create(s).Error)
	return s
}

// Organization inserts a publisher.
func Organization(t testing.TB, db *gorm.DB, name string) *models.Organization {
	t.Helper()
	o := &models.Organization{Name: name, Slug: utils.Slugify(name), Kind: models.OrganizationPublisher}
	require.NoError(t, db.Create(o).Error)
	return o
}

// Variant returns an unsaved paperback variant.
func Variant(price string, stock int) models.BookVariant {
	return models.BookVariant{
		Format: models.FormatPaperback,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
	}
}

// Book inserts a book with the given variants.
func Book(t testing.TB, db *gorm.DB, title string, variants ...models.BookVariant) *models.Book {
	t.Helper()
	b := &models.Book{Title: title, Slug: utils.Slugify(title)}
	require.NoError(t, db.Create(b).Error)
	for i := range variants {
		variants[i].BookID = b.ID
		require.NoError(t, db.Create(&variants[i]).Error)
	}
	b.Variants = variants
	return b
}

// Count returns the number of rows of model matching the optional condition.
func Count(t testing.TB, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
