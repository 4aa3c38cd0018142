package books

import (
	"testing"
	"time"

	"bookstore/feature/bookstore/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_FlattensJoinRows(t *testing.T) {
	sale := decimal.RequireFromString("15.00")
	published := time.Date(1969, 3, 1, 0, 0, 0, 0, time.UTC)
	book := &models.Book{
		Model:       models.Model{ID: "b1"},
		Title:       "The Left Hand of Darkness",
		Slug:        "the-left-hand-of-darkness",
		PublishedAt: &published,
		Publisher:   &models.Organization{Model: models.Model{ID: "o1"}, Name: "Ace", Slug: "ace"},
		Authors: []models.BookAuthor{
			{AuthorID: "a2", Author: &models.Author{Model: models.Model{ID: "a2"}, Name: "Zed"}},
			{AuthorID: "a1", Author: &models.Author{Model: models.Model{ID: "a1"}, Name: "Ursula K. Le Guin"}},
		},
		Categories: []models.BookCategory{{CategoryID: "c1", Category: &models.Category{Model: models.Model{ID: "c1"}, Name: "SF", Code: "sf"}}},
		Tags:       []models.BookTag{{TagID: "t1", Tag: &models.Tag{Model: models.Model{ID: "t1"}, Name: "Hugo"}}},
		Series:     []models.BookSeries{{SeriesID: "s1", SeriesOrder: 4, Series: &models.Series{Model: models.Model{ID: "s1"}, Name: "Hainish Cycle"}}},
		Variants: []models.BookVariant{
			{Model: models.Model{ID: "v1"}, Format: models.FormatHardcover, Price: decimal.RequireFromString("19.99"), SalePrice: &sale, Stock: 0},
		},
		Images: []models.BookImage{{Model: models.Model{ID: "i1"}, ObjectKey: "books/b1/cover.jpg", Position: 0}},
	}

	p := NewAssembler("https://cdn.example.com/").Assemble(book, ReviewSummary{Count: 3, Average: 4.33})

	assert.Equal(t, []AuthorView{{ID: "a1", Name: "Ursula K. Le Guin"}, {ID: "a2", Name: "Zed"}}, p.Authors)
	assert.Equal(t, []CategoryView{{ID: "c1", Name: "SF", Code: "sf"}}, p.Categories)
	assert.Equal(t, []TagView{{ID: "t1", Name: "Hugo"}}, p.Tags)
	assert.Equal(t, []SeriesView{{ID: "s1", Name: "Hainish Cycle", Order: 4}}, p.Series)
	require.NotNil(t, p.Publisher)
	assert.Equal(t, "Ace", p.Publisher.Name)
	assert.Equal(t, "https://cdn.example.com/books/b1/cover.jpg", p.Images[0].URL)

	require.Len(t, p.Variants, 1)
	assert.Equal(t, 19.99, p.Variants[0].Price)
	require.NotNil(t, p.Variants[0].SalePrice)
	assert.Equal(t, 15.0, *p.Variants[0].SalePrice)
	assert.False(t, p.Variants[0].InStock)
	assert.EqualValues(t, 3, p.Reviews.Count)
}

func TestAssemble_EmptyListsAreNotNil(t *testing.T) {
	p := NewAssembler("").Assemble(&models.Book{Model: models.Model{ID: "b1"}}, ReviewSummary{})
	assert.NotNil(t, p.Authors)
	assert.NotNil(t, p.Categories)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Series)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Variants)
	assert.Nil(t, p.Publisher)
}

func TestSummarize(t *testing.T) {
	sale := decimal.RequireFromString("4.00")
	book := &models.Book{
		Model: models.Model{ID: "b1"},
		Title: "Cheap",
		Variants: []models.BookVariant{
			{Price: decimal.RequireFromString("10.00"), Stock: 0},
			{Price: decimal.RequireFromString("9.00"), SalePrice: &sale, Stock: 1},
		},
		Images: []models.BookImage{
			{ObjectKey: "books/b1/back.jpg", Position: 2},
			{ObjectKey: "books/b1/front.jpg", Position: 0},
		},
	}

	s := NewAssembler("https://cdn").Summarize(book)
	require.NotNil(t, s.MinPrice)
	assert.Equal(t, 4.0, *s.MinPrice)
	assert.True(t, s.InStock)
	require.NotNil(t, s.Cover)
	assert.Equal(t, "books/b1/front.jpg", s.Cover.ObjectKey)
}
