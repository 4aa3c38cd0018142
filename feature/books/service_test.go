package books_test

import (
	"context"
	"errors"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/storage"
	"bookstore/core/storage/mocks"
	"bookstore/feature/bookstore/fixtures"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/books"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var admin = &session.Actor{ID: "admin-1", Name: "Admin", Role: session.RoleAdmin}

func newService(t *testing.T, db *gorm.DB, client storage.Client) *books.Service {
	t.Helper()
	cfg := storage.Config{Bucket: "bookstore", PublicBaseURL: "https://cdn.example.com"}
	return books.NewService(db, client, cfg, nil, pagination.Config{DefaultLimit: 2, MaxLimit: 10}, zap.NewNop())
}

func paperback(mode, id string, price float64, stock int) books.VariantInput {
	return books.VariantInput{VariantID: id, Mode: mode, Format: models.FormatPaperback, Price: price, Stock: stock}
}

func ref(mode, id string) books.RelationRef {
	return books.RelationRef{ID: id, Mode: mode}
}

func authorIDs(p *books.BookPreview) []string {
	ids := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestCreate(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	ctx := context.Background()

	author := fixtures.Author(t, db, "Octavia E. Butler")
	category := fixtures.Category(t, db, "Science Fiction", nil)
	tag := fixtures.Tag(t, db, "Classic")
	series := fixtures.Series(t, db, "Earthseed")
	sale := 12.5

	preview, err := svc.Create(ctx, admin, books.BookRequest{
		Title:      "Parable of the Sower",
		ISBN:       "9781538732182",
		Authors:    []books.RelationRef{ref("create", author.ID)},
		Categories: []books.RelationRef{ref("update", category.ID)},
		Tags:       []books.RelationRef{ref("create", tag.ID)},
		Series:     []books.SeriesRef{{ID: series.ID, Mode: "create", Order: 1}},
		Variants: []books.VariantInput{
			{Mode: "create", Format: models.FormatHardcover, Price: 19.99, SalePrice: &sale, Stock: 3},
		},
		Images: []books.ImageInput{{Mode: "create", ObjectKey: "books/sower/cover.jpg", Alt: "Cover"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "parable-of-the-sower", preview.Slug)
	assert.Equal(t, []string{author.ID}, authorIDs(preview))
	require.Len(t, preview.Categories, 1)
	assert.Equal(t, "Science Fiction", preview.Categories[0].Name)
	require.Len(t, preview.Series, 1)
	assert.Equal(t, 1, preview.Series[0].Order)
	require.Len(t, preview.Variants, 1)
	assert.Equal(t, 19.99, preview.Variants[0].Price)
	require.NotNil(t, preview.Variants[0].SalePrice)
	assert.Equal(t, 12.5, *preview.Variants[0].SalePrice)
	require.Len(t, preview.Images, 1)
	assert.Equal(t, "https://cdn.example.com/books/sower/cover.jpg", preview.Images[0].URL)

	var join models.BookAuthor
	require.NoError(t, db.Where("book_id = ?", preview.ID).First(&join).Error)
	assert.Equal(t, admin.ID, join.CreatedByID)
}

func TestCreate_Validation(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)

	_, err := svc.Create(context.Background(), admin, books.BookRequest{Title: "No Variants"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "variants")
	assert.Zero(t, fixtures.Count(t, db, &models.Book{}, ""))
}

func TestCreate_MissingRelatedEntity(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)

	_, err := svc.Create(context.Background(), admin, books.BookRequest{
		Title:    "Orphan",
		Authors:  []books.RelationRef{ref("create", "missing-author")},
		Variants: []books.VariantInput{paperback("create", "", 5, 1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "missing-author")
	assert.Zero(t, fixtures.Count(t, db, &models.Book{}, ""))
}

func TestCreate_SlugCollision(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	ctx := context.Background()
	req := books.BookRequest{Title: "Dune", Variants: []books.VariantInput{paperback("create", "", 9, 1)}}

	first, err := svc.Create(ctx, admin, req)
	require.NoError(t, err)
	second, err := svc.Create(ctx, admin, req)
	require.NoError(t, err)

	assert.Equal(t, "dune", first.Slug)
	assert.Equal(t, "dune-2", second.Slug)

	req.Slug = "dune"
	_, err = svc.Create(ctx, admin, req)
	assert.Equal(t, apperror.CodeUnprocessable, apperror.CodeOf(err))
}

// seeded creates a book linked to authors A and B, series S (order 1) and
// variants V1 and V2.
type seeded struct {
	book       *books.BookPreview
	a, b, c    *models.Author
	series     *models.Series
	v1, v2     string
	baseUpdate books.BookRequest
}

func seed(t *testing.T, svc *books.Service, db *gorm.DB) seeded {
	t.Helper()
	s := seeded{
		a:      fixtures.Author(t, db, "Author A"),
		b:      fixtures.Author(t, db, "Author B"),
		c:      fixtures.Author(t, db, "Author C"),
		series: fixtures.Series(t, db, "Series S"),
	}

	preview, err := svc.Create(context.Background(), admin, books.BookRequest{
		Title:   "Seeded",
		Authors: []books.RelationRef{ref("create", s.a.ID), ref("create", s.b.ID)},
		Series:  []books.SeriesRef{{ID: s.series.ID, Mode: "create", Order: 1}},
		Variants: []books.VariantInput{
			{Mode: "create", Format: models.FormatHardcover, Price: 20, Stock: 1},
			{Mode: "create", Format: models.FormatEbook, Price: 7, Stock: 100},
		},
	})
	require.NoError(t, err)
	require.Len(t, preview.Variants, 2)
	s.book = preview
	for _, v := range preview.Variants {
		if v.Format == models.FormatHardcover {
			s.v1 = v.ID
		} else {
			s.v2 = v.ID
		}
	}

	s.baseUpdate = books.BookRequest{
		Title:   "Seeded",
		Authors: []books.RelationRef{ref("update", s.a.ID), ref("update", s.b.ID)},
		Series:  []books.SeriesRef{{ID: s.series.ID, Mode: "update", Order: 1}},
		Variants: []books.VariantInput{
			{VariantID: s.v1, Mode: "update", Format: models.FormatHardcover, Price: 20, Stock: 1},
			{VariantID: s.v2, Mode: "update", Format: models.FormatEbook, Price: 7, Stock: 100},
		},
	}
	return s
}

func TestUpdate_SameSetIsIdempotent(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	var before []models.BookAuthor
	require.NoError(t, db.Where("book_id = ?", s.book.ID).Order("author_id").Find(&before).Error)

	for i := 0; i < 2; i++ {
		_, err := svc.Update(context.Background(), admin, s.book.ID, s.baseUpdate)
		require.NoError(t, err)
	}

	var after []models.BookAuthor
	require.NoError(t, db.Where("book_id = ?", s.book.ID).Order("author_id").Find(&after).Error)
	require.Len(t, after, 2)
	for i := range before {
		assert.Equal(t, before[i].AuthorID, after[i].AuthorID)
		assert.True(t, before[i].CreatedAt.Equal(after[i].CreatedAt), "join row must not be recreated")
	}
	assert.EqualValues(t, 2, fixtures.Count(t, db, &models.BookVariant{}, "book_id = ?", s.book.ID))
}

func TestUpdate_FullReplacement(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Authors = nil
	req.Series = []books.SeriesRef{}

	preview, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.NoError(t, err)
	assert.Empty(t, preview.Authors)
	assert.Empty(t, preview.Series)
	assert.Zero(t, fixtures.Count(t, db, &models.BookAuthor{}, "book_id = ?", s.book.ID))
}

func TestUpdate_CreateThenRetain(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Authors = []books.RelationRef{ref("update", s.a.ID), ref("create", s.c.ID)}

	preview, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{s.a.ID, s.c.ID}, authorIDs(preview))
}

func TestUpdate_SeriesOrder(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Series = []books.SeriesRef{{ID: s.series.ID, Mode: "update", Order: 3}}

	preview, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.NoError(t, err)
	require.Len(t, preview.Series, 1)
	assert.Equal(t, 3, preview.Series[0].Order)
	assert.EqualValues(t, 1, fixtures.Count(t, db, &models.BookSeries{}, "book_id = ?", s.book.ID))
}

func TestUpdate_VariantLifecycle(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Variants = []books.VariantInput{
		{VariantID: s.v1, Mode: "update", Format: models.FormatHardcover, Price: 9.99, Stock: 0},
		{Mode: "create", Format: models.FormatAudiobook, Price: 5.00, Stock: 10},
	}

	preview, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.NoError(t, err)
	require.Len(t, preview.Variants, 2)

	byID := map[string]books.VariantView{}
	for _, v := range preview.Variants {
		byID[v.ID] = v
	}
	require.Contains(t, byID, s.v1)
	assert.Equal(t, 9.99, byID[s.v1].Price)
	assert.Equal(t, 0, byID[s.v1].Stock)
	assert.False(t, byID[s.v1].InStock)
	assert.NotContains(t, byID, s.v2)
	assert.Zero(t, fixtures.Count(t, db, &models.BookVariant{}, "id = ?", s.v2))
}

func TestUpdate_ZeroVariantsRejected(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Variants = []books.VariantInput{}

	_, err := svc.Update(context.Background(), admin, s.book.ID, req)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
	assert.EqualValues(t, 2, fixtures.Count(t, db, &models.BookVariant{}, "book_id = ?", s.book.ID))
}

func TestUpdate_UnknownVariantRollsBack(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	req := s.baseUpdate
	req.Title = "Renamed"
	req.Authors = []books.RelationRef{ref("create", s.c.ID)}
	req.Variants = []books.VariantInput{paperback("update", "not-a-variant", 1, 1)}

	_, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	preview, err := svc.Get(context.Background(), s.book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seeded", preview.Title)
	assert.ElementsMatch(t, []string{s.a.ID, s.b.ID}, authorIDs(preview))
}

func TestUpdate_FailureDuringDeleteRollsBackEveryKind(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	s := seed(t, svc, db)

	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_variant_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "book_variants" {
			_ = tx.AddError(errors.New("disk I/O error"))
		}
	}))

	req := s.baseUpdate
	req.Authors = []books.RelationRef{ref("update", s.a.ID), ref("create", s.c.ID)}
	req.Series = []books.SeriesRef{{ID: s.series.ID, Mode: "update", Order: 7}}
	req.Variants = []books.VariantInput{
		{VariantID: s.v1, Mode: "update", Format: models.FormatHardcover, Price: 1, Stock: 1},
	}

	_, err := svc.Update(context.Background(), admin, s.book.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))

	require.NoError(t, db.Callback().Delete().Remove("test:fail_variant_delete"))

	preview, err := svc.Get(context.Background(), s.book.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{s.a.ID, s.b.ID}, authorIDs(preview))
	require.Len(t, preview.Series, 1)
	assert.Equal(t, 1, preview.Series[0].Order)
	require.Len(t, preview.Variants, 2)
	for _, v := range preview.Variants {
		assert.NotEqual(t, 1.0, v.Price)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)

	_, err := svc.Update(context.Background(), admin, "missing", books.BookRequest{
		Title:    "Ghost",
		Variants: []books.VariantInput{paperback("create", "", 1, 1)},
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdate_RemovedImagesLeaveStorage(t *testing.T) {
	db := fixtures.NewDB(t)
	client := new(mocks.Client)
	svc := newService(t, db, client)

	preview, err := svc.Create(context.Background(), admin, books.BookRequest{
		Title:    "Illustrated",
		Variants: []books.VariantInput{paperback("create", "", 10, 1)},
		Images: []books.ImageInput{
			{Mode: "create", ObjectKey: "books/illustrated/front.jpg", Position: 0},
			{Mode: "create", ObjectKey: "books/illustrated/back.jpg", Position: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, preview.Images, 2)

	var removed []string
	client.On("RemoveObjects", mock.Anything, "bookstore", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(nil)

	front := preview.Images[0]
	updated, err := svc.Update(context.Background(), admin, preview.ID, books.BookRequest{
		Title:    "Illustrated",
		Variants: []books.VariantInput{paperback("update", preview.Variants[0].ID, 10, 1)},
		Images:   []books.ImageInput{{ID: front.ID, Mode: "update", ObjectKey: front.ObjectKey, Alt: "Front cover"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "Front cover", updated.Images[0].Alt)
	assert.Equal(t, []string{"books/illustrated/back.jpg"}, removed)
	client.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	db := fixtures.NewDB(t)
	client := new(mocks.Client)
	svc := newService(t, db, client)
	s := seed(t, svc, db)

	user := fixtures.User(t, db, "Reader", models.RoleCustomer)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, VariantID: s.v1, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.Review{UserID: user.ID, BookID: s.book.ID, Rating: 5}).Error)

	require.NoError(t, svc.Delete(context.Background(), s.book.ID))

	assert.Zero(t, fixtures.Count(t, db, &models.Book{}, ""))
	assert.Zero(t, fixtures.Count(t, db, &models.BookVariant{}, ""))
	assert.Zero(t, fixtures.Count(t, db, &models.CartItem{}, ""))
	assert.Zero(t, fixtures.Count(t, db, &models.Review{}, ""))
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	err := svc.Delete(context.Background(), s.book.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGet_ReviewSummaryAndSlugLookup(t *testing.T) {
	db := fixtures.NewDB(t)
	svc := newService(t, db, nil)
	book := fixtures.Book(t, db, "The Dispossessed", fixtures.Variant("19.99", 2))

	u1 := fixtures.User(t, db, "Reader One", models.RoleCustomer)
	u2 := fixtures.User(t, db, "Reader Two", models.RoleCustomer)
	require.NoError(t, db.Create(&models.Review{BookID: book.ID, UserID: u1.ID, Rating: 5}).Error)
	require.NoError(t, db.Create(&models.Review{BookID: book.ID, UserID: u2.ID, Rating: 4}).Error)

	preview, err := svc.Get(context.Background(), "the-dispossessed")
	require.NoError(t, err)
	assert.Equal(t, book.ID, preview.ID)
	assert.EqualValues(t, 2, preview.Reviews.Count)
	assert.Equal(t, 4.5, preview.Reviews.Average)
	require.Len(t, preview.Variants, 1)
	assert.Equal(t, 19.99, preview.Variants[0].Price)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
