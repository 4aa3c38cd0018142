package books

import (
	"context"

	"bookstore/core/reconcile"
	"bookstore/core/utils"
	"bookstore/feature/bookstore/models"

	"gorm.io/gorm"
)

// SeriesExtra is the payload of a series item.
type SeriesExtra struct {
	Order int
}

// VariantExtra is the payload of a variant item.
type VariantExtra struct {
	Format      string
	Title       string
	Description string
	Price       float64
	SalePrice   *float64
	Stock       int
}

// ImageExtra is the payload of an image item.
type ImageExtra struct {
	ObjectKey string
	Alt       string
	Position  int
}

// joinAdapter persists a (book, related entity) join table.
type joinAdapter[T any] struct {
	kind   reconcile.Kind
	model  any
	column string
	newRow func(bookID, actingUserID string, item reconcile.Item[T]) any
}

func (a *joinAdapter[T]) Kind() reconcile.Kind { return a.kind }

func (a *joinAdapter[T]) Owned() bool { return false }

func (a *joinAdapter[T]) LoadStored(ctx context.Context, tx *gorm.DB, bookID string) ([]string, error) {
	var ids []string
	err := tx.WithContext(ctx).Model(a.model).Where("book_id = ?", bookID).Order(a.column).Pluck(a.column, &ids).Error
	return ids, err
}

func (a *joinAdapter[T]) Create(ctx context.Context, tx *gorm.DB, bookID, actingUserID string, item reconcile.Item[T]) error {
	return tx.WithContext(ctx).Create(a.newRow(bookID, actingUserID, item)).Error
}

func (a *joinAdapter[T]) Delete(ctx context.Context, tx *gorm.DB, bookID string, ids []string) error {
	return tx.WithContext(ctx).Where("book_id = ? AND "+a.column+" IN ?", bookID, ids).Delete(a.model).Error
}

func authorAdapter() reconcile.Adapter[reconcile.NoExtra] {
	return &joinAdapter[reconcile.NoExtra]{
		kind:   reconcile.KindAuthor,
		model:  &models.BookAuthor{},
		column: "author_id",
		newRow: func(bookID, actingUserID string, item reconcile.Item[reconcile.NoExtra]) any {
			return &models.BookAuthor{BookID: bookID, AuthorID: item.ID, CreatedByID: actingUserID}
		},
	}
}

func categoryAdapter() reconcile.Adapter[reconcile.NoExtra] {
	return &joinAdapter[reconcile.NoExtra]{
		kind:   reconcile.KindCategory,
		model:  &models.BookCategory{},
		column: "category_id",
		newRow: func(bookID, actingUserID string, item reconcile.Item[reconcile.NoExtra]) any {
			return &models.BookCategory{BookID: bookID, CategoryID: item.ID, CreatedByID: actingUserID}
		},
	}
}

func tagAdapter() reconcile.Adapter[reconcile.NoExtra] {
	return &joinAdapter[reconcile.NoExtra]{
		kind:   reconcile.KindTag,
		model:  &models.BookTag{},
		column: "tag_id",
		newRow: func(bookID, actingUserID string, item reconcile.Item[reconcile.NoExtra]) any {
			return &models.BookTag{BookID: bookID, TagID: item.ID, CreatedByID: actingUserID}
		},
	}
}

// seriesAdapter is the one join kind whose existing rows are mutable.
type seriesAdapter struct {
	*joinAdapter[SeriesExtra]
}

func newSeriesAdapter() *seriesAdapter {
	return &seriesAdapter{&joinAdapter[SeriesExtra]{
		kind:   reconcile.KindSeries,
		model:  &models.BookSeries{},
		column: "series_id",
		newRow: func(bookID, actingUserID string, item reconcile.Item[SeriesExtra]) any {
			return &models.BookSeries{BookID: bookID, SeriesID: item.ID, SeriesOrder: item.Extra.Order, CreatedByID: actingUserID}
		},
	}}
}

func (a *seriesAdapter) Update(ctx context.Context, tx *gorm.DB, bookID string, item reconcile.Item[SeriesExtra]) error {
	return tx.WithContext(ctx).
		Model(&models.BookSeries{}).
		Where("book_id = ? AND series_id = ?", bookID, item.ID).
		Update("series_order", item.Extra.Order).Error
}

// variantAdapter persists variants owned by the book.
type variantAdapter struct{}

func (variantAdapter) Kind() reconcile.Kind { return reconcile.KindVariant }

func (variantAdapter) Owned() bool { return true }

func (variantAdapter) LoadStored(ctx context.Context, tx *gorm.DB, bookID string) ([]string, error) {
	var ids []string
	err := tx.WithContext(ctx).Model(&models.BookVariant{}).Where("book_id = ?", bookID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (variantAdapter) Create(ctx context.Context, tx *gorm.DB, bookID, _ string, item reconcile.Item[VariantExtra]) error {
	v := models.BookVariant{
		BookID:      bookID,
		Format:      item.Extra.Format,
		Title:       item.Extra.Title,
		Description: item.Extra.Description,
		Price:       utils.FromFloat(item.Extra.Price),
		SalePrice:   utils.FromFloatPtr(item.Extra.SalePrice),
		Stock:       item.Extra.Stock,
	}
	return tx.WithContext(ctx).Create(&v).Error
}

func (variantAdapter) Update(ctx context.Context, tx *gorm.DB, bookID string, item reconcile.Item[VariantExtra]) error {
	// Select writes zero values (stock 0, cleared sale price) as well.
	return tx.WithContext(ctx).
		Model(&models.BookVariant{}).
		Where("id = ? AND book_id = ?", item.ID, bookID).
		Select("format", "title", "description", "price", "sale_price", "stock", "updated_at").
		Updates(&models.BookVariant{
			Format:      item.Extra.Format,
			Title:       item.Extra.Title,
			Description: item.Extra.Description,
			Price:       utils.FromFloat(item.Extra.Price),
			SalePrice:   utils.FromFloatPtr(item.Extra.SalePrice),
			Stock:       item.Extra.Stock,
		}).Error
}

func (variantAdapter) Delete(ctx context.Context, tx *gorm.DB, bookID string, ids []string) error {
	// Cart lines point at variants; order lines are snapshots and stay.
	if err := tx.WithContext(ctx).Where("variant_id IN ?", ids).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("book_id = ? AND id IN ?", bookID, ids).Delete(&models.BookVariant{}).Error
}

// imageAdapter persists image rows and remembers the object keys it removed,
// the objects are deleted from storage after commit.
type imageAdapter struct {
	removedKeys []string
}

func (a *imageAdapter) Kind() reconcile.Kind { return reconcile.KindImage }

func (a *imageAdapter) Owned() bool { return true }

func (a *imageAdapter) LoadStored(ctx context.Context, tx *gorm.DB, bookID string) ([]string, error) {
	var ids []string
	err := tx.WithContext(ctx).Model(&models.BookImage{}).Where("book_id = ?", bookID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (a *imageAdapter) Create(ctx context.Context, tx *gorm.DB, bookID, _ string, item reconcile.Item[ImageExtra]) error {
	img := models.BookImage{
		BookID:    bookID,
		ObjectKey: item.Extra.ObjectKey,
		Alt:       item.Extra.Alt,
		Position:  item.Extra.Position,
	}
	return tx.WithContext(ctx).Create(&img).Error
}

func (a *imageAdapter) Update(ctx context.Context, tx *gorm.DB, bookID string, item reconcile.Item[ImageExtra]) error {
	return tx.WithContext(ctx).
		Model(&models.BookImage{}).
		Where("id = ? AND book_id = ?", item.ID, bookID).
		Select("alt", "position", "updated_at").
		Updates(&models.BookImage{Alt: item.Extra.Alt, Position: item.Extra.Position}).Error
}

func (a *imageAdapter) Delete(ctx context.Context, tx *gorm.DB, bookID string, ids []string) error {
	var keys []string
	if err := tx.WithContext(ctx).Model(&models.BookImage{}).Where("book_id = ? AND id IN ?", bookID, ids).Pluck("object_key", &keys).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Where("book_id = ? AND id IN ?", bookID, ids).Delete(&models.BookImage{}).Error; err != nil {
		return err
	}
	a.removedKeys = append(a.removedKeys, keys...)
	return nil
}

// Item conversion from the request payload.

func refItems(refs []RelationRef) []reconcile.Item[reconcile.NoExtra] {
	items := make([]reconcile.Item[reconcile.NoExtra], 0, len(refs))
	for _, r := range refs {
		items = append(items, reconcile.Item[reconcile.NoExtra]{ID: r.ID, Name: r.Name, Mode: reconcile.Mode(r.Mode)})
	}
	return items
}

func seriesItems(refs []SeriesRef) []reconcile.Item[SeriesExtra] {
	items := make([]reconcile.Item[SeriesExtra], 0, len(refs))
	for _, r := range refs {
		items = append(items, reconcile.Item[SeriesExtra]{ID: r.ID, Name: r.Name, Mode: reconcile.Mode(r.Mode), Extra: SeriesExtra{Order: r.Order}})
	}
	return items
}

func variantItems(inputs []VariantInput) []reconcile.Item[VariantExtra] {
	items := make([]reconcile.Item[VariantExtra], 0, len(inputs))
	for _, v := range inputs {
		items = append(items, reconcile.Item[VariantExtra]{
			ID:   v.VariantID,
			Name: v.Title,
			Mode: reconcile.Mode(v.Mode),
			Extra: VariantExtra{
				Format:      v.Format,
				Title:       v.Title,
				Description: v.Description,
				Price:       v.Price,
				SalePrice:   v.SalePrice,
				Stock:       v.Stock,
			},
		})
	}
	return items
}

func imageItems(inputs []ImageInput) []reconcile.Item[ImageExtra] {
	items := make([]reconcile.Item[ImageExtra], 0, len(inputs))
	for _, img := range inputs {
		items = append(items, reconcile.Item[ImageExtra]{
			ID:    img.ID,
			Name:  img.ObjectKey,
			Mode:  reconcile.Mode(img.Mode),
			Extra: ImageExtra{ObjectKey: img.ObjectKey, Alt: img.Alt, Position: img.Position},
		})
	}
	return items
}
