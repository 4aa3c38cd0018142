package books

import (
	"context"
	"errors"
	"math"
	"sort"

	"bookstore/core/storage"
	"bookstore/core/utils"
	"bookstore/feature/bookstore/models"

	"gorm.io/gorm"
)

// Assembler reads a book graph and flattens it into a BookPreview.
type Assembler struct {
	imageBaseURL string
}

// NewAssembler creates an assembler; image URLs are built from imageBaseURL.
func NewAssembler(imageBaseURL string) *Assembler {
	return &Assembler{imageBaseURL: imageBaseURL}
}

// Preview loads the book by id or slug. It returns nil without error when the
// book does not exist.
func (a *Assembler) Preview(ctx context.Context, db *gorm.DB, idOrSlug string) (*BookPreview, error) {
	var book models.Book
	err := preloadGraph(db.WithContext(ctx)).
		Where("id = ? OR slug = ?", idOrSlug, idOrSlug).
		First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	summary, err := reviewSummary(ctx, db, book.ID)
	if err != nil {
		return nil, err
	}

	return a.Assemble(&book, summary), nil
}

func preloadGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Publisher").
		Preload("Authors.Author").
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Preload("Series.Series").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		})
}

func reviewSummary(ctx context.Context, db *gorm.DB, bookID string) (ReviewSummary, error) {
	var row struct {
		Count   int64
		Average float64
	}
	err := db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return ReviewSummary{}, err
	}
	return ReviewSummary{Count: row.Count, Average: math.Round(row.Average*100) / 100}, nil
}

// Assemble flattens a preloaded book. Join wrappers become flat lists and
// decimal prices become float64.
func (a *Assembler) Assemble(book *models.Book, reviews ReviewSummary) *BookPreview {
	p := &BookPreview{
		ID:          book.ID,
		Title:       book.Title,
		Slug:        book.Slug,
		ISBN:        book.ISBN,
		Description: book.Description,
		Language:    book.Language,
		PublishedAt: book.PublishedAt,
		Authors:     authorViews(book.Authors),
		Categories:  make([]CategoryView, 0, len(book.Categories)),
		Tags:        make([]TagView, 0, len(book.Tags)),
		Series:      make([]SeriesView, 0, len(book.Series)),
		Images:      make([]ImageView, 0, len(book.Images)),
		Variants:    make([]VariantView, 0, len(book.Variants)),
		Reviews:     reviews,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}

	if book.Publisher != nil {
		p.Publisher = &PublisherView{ID: book.Publisher.ID, Name: book.Publisher.Name, Slug: book.Publisher.Slug}
	}

	for _, bc := range book.Categories {
		if bc.Category == nil {
			continue
		}
		p.Categories = append(p.Categories, CategoryView{ID: bc.Category.ID, Name: bc.Category.Name, Code: bc.Category.Code, Slug: bc.Category.Slug})
	}
	sort.Slice(p.Categories, func(i, j int) bool { return p.Categories[i].Name < p.Categories[j].Name })

	for _, bt := range book.Tags {
		if bt.Tag == nil {
			continue
		}
		p.Tags = append(p.Tags, TagView{ID: bt.Tag.ID, Name: bt.Tag.Name, Slug: bt.Tag.Slug})
	}
	sort.Slice(p.Tags, func(i, j int) bool { return p.Tags[i].Name < p.Tags[j].Name })

	for _, bs := range book.Series {
		if bs.Series == nil {
			continue
		}
		p.Series = append(p.Series, SeriesView{ID: bs.Series.ID, Name: bs.Series.Name, Slug: bs.Series.Slug, Order: bs.SeriesOrder})
	}
	sort.Slice(p.Series, func(i, j int) bool { return p.Series[i].Name < p.Series[j].Name })

	for _, img := range book.Images {
		p.Images = append(p.Images, a.imageView(img))
	}

	for _, v := range book.Variants {
		p.Variants = append(p.Variants, variantView(v))
	}

	return p
}

// Summarize builds a list entry from a book with authors, variants and images preloaded.
func (a *Assembler) Summarize(book *models.Book) BookSummary {
	s := BookSummary{
		ID:      book.ID,
		Title:   book.Title,
		Slug:    book.Slug,
		Authors: authorViews(book.Authors),
	}

	if len(book.Images) > 0 {
		cover := book.Images[0]
		for _, img := range book.Images[1:] {
			if img.Position < cover.Position {
				cover = img
			}
		}
		view := a.imageView(cover)
		s.Cover = &view
	}

	for _, v := range book.Variants {
		price := utils.ToFloat(v.EffectivePrice())
		if s.MinPrice == nil || price < *s.MinPrice {
			s.MinPrice = &price
		}
		if v.Stock > 0 {
			s.InStock = true
		}
	}

	return s
}

func (a *Assembler) imageView(img models.BookImage) ImageView {
	return ImageView{
		ID:        img.ID,
		URL:       storage.ObjectURL(a.imageBaseURL, img.ObjectKey),
		ObjectKey: img.ObjectKey,
		Alt:       img.Alt,
		Position:  img.Position,
	}
}

func authorViews(rows []models.BookAuthor) []AuthorView {
	views := make([]AuthorView, 0, len(rows))
	for _, ba := range rows {
		if ba.Author == nil {
			continue
		}
		views = append(views, AuthorView{ID: ba.Author.ID, Name: ba.Author.Name, Slug: ba.Author.Slug})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

func variantView(v models.BookVariant) VariantView {
	return VariantView{
		ID:          v.ID,
		Format:      v.Format,
		Title:       v.Title,
		Description: v.Description,
		Price:       utils.ToFloat(v.Price),
		SalePrice:   utils.ToFloatPtr(v.SalePrice),
		Stock:       v.Stock,
		InStock:     v.Stock > 0,
	}
}
