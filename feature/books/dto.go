package books

import (
	"time"

	"bookstore/core/pagination"
)

// RelationRef references a related entity (author, category, tag).
type RelationRef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Mode string `json:"mode" validate:"required,oneof=create update"`
}

// SeriesRef references a series with the position of the book in it.
type SeriesRef struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Mode  string `json:"mode" validate:"required,oneof=create update"`
	Order int    `json:"order" validate:"gte=0"`
}

// VariantInput is a submitted variant. VariantID is empty for new variants.
type VariantInput struct {
	VariantID   string   `json:"variant_id,omitempty"`
	Mode        string   `json:"mode" validate:"required,oneof=create update"`
	Format      string   `json:"format" validate:"required,oneof=hardcover paperback ebook audiobook"`
	Title       string   `json:"title" validate:"max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	SalePrice   *float64 `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
}

// ImageInput is a submitted image. The object is uploaded beforehand; only its key is stored.
type ImageInput struct {
	ID        string `json:"id,omitempty"`
	Mode      string `json:"mode" validate:"required,oneof=create update"`
	ObjectKey string `json:"object_key" validate:"required,max=255"`
	Alt       string `json:"alt" validate:"max=255"`
	Position  int    `json:"position" validate:"gte=0"`
}

// BookRequest is the payload of POST /admin/books and PUT /admin/books/:id.
// On update every relation list is the complete desired set; omitted entries are
// removed. Slug is derived from the title when empty.
type BookRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        string     `json:"slug,omitempty" validate:"omitempty,max=255"`
	ISBN        string     `json:"isbn" validate:"max=20"`
	Description string     `json:"description"`
	Language    string     `json:"language" validate:"max=8"`
	PublisherID *string    `json:"publisher_id,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	Authors    []RelationRef  `json:"authors" validate:"dive"`
	Categories []RelationRef  `json:"categories" validate:"dive"`
	Tags       []RelationRef  `json:"tags" validate:"dive"`
	Series     []SeriesRef    `json:"series" validate:"dive"`
	Variants   []VariantInput `json:"variants" validate:"min=1,dive"`
	Images     []ImageInput   `json:"images" validate:"dive"`
}

// Sort orders of the book list.
const (
	SortNewest    = "newest"
	SortTitle     = "title"
	SortPrice     = "price"
	SortPriceDesc = "price_desc"
)

// ListQuery filters and pages the book list.
type ListQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Cursor   string `query:"cursor"`
	Category string `query:"category"`
	AuthorID string `query:"author"`
	Tag      string `query:"tag"`
	SeriesID string `query:"series"`
	Search   string `query:"q"`
	InStock  bool   `query:"in_stock"`
	Sort     string `query:"sort" json:"sort" validate:"omitempty,oneof=newest title price price_desc"`
}

// Params returns the pagination part of the query.
func (q ListQuery) Params() pagination.Params {
	return pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
}

// AuthorView is a flattened author of a book.
type AuthorView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryView is a flattened category of a book.
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Slug string `json:"slug"`
}

// TagView is a flattened tag of a book.
type TagView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SeriesView is a flattened series with the position of the book.
type SeriesView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

// ImageView is a book image with its public URL.
type ImageView struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Alt       string `json:"alt,omitempty"`
	Position  int    `json:"position"`
}

// VariantView is a variant with prices as plain numbers.
type VariantView struct {
	ID          string   `json:"id"`
	Format      string   `json:"format"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"sale_price"`
	Stock       int      `json:"stock"`
	InStock     bool     `json:"in_stock"`
}

// PublisherView is the publishing organization of a book.
type PublisherView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ReviewSummary aggregates the reviews of a book.
type ReviewSummary struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// BookPreview is the denormalized detail view of a book.
type BookPreview struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	ISBN        string         `json:"isbn,omitempty"`
	Description string         `json:"description,omitempty"`
	Language    string         `json:"language,omitempty"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	Publisher   *PublisherView `json:"publisher,omitempty"`
	Authors     []AuthorView   `json:"authors"`
	Categories  []CategoryView `json:"categories"`
	Tags        []TagView      `json:"tags"`
	Series      []SeriesView   `json:"series"`
	Images      []ImageView    `json:"images"`
	Variants    []VariantView  `json:"variants"`
	Reviews     ReviewSummary  `json:"reviews"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BookSummary is a list entry.
type BookSummary struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Authors  []AuthorView `json:"authors"`
	Cover    *ImageView   `json:"cover,omitempty"`
	MinPrice *float64     `json:"min_price"`
	InStock  bool         `json:"in_stock"`
}
