package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant formats.
const (
	FormatHardcover = "hardcover"
	FormatPaperback = "paperback"
	FormatEbook     = "ebook"
	FormatAudiobook = "audiobook"
)

type Book struct {
	Model
	Title       string     `gorm:"type:varchar(255);not null;index"`
	Slug        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	ISBN        string     `gorm:"column:isbn;type:varchar(20);index"`
	Description string     `gorm:"type:text"`
	Language    string     `gorm:"type:varchar(8)"`
	PublisherID *string    `gorm:"type:varchar(36);index"`
	PublishedAt *time.Time
	CreatedByID string `gorm:"type:varchar(36)"`

	Publisher  *Organization  `gorm:"foreignKey:PublisherID"`
	Authors    []BookAuthor   `gorm:"foreignKey:BookID"`
	Categories []BookCategory `gorm:"foreignKey:BookID"`
	Tags       []BookTag      `gorm:"foreignKey:BookID"`
	Series     []BookSeries   `gorm:"foreignKey:BookID"`
	Variants   []BookVariant  `gorm:"foreignKey:BookID"`
	Images     []BookImage    `gorm:"foreignKey:BookID"`
}

type BookAuthor struct {
	BookID      string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID    string `gorm:"primaryKey;type:varchar(36)"`
	CreatedByID string `gorm:"type:varchar(36)"`
	CreatedAt   time.Time

	Author *Author `gorm:"foreignKey:AuthorID"`
}

type BookCategory struct {
	BookID      string `gorm:"primaryKey;type:varchar(36)"`
	CategoryID  string `gorm:"primaryKey;type:varchar(36)"`
	CreatedByID string `gorm:"type:varchar(36)"`
	CreatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (BookCategory) TableName() string {
	return "book_categories"
}

type BookTag struct {
	BookID      string `gorm:"primaryKey;type:varchar(36)"`
	TagID       string `gorm:"primaryKey;type:varchar(36)"`
	CreatedByID string `gorm:"type:varchar(36)"`
	CreatedAt   time.Time

	Tag *Tag `gorm:"foreignKey:TagID"`
}

type BookSeries struct {
	BookID      string `gorm:"primaryKey;type:varchar(36)"`
	SeriesID    string `gorm:"primaryKey;type:varchar(36)"`
	SeriesOrder int    `gorm:"not null;default:0"`
	CreatedByID string `gorm:"type:varchar(36)"`
	CreatedAt   time.Time

	Series *Series `gorm:"foreignKey:SeriesID"`
}

func (BookSeries) TableName() string {
	return "book_series"
}

type BookVariant struct {
	Model
	BookID      string           `gorm:"type:varchar(36);not null;index"`
	Format      string           `gorm:"type:varchar(16);not null"`
	Title       string           `gorm:"type:varchar(255)"`
	Description string           `gorm:"type:text"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	SalePrice   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock       int              `gorm:"not null;default:0"`
}

// EffectivePrice is the sale price when set, the list price otherwise.
func (v BookVariant) EffectivePrice() decimal.Decimal {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}

type BookImage struct {
	Model
	BookID    string `gorm:"type:varchar(36);not null;index"`
	ObjectKey string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Alt       string `gorm:"type:varchar(255)"`
	Position  int    `gorm:"not null;default:0"`
}
