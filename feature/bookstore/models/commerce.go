package models

import (
	"github.com/shopspring/decimal"
)

type Review struct {
	Model
	BookID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_book_user" json:"book_id"`
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_book_user" json:"user_id"`
	Rating int    `gorm:"not null" json:"rating"`
	Title  string `gorm:"type:varchar(255)" json:"title,omitempty"`
	Body   string `gorm:"type:text" json:"body,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type CartItem struct {
	Model
	UserID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_items_user_variant" json:"user_id"`
	VariantID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_items_user_variant" json:"variant_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	Variant *BookVariant `gorm:"foreignKey:VariantID" json:"-"`
}

type WishlistItem struct {
	Model
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_wishlist_items_user_book" json:"user_id"`
	BookID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_wishlist_items_user_book" json:"book_id"`

	Book *Book `gorm:"foreignKey:BookID" json:"-"`
}

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderCancelled = "cancelled"
)

type Order struct {
	Model
	UserID    string          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Reference string          `gorm:"type:varchar(32);not null;uniqueIndex" json:"reference"`
	Status    string          `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem is a snapshot of a cart line at checkout. It keeps the variant and
// book ids without foreign keys so history survives catalog edits.
type OrderItem struct {
	Model
	OrderID   string          `gorm:"type:varchar(36);not null;index" json:"order_id"`
	VariantID string          `gorm:"type:varchar(36);not null" json:"variant_id"`
	BookID    string          `gorm:"type:varchar(36);not null" json:"book_id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Format    string          `gorm:"type:varchar(16);not null" json:"format"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}
