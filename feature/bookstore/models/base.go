package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the base of every entity with its own id.
type Model struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a uuid when the id is empty.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&User{},
		&Author{},
		&Category{},
		&Tag{},
		&Series{},
		&Organization{},
		&Contact{},
		&Book{},
		&BookAuthor{},
		&BookCategory{},
		&BookTag{},
		&BookSeries{},
		&BookVariant{},
		&BookImage{},
		&Review{},
		&CartItem{},
		&WishlistItem{},
		&Order{},
		&OrderItem{},
	}
}
