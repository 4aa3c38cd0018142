package wishlist

import (
	"context"
	"errors"
	"time"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddRequest puts a book on the wishlist.
type AddRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

// Entry is a wishlist item with the book it points at.
type Entry struct {
	ID      string    `json:"id"`
	BookID  string    `json:"book_id"`
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	AddedAt time.Time `json:"added_at"`
}

// Service handles wishlist operations.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	logger    *zap.Logger
}

// NewService creates a new wishlist service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), logger: logger}
}

// List returns the wishlist of the actor, most recent first.
func (s *Service) List(ctx context.Context, actor *session.Actor) ([]Entry, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", actor.ID).
		Order("created_at DESC, id").
		Find(&items).Error
	if err != nil {
		return nil, apperror.FromDB(err, "wishlist item")
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entry := Entry{ID: item.ID, BookID: item.BookID, AddedAt: item.CreatedAt}
		if item.Book != nil {
			entry.Title = item.Book.Title
			entry.Slug = item.Book.Slug
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Add puts a book on the wishlist. Adding a book twice returns the existing item.
func (s *Service) Add(ctx context.Context, actor *session.Actor, req AddRequest) (*Entry, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var (
		item    models.WishlistItem
		book    models.Book
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "title", "slug").Where("id = ?", req.BookID).First(&book).Error; err != nil {
			return apperror.FromDB(err, "book")
		}

		err := tx.Where("user_id = ? AND book_id = ?", actor.ID, req.BookID).First(&item).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.FromDB(err, "wishlist item")
		}

		item = models.WishlistItem{UserID: actor.ID, BookID: req.BookID}
		created = true
		return apperror.FromDB(tx.Create(&item).Error, "wishlist item")
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Wishlist item added", zap.String("user_id", actor.ID), zap.String("book_id", req.BookID))
	}
	return &Entry{ID: item.ID, BookID: book.ID, Title: book.Title, Slug: book.Slug, AddedAt: item.CreatedAt}, nil
}

// Remove deletes one of the actor's wishlist items.
func (s *Service) Remove(ctx context.Context, actor *session.Actor, itemID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.WishlistItem
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			return apperror.FromDB(err, "wishlist item")
		}
		if item.UserID != actor.ID {
			return apperror.Unauthorizedf("wishlist item belongs to another user")
		}
		return apperror.FromDB(tx.Delete(&item).Error, "wishlist item")
	})
	if err != nil {
		return err
	}
	s.logger.Info("Wishlist item removed", zap.String("user_id", actor.ID), zap.String("wishlist_item_id", itemID))
	return nil
}
