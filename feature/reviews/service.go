package reviews

import (
	"context"
	"time"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewRequest is the payload of a new review.
type ReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Title  string `json:"title" validate:"max=255"`
	Body   string `json:"body" validate:"max=5000"`
}

// ListQuery pages through the reviews of a book.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

// View is a review with its author's display name.
type View struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Service handles book reviews.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	paging    pagination.Config
	logger    *zap.Logger
}

// NewService creates a new review service.
func NewService(db *gorm.DB, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), paging: paging, logger: logger}
}

// Create adds the actor's review of a book. A user reviews a book once.
func (s *Service) Create(ctx context.Context, actor *session.Actor, bookIDOrSlug string, req ReviewRequest) (*View, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var review models.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookID, err := resolveBook(tx, bookIDOrSlug)
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Review{}).Where("book_id = ? AND user_id = ?", bookID, actor.ID).Count(&existing).Error; err != nil {
			return apperror.FromDB(err, "review")
		}
		if existing > 0 {
			return apperror.Unprocessablef("you already reviewed this book")
		}

		review = models.Review{BookID: bookID, UserID: actor.ID, Rating: req.Rating, Title: req.Title, Body: req.Body}
		return apperror.FromDB(tx.Create(&review).Error, "review")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("book_id", review.BookID),
		zap.Int("rating", review.Rating),
	)
	view := toView(review)
	view.UserName = actor.Name
	return &view, nil
}

// ListForBook returns the reviews of a book, newest first.
func (s *Service) ListForBook(ctx context.Context, bookIDOrSlug string, q ListQuery) (pagination.Page[View], error) {
	params := pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
	if err := params.Normalize(s.paging); err != nil {
		return pagination.Page[View]{}, apperror.Validationf("%s", err.Error())
	}

	db := s.db.WithContext(ctx)
	bookID, err := resolveBook(db, bookIDOrSlug)
	if err != nil {
		return pagination.Page[View]{}, err
	}

	base := db.Model(&models.Review{}).Where("book_id = ?", bookID).Session(&gorm.Session{})
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[View]{}, apperror.FromDB(err, "review")
	}

	var rows []models.Review
	err = base.Preload("User").
		Order("created_at DESC, id").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return pagination.Page[View]{}, apperror.FromDB(err, "review")
	}

	views := make([]View, 0, len(rows))
	for _, r := range rows {
		views = append(views, toView(r))
	}
	return pagination.NewPage(views, params, total), nil
}

// Delete removes a review. Only its author or an admin may delete it.
func (s *Service) Delete(ctx context.Context, actor *session.Actor, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Where("id = ?", id).First(&review).Error; err != nil {
			return apperror.FromDB(err, "review")
		}
		if review.UserID != actor.ID && !actor.IsAdmin() {
			return apperror.Unauthorizedf("review belongs to another user")
		}
		return apperror.FromDB(tx.Delete(&review).Error, "review")
	})
	if err != nil {
		return err
	}
	s.logger.Info("Review deleted", zap.String("review_id", id), zap.String("actor_id", actor.ID))
	return nil
}

func resolveBook(db *gorm.DB, idOrSlug string) (string, error) {
	var book models.Book
	if err := db.Select("id").Where("id = ? OR slug = ?", idOrSlug, idOrSlug).First(&book).Error; err != nil {
		return "", apperror.FromDB(err, "book")
	}
	return book.ID, nil
}

func toView(r models.Review) View {
	view := View{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Title:     r.Title,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		view.UserName = r.User.Name
	}
	return view
}
