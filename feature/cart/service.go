package cart

import (
	"context"
	"errors"
	"fmt"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/utils"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddRequest puts a variant in the cart.
type AddRequest struct {
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

// QuantityRequest sets the quantity of a cart line.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=99"`
}

// Line is a cart item with its variant priced at the current effective price.
type Line struct {
	ID        string  `json:"id"`
	VariantID string  `json:"variant_id"`
	BookID    string  `json:"book_id"`
	Title     string  `json:"title"`
	Format    string  `json:"format"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
	Stock     int     `json:"stock"`
}

// View is the cart of a user.
type View struct {
	Items []Line  `json:"items"`
	Total float64 `json:"total"`
}

// Service handles cart operations.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	logger    *zap.Logger
}

// NewService creates a new cart service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), logger: logger}
}

// List returns the cart of the actor, oldest line first.
func (s *Service) List(ctx context.Context, actor *session.Actor) (*View, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Variant").
		Where("user_id = ?", actor.ID).
		Order("created_at, id").
		Find(&items).Error
	if err != nil {
		return nil, apperror.FromDB(err, "cart item")
	}

	titles, err := bookTitles(ctx, s.db, items)
	if err != nil {
		return nil, err
	}

	view := &View{Items: make([]Line, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		if item.Variant == nil {
			continue
		}
		unit := item.Variant.EffectivePrice()
		lineTotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		view.Items = append(view.Items, Line{
			ID:        item.ID,
			VariantID: item.VariantID,
			BookID:    item.Variant.BookID,
			Title:     titles[item.Variant.BookID],
			Format:    item.Variant.Format,
			Quantity:  item.Quantity,
			UnitPrice: utils.ToFloat(unit),
			LineTotal: utils.ToFloat(lineTotal),
			Stock:     item.Variant.Stock,
		})
	}
	view.Total = utils.ToFloat(total)
	return view, nil
}

// Add puts a variant in the cart. Adding a variant already in the cart
// increases the quantity of the existing line.
func (s *Service) Add(ctx context.Context, actor *session.Actor, req AddRequest) (*models.CartItem, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var variant models.BookVariant
		if err := tx.Where("id = ?", req.VariantID).First(&variant).Error; err != nil {
			return apperror.FromDB(err, "variant")
		}

		err := tx.Where("user_id = ? AND variant_id = ?", actor.ID, req.VariantID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += req.Quantity
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserID: actor.ID, VariantID: req.VariantID, Quantity: req.Quantity}
		default:
			return apperror.FromDB(err, "cart item")
		}

		if err := checkStock(variant, item.Quantity); err != nil {
			return err
		}
		return apperror.FromDB(tx.Save(&item).Error, "cart item")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Cart item added",
		zap.String("user_id", actor.ID),
		zap.String("variant_id", req.VariantID),
		zap.Int("quantity", item.Quantity),
	)
	return &item, nil
}

// UpdateQuantity sets the quantity of one of the actor's cart lines.
func (s *Service) UpdateQuantity(ctx context.Context, actor *session.Actor, itemID string, req QuantityRequest) (*models.CartItem, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := owned(tx, actor, itemID, &item); err != nil {
			return err
		}
		var variant models.BookVariant
		if err := tx.Where("id = ?", item.VariantID).First(&variant).Error; err != nil {
			return apperror.FromDB(err, "variant")
		}
		if err := checkStock(variant, req.Quantity); err != nil {
			return err
		}
		item.Quantity = req.Quantity
		return apperror.FromDB(tx.Save(&item).Error, "cart item")
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes one of the actor's cart lines.
func (s *Service) Remove(ctx context.Context, actor *session.Actor, itemID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := owned(tx, actor, itemID, &item); err != nil {
			return err
		}
		return apperror.FromDB(tx.Delete(&item).Error, "cart item")
	})
	if err != nil {
		return err
	}
	s.logger.Info("Cart item removed", zap.String("user_id", actor.ID), zap.String("cart_item_id", itemID))
	return nil
}

// Clear empties the cart of the actor.
func (s *Service) Clear(ctx context.Context, actor *session.Actor) error {
	err := s.db.WithContext(ctx).Where("user_id = ?", actor.ID).Delete(&models.CartItem{}).Error
	return apperror.FromDB(err, "cart item")
}

func owned(tx *gorm.DB, actor *session.Actor, itemID string, item *models.CartItem) error {
	if err := tx.Where("id = ?", itemID).First(item).Error; err != nil {
		return apperror.FromDB(err, "cart item")
	}
	if item.UserID != actor.ID {
		return apperror.Unauthorizedf("cart item belongs to another user")
	}
	return nil
}

func checkStock(variant models.BookVariant, quantity int) error {
	if quantity > variant.Stock {
		return apperror.ValidationWithDetails(
			"not enough stock",
			map[string]string{"quantity": fmt.Sprintf("only %d in stock", variant.Stock)},
		)
	}
	return nil
}

func bookTitles(ctx context.Context, db *gorm.DB, items []models.CartItem) (map[string]string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Variant != nil {
			ids = append(ids, item.Variant.BookID)
		}
	}
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	var rows []models.Book
	if err := db.WithContext(ctx).Select("id", "title").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "book")
	}
	for _, b := range rows {
		titles[b.ID] = b.Title
	}
	return titles, nil
}
