package orders

import (
	"context"
	"fmt"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	referencePrefix   = "ORD-"
	referenceAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	referenceLength   = 10
)

// Service handles checkout and order history.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	paging    pagination.Config
	logger    *zap.Logger
}

// NewService creates a new order service.
func NewService(db *gorm.DB, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), paging: paging, logger: logger}
}

// Checkout turns the actor's cart into a pending order. Unit prices are
// snapshotted, stock is decremented and the cart is emptied in one transaction.
func (s *Service) Checkout(ctx context.Context, actor *session.Actor) (*View, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart []models.CartItem
		if err := tx.Preload("Variant").Where("user_id = ?", actor.ID).Order("created_at, id").Find(&cart).Error; err != nil {
			return apperror.FromDB(err, "cart item")
		}
		if len(cart) == 0 {
			return apperror.Validationf("cart is empty")
		}

		titles, err := bookTitles(tx, cart)
		if err != nil {
			return err
		}

		reference, err := newReference()
		if err != nil {
			return apperror.Internal(err, "failed to generate order reference")
		}
		order = models.Order{UserID: actor.ID, Reference: reference, Status: models.OrderPending, Total: decimal.Zero}

		shortages := map[string]string{}
		for _, line := range cart {
			if line.Variant == nil {
				shortages[line.VariantID] = "no longer available"
				continue
			}
			res := tx.Model(&models.BookVariant{}).
				Where("id = ? AND stock >= ?", line.VariantID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return apperror.FromDB(res.Error, "variant")
			}
			if res.RowsAffected == 0 {
				shortages[line.VariantID] = fmt.Sprintf("only %d in stock", line.Variant.Stock)
				continue
			}

			unit := line.Variant.EffectivePrice()
			order.Total = order.Total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
			order.Items = append(order.Items, models.OrderItem{
				VariantID: line.VariantID,
				BookID:    line.Variant.BookID,
				Title:     titles[line.Variant.BookID],
				Format:    line.Variant.Format,
				Quantity:  line.Quantity,
				UnitPrice: unit,
			})
		}
		if len(shortages) > 0 {
			return apperror.ValidationWithDetails("not enough stock", shortages)
		}

		if err := tx.Create(&order).Error; err != nil {
			return apperror.FromDB(err, "order")
		}
		return apperror.FromDB(tx.Where("user_id = ?", actor.ID).Delete(&models.CartItem{}).Error, "cart item")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("reference", order.Reference),
		zap.String("user_id", actor.ID),
		zap.String("total", order.Total.StringFixed(2)),
	)
	view := toView(order)
	return &view, nil
}

// History returns the actor's orders, newest first.
func (s *Service) History(ctx context.Context, actor *session.Actor, q ListQuery) (pagination.Page[View], error) {
	return s.page(ctx, s.db.WithContext(ctx).Where("user_id = ?", actor.ID), q)
}

// List returns all orders, optionally filtered by status.
func (s *Service) List(ctx context.Context, q ListQuery) (pagination.Page[View], error) {
	query := s.db.WithContext(ctx)
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	return s.page(ctx, query, q)
}

// Get returns an order. Customers may only read their own orders.
func (s *Service) Get(ctx context.Context, actor *session.Actor, id string) (*View, error) {
	var order models.Order
	if err := findOrder(s.db.WithContext(ctx), id, &order); err != nil {
		return nil, err
	}
	if order.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apperror.Unauthorizedf("order belongs to another user")
	}
	view := toView(order)
	return &view, nil
}

// UpdateStatus moves an order along pending, paid and shipped. Cancelling
// returns the ordered quantities to the variants that still exist.
func (s *Service) UpdateStatus(ctx context.Context, id string, req StatusRequest) (*View, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findOrder(tx, id, &order); err != nil {
			return err
		}
		if !CanTransition(order.Status, req.Status) {
			return apperror.Validationf("cannot move order from %s to %s", order.Status, req.Status).
				WithDetails(map[string]string{"status": "invalid transition"})
		}

		if req.Status == models.OrderCancelled {
			for _, item := range order.Items {
				err := tx.Model(&models.BookVariant{}).
					Where("id = ?", item.VariantID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error
				if err != nil {
					return apperror.FromDB(err, "variant")
				}
			}
		}

		order.Status = req.Status
		return apperror.FromDB(tx.Model(&order).Update("status", req.Status).Error, "order")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order status changed", zap.String("order_id", order.ID), zap.String("status", req.Status))
	view := toView(order)
	return &view, nil
}

// findOrder loads an order with its items by id or reference.
func findOrder(db *gorm.DB, idOrReference string, order *models.Order) error {
	err := db.Preload("Items").Where("id = ? OR reference = ?", idOrReference, idOrReference).First(order).Error
	return apperror.FromDB(err, "order")
}

func (s *Service) page(ctx context.Context, query *gorm.DB, q ListQuery) (pagination.Page[View], error) {
	params := pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
	if err := params.Normalize(s.paging); err != nil {
		return pagination.Page[View]{}, apperror.Validationf("%s", err.Error())
	}

	base := query.Model(&models.Order{}).Session(&gorm.Session{})
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[View]{}, apperror.FromDB(err, "order")
	}

	var orders []models.Order
	err := base.Preload("Items").
		Order("created_at DESC, id").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&orders).Error
	if err != nil {
		return pagination.Page[View]{}, apperror.FromDB(err, "order")
	}

	views := make([]View, 0, len(orders))
	for _, o := range orders {
		views = append(views, toView(o))
	}
	return pagination.NewPage(views, params, total), nil
}

func bookTitles(tx *gorm.DB, cart []models.CartItem) (map[string]string, error) {
	ids := make([]string, 0, len(cart))
	for _, line := range cart {
		if line.Variant != nil {
			ids = append(ids, line.Variant.BookID)
		}
	}
	titles := map[string]string{}
	if len(ids) == 0 {
		return titles, nil
	}
	var books []models.Book
	if err := tx.Select("id", "title").Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, apperror.FromDB(err, "book")
	}
	for _, b := range books {
		titles[b.ID] = b.Title
	}
	return titles, nil
}

func newReference() (string, error) {
	id, err := gonanoid.Generate(referenceAlphabet, referenceLength)
	if err != nil {
		return "", err
	}
	return referencePrefix + id, nil
}
