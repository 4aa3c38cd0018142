package orders

import (
	"time"

	"bookstore/core/utils"
	"bookstore/feature/bookstore/models"

	"github.com/shopspring/decimal"
)

// StatusRequest moves an order to another status.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped cancelled"`
}

// ListQuery pages through orders.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
	Status string `query:"status"`
}

// Line is an order item.
type Line struct {
	VariantID string  `json:"variant_id"`
	BookID    string  `json:"book_id"`
	Title     string  `json:"title"`
	Format    string  `json:"format"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// View is an order as returned to clients.
type View struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Line    `json:"items"`
}

func toView(o models.Order) View {
	view := View{
		ID:        o.ID,
		UserID:    o.UserID,
		Reference: o.Reference,
		Status:    o.Status,
		Total:     utils.ToFloat(o.Total),
		CreatedAt: o.CreatedAt,
		Items:     make([]Line, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		view.Items = append(view.Items, Line{
			VariantID: item.VariantID,
			BookID:    item.BookID,
			Title:     item.Title,
			Format:    item.Format,
			Quantity:  item.Quantity,
			UnitPrice: utils.ToFloat(item.UnitPrice),
			LineTotal: utils.ToFloat(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}
	return view
}
