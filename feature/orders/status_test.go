package orders

import (
	"testing"

	"bookstore/feature/bookstore/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.OrderPending, models.OrderPaid, true},
		{models.OrderPaid, models.OrderShipped, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderPaid, models.OrderCancelled, true},
		{models.OrderPending, models.OrderShipped, false},
		{models.OrderShipped, models.OrderCancelled, false},
		{models.OrderCancelled, models.OrderPaid, false},
		{models.OrderPaid, models.OrderPaid, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}
