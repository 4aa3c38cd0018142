package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Reconcile loads the stored snapshot, plans and applies the changes for one
// relation kind of a book inside tx.
func Reconcile[T any](
	ctx context.Context,
	tx *gorm.DB,
	adapter Adapter[T],
	bookID string,
	actingUserID string,
	desired []Item[T],
) (*Plan[T], error) {
	stored, err := adapter.LoadStored(ctx, tx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored %s rows: %w", adapter.Kind(), err)
	}

	plan, err := BuildPlan(adapter, stored, desired)
	if err != nil {
		return nil, err
	}

	if _, err := ApplyPlan(ctx, tx, adapter, bookID, actingUserID, plan); err != nil {
		return plan, err
	}
	return plan, nil
}
