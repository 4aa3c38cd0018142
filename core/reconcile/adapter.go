package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the persistence of one relation kind.
// All methods receive the transaction of the enclosing book update.
type Adapter[T any] interface {
	// Kind returns the relation kind handled by this adapter.
	Kind() Kind

	// Owned reports whether item ids are row ids of rows owned by the book
	// (variants, images) rather than ids of related entities (join rows).
	Owned() bool

	// LoadStored returns the ids currently stored for the book: related entity
	// ids for join kinds, row ids for owned kinds.
	LoadStored(ctx context.Context, tx *gorm.DB, bookID string) ([]string, error)

	// Create inserts the row for item, stamped with actingUserID where the table
	// carries audit columns.
	Create(ctx context.Context, tx *gorm.DB, bookID, actingUserID string, item Item[T]) error

	// Delete removes the rows with the given ids for the book.
	Delete(ctx context.Context, tx *gorm.DB, bookID string, ids []string) error
}

// Updater is implemented by adapters whose existing rows carry mutable fields
// (series order, variant fields). Adapters without it treat update items as
// unchanged links.
type Updater[T any] interface {
	Update(ctx context.Context, tx *gorm.DB, bookID string, item Item[T]) error
}
