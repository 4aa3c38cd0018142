// Package reconcile brings a book's stored relations of one kind in line with
// the full set submitted by a client.
//
// A book has five editable relation kinds: authors, categories, tags and series
// are join rows to other top-level entities, variants (and images) are rows
// owned by the book itself. Clients always submit the complete desired set;
// every item is tagged with a mode:
//
//   - create: the link (or owned row) is new and must be inserted.
//   - update: the link or row already exists and is kept, possibly mutated.
//
// Stored rows whose id does not appear in the submitted set are deleted.
//
// # Architecture
//
// 1. Plan: BuildPlan is a pure three-way diff between the stored id snapshot and
// the desired items. Deletions are computed from the snapshot taken before any
// insert, so a row created by the same plan is never removed by it.
//
// 2. Adapter: relation-specific persistence (which table, which extra columns).
// Adapters that have nothing to write for an existing link simply do not
// implement Updater; their update items are counted as unchanged.
//
// 3. Apply: ApplyPlan executes creates, then updates, then deletes and stops at
// the first error. It never opens a transaction itself; the caller passes the
// transaction of the enclosing book update so that all kinds commit or roll
// back together.
//
// # Usage Example
//
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    plan, err := reconcile.Reconcile(ctx, tx, relations.Authors(), bookID, actorID, items)
//	    if err != nil {
//	        return err
//	    }
//	    log.Info("authors reconciled", zap.Any("summary", plan.Summary))
//	    return nil
//	})
package reconcile
