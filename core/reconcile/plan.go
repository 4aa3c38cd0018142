package reconcile

import (
	"context"
	"fmt"

	"bookstore/core/apperror"

	"gorm.io/gorm"
)

// BuildPlan computes the actions that turn the stored id snapshot into the
// desired set. It does not touch the database.
//
// Join kinds: a create for an already linked id is kept as an update (the link
// exists), an update for an id that is not linked becomes a create. Owned kinds:
// creates ignore any submitted id, updates must reference a stored row.
// Duplicate ids in desired are rejected.
func BuildPlan[T any](adapter Adapter[T], stored []string, desired []Item[T]) (*Plan[T], error) {
	kind := adapter.Kind()
	owned := adapter.Owned()
	_, canUpdate := adapter.(Updater[T])

	storedSet := make(map[string]struct{}, len(stored))
	for _, id := range stored {
		storedSet[id] = struct{}{}
	}

	plan := &Plan[T]{
		Kind: kind,
		Summary: PlanSummary{
			Stored:  len(storedSet),
			Desired: len(desired),
		},
	}

	desiredSet := make(map[string]struct{}, len(desired))
	for i, item := range desired {
		if !item.Mode.Valid() {
			return nil, apperror.Validationf("%s #%d: invalid mode %q", kind, i+1, item.Mode)
		}

		if owned && item.Mode == ModeCreate {
			plan.addCreate("", item, "new row")
			continue
		}

		if item.ID == "" {
			return nil, apperror.Validationf("%s #%d: missing id", kind, i+1)
		}
		if _, dup := desiredSet[item.ID]; dup {
			return nil, apperror.Validationf("%s %s submitted more than once", kind, item.ID)
		}
		desiredSet[item.ID] = struct{}{}

		_, isStored := storedSet[item.ID]
		switch {
		case owned && !isStored:
			return nil, apperror.NotFoundf("%s %s not found on this book", kind, item.ID)
		case !isStored:
			plan.addCreate(item.ID, item, "not linked yet")
		case canUpdate:
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionUpdate, Key: item.ID, Reason: "existing row", Item: item})
			plan.Summary.Updates++
		default:
			plan.Summary.Unchanged++
		}
	}

	// Deletions come from the snapshot, never from rows created above.
	for _, id := range stored {
		if _, keep := desiredSet[id]; keep {
			continue
		}
		plan.Actions = append(plan.Actions, Action[T]{Type: ActionDelete, Key: id, Reason: "not in submitted set"})
		plan.Summary.Deletes++
		desiredSet[id] = struct{}{} // stored may repeat an id for broken data; delete once
	}

	return plan, nil
}

func (p *Plan[T]) addCreate(key string, item Item[T], reason string) {
	p.Actions = append(p.Actions, Action[T]{Type: ActionCreate, Key: key, Reason: reason, Item: item})
	p.Summary.Creates++
}

// ApplyPlan executes the plan: creates, then updates, then deletes.
// It returns the number of actions executed and stops at the first error.
func ApplyPlan[T any](
	ctx context.Context,
	tx *gorm.DB,
	adapter Adapter[T],
	bookID string,
	actingUserID string,
	plan *Plan[T],
) (executed int, err error) {
	var (
		creates    []Action[T]
		updates    []Action[T]
		deleteKeys []string
	)

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionCreate:
			creates = append(creates, action)
		case ActionUpdate:
			updates = append(updates, action)
		case ActionDelete:
			deleteKeys = append(deleteKeys, action.Key)
		}
	}

	for _, action := range creates {
		if err := adapter.Create(ctx, tx, bookID, actingUserID, action.Item); err != nil {
			return executed, fmt.Errorf("failed to create %s %s: %w", plan.Kind, describe(action), err)
		}
		executed++
	}

	if len(updates) > 0 {
		updater, ok := adapter.(Updater[T])
		if !ok {
			return executed, fmt.Errorf("adapter %s does not implement Updater", plan.Kind)
		}
		for _, action := range updates {
			if err := updater.Update(ctx, tx, bookID, action.Item); err != nil {
				return executed, fmt.Errorf("failed to update %s %s: %w", plan.Kind, action.Key, err)
			}
			executed++
		}
	}

	if len(deleteKeys) > 0 {
		if err := adapter.Delete(ctx, tx, bookID, deleteKeys); err != nil {
			return executed, fmt.Errorf("failed to delete %s %v: %w", plan.Kind, deleteKeys, err)
		}
		executed += len(deleteKeys)
	}

	return executed, nil
}

func describe[T any](action Action[T]) string {
	if action.Key != "" {
		return action.Key
	}
	if action.Item.Name != "" {
		return fmt.Sprintf("%q", action.Item.Name)
	}
	return "(new)"
}
