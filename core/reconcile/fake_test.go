package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

type seriesExtra struct {
	Order *float64
}

// memoryAdapter keeps rows in a map keyed by id and records every call.
type memoryAdapter struct {
	kind    Kind
	owned   bool
	rows    map[string]seriesExtra
	calls   []string
	nextID  int
	failOn  string
	failErr error
}

func newMemoryAdapter(kind Kind, owned bool, ids ...string) *memoryAdapter {
	a := &memoryAdapter{kind: kind, owned: owned, rows: map[string]seriesExtra{}}
	for _, id := range ids {
		a.rows[id] = seriesExtra{}
	}
	return a
}

func (a *memoryAdapter) Kind() Kind  { return a.kind }
func (a *memoryAdapter) Owned() bool { return a.owned }

func (a *memoryAdapter) LoadStored(_ context.Context, _ *gorm.DB, _ string) ([]string, error) {
	ids := make([]string, 0, len(a.rows))
	for id := range a.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (a *memoryAdapter) Create(_ context.Context, _ *gorm.DB, _, _ string, item Item[seriesExtra]) error {
	if a.failOn == "create" {
		return a.failErr
	}
	id := item.ID
	if a.owned {
		a.nextID++
		id = fmt.Sprintf("new-%d", a.nextID)
	}
	if _, exists := a.rows[id]; exists {
		return errors.New("duplicate key")
	}
	a.rows[id] = item.Extra
	a.calls = append(a.calls, "create:"+id)
	return nil
}

func (a *memoryAdapter) Delete(_ context.Context, _ *gorm.DB, _ string, ids []string) error {
	if a.failOn == "delete" {
		return a.failErr
	}
	for _, id := range ids {
		delete(a.rows, id)
		a.calls = append(a.calls, "delete:"+id)
	}
	return nil
}

// updatingAdapter adds Updater to memoryAdapter.
type updatingAdapter struct {
	*memoryAdapter
}

func (a updatingAdapter) Update(_ context.Context, _ *gorm.DB, _ string, item Item[seriesExtra]) error {
	if a.failOn == "update" {
		return a.failErr
	}
	a.rows[item.ID] = item.Extra
	a.calls = append(a.calls, "update:"+item.ID)
	return nil
}

func (a *memoryAdapter) ids() []string {
	ids, _ := a.LoadStored(context.Background(), nil, "")
	return ids
}

func create(id string) Item[seriesExtra] {
	return Item[seriesExtra]{ID: id, Mode: ModeCreate}
}

func update(id string) Item[seriesExtra] {
	return Item[seriesExtra]{ID: id, Mode: ModeUpdate}
}

func order(v float64) *float64 {
	return &v
}
