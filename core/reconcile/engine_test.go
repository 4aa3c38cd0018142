package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_FullReplacement(t *testing.T) {
	adapter := newMemoryAdapter(KindAuthor, false, "A", "B")

	plan, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", []Item[seriesExtra]{update("A"), create("C")})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, adapter.ids())
	assert.Equal(t, 2, plan.Summary.Affected())
}

func TestReconcile_Idempotent(t *testing.T) {
	adapter := newMemoryAdapter(KindCategory, false, "A", "B")
	desired := []Item[seriesExtra]{update("A"), update("B")}

	_, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", desired)
	require.NoError(t, err)
	_, err = Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", desired)
	require.NoError(t, err)

	assert.Empty(t, adapter.calls)
	assert.Equal(t, []string{"A", "B"}, adapter.ids())
}

func TestReconcile_CreatedRowIsRetained(t *testing.T) {
	adapter := newMemoryAdapter(KindTag, false)

	_, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", []Item[seriesExtra]{create("X")})
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, adapter.ids())
	assert.Equal(t, []string{"create:X"}, adapter.calls)
}

func TestReconcile_SeriesOrderUpdate(t *testing.T) {
	adapter := updatingAdapter{newMemoryAdapter(KindSeries, false)}
	adapter.rows["S"] = seriesExtra{Order: order(1)}

	_, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", []Item[seriesExtra]{
		{ID: "S", Mode: ModeUpdate, Extra: seriesExtra{Order: order(2)}},
	})
	require.NoError(t, err)
	require.NotNil(t, adapter.rows["S"].Order)
	assert.Equal(t, 2.0, *adapter.rows["S"].Order)
	assert.Equal(t, []string{"update:S"}, adapter.calls)
}

func TestReconcile_VariantLifecycle(t *testing.T) {
	adapter := updatingAdapter{newMemoryAdapter(KindVariant, true, "V1", "V2")}

	_, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", []Item[seriesExtra]{
		update("V1"),
		{Mode: ModeCreate},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"V1", "new-1"}, adapter.ids())
	assert.Equal(t, []string{"create:new-1", "update:V1", "delete:V2"}, adapter.calls)
}

func TestApplyPlan_OrderAndStopOnError(t *testing.T) {
	adapter := updatingAdapter{newMemoryAdapter(KindSeries, false, "A", "B")}
	plan, err := BuildPlan[seriesExtra](adapter, adapter.ids(), []Item[seriesExtra]{update("A"), create("C")})
	require.NoError(t, err)

	adapter.failOn = "update"
	adapter.failErr = errors.New("boom")

	executed, err := ApplyPlan[seriesExtra](context.Background(), nil, adapter, "book", "user", plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.failErr)
	assert.Contains(t, err.Error(), "failed to update series A")
	assert.Equal(t, 1, executed)
	assert.Equal(t, []string{"create:C"}, adapter.calls)
	assert.Contains(t, adapter.ids(), "B")
}

func TestReconcile_ValidationErrorBeforeAnyWrite(t *testing.T) {
	adapter := newMemoryAdapter(KindAuthor, false, "A")

	_, err := Reconcile[seriesExtra](context.Background(), nil, adapter, "book", "user", []Item[seriesExtra]{create("B"), create("B")})
	require.Error(t, err)
	assert.Empty(t, adapter.calls)
}
