package pagination_test

import (
	"testing"

	"bookstore/core/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cfg = pagination.Config{DefaultLimit: 20, MaxLimit: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        pagination.Params
		wantPage  int
		wantLimit int
	}{
		{"Defaults", pagination.Params{}, 1, 20},
		{"Clamp", pagination.Params{Page: 3, Limit: 1000}, 3, 100},
		{"Negative page", pagination.Params{Page: -2, Limit: 10}, 1, 10},
		{"Cursor wins", pagination.Params{Page: 9, Limit: 10, Cursor: pagination.EncodeCursor(30)}, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			require.NoError(t, p.Normalize(cfg))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestNormalize_CursorKeepsOffsetAcrossLimits(t *testing.T) {
	first := pagination.Params{Limit: 20}
	require.NoError(t, first.Normalize(cfg))
	page := pagination.NewPage(make([]int, 20), first, 100)
	require.NotEmpty(t, page.NextCursor)

	next := pagination.Params{Limit: 30, Cursor: page.NextCursor}
	require.NoError(t, next.Normalize(cfg))
	assert.Equal(t, 20, next.Offset())
	assert.Equal(t, 30, next.Limit)

	after := pagination.NewPage(make([]int, 30), next, 100)
	offset, err := pagination.DecodeCursor(after.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, 50, offset)
}

func TestNormalize_BadCursor(t *testing.T) {
	p := pagination.Params{Cursor: "%%%"}
	assert.Error(t, p.Normalize(cfg))

	p = pagination.Params{Cursor: "bm9wZQ"} // "nope"
	assert.Error(t, p.Normalize(cfg))
}

func TestNewPage(t *testing.T) {
	p := pagination.Params{Page: 2, Limit: 2}

	page := pagination.NewPage([]string{"c", "d"}, p, 5)
	assert.True(t, page.HasMore)
	offset, err := pagination.DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, 4, offset)

	last := pagination.NewPage([]string{"e"}, pagination.Params{Page: 3, Limit: 2}, 5)
	assert.False(t, last.HasMore)
	assert.Empty(t, last.NextCursor)

	empty := pagination.NewPage[string](nil, pagination.Params{Page: 1, Limit: 2}, 0)
	assert.NotNil(t, empty.Items)
}

func TestMap(t *testing.T) {
	page := pagination.NewPage([]int{1, 2}, pagination.Params{Page: 1, Limit: 2}, 3)
	out := pagination.Map(page, func(i int) int { return i * 10 })
	assert.Equal(t, []int{10, 20}, out.Items)
	assert.Equal(t, page.NextCursor, out.NextCursor)
}
