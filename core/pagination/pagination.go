// Package pagination normalizes list parameters and builds paged results.
//
// Lists accept either a 1-based page number or an opaque cursor returned by a
// previous page. Cursors encode the offset of the next item, so they stay
// valid across sorts but not across concurrent inserts.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Config holds page size limits for list endpoints.
type Config struct {
	// DefaultLimit is used when a request does not specify a limit.
	DefaultLimit int `mapstructure:"default_limit" default:"20"`
	// MaxLimit caps the requested limit.
	MaxLimit int `mapstructure:"max_limit" default:"100"`
}

// Params contains pagination request parameters.
type Params struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`

	// offset is the exact row offset decoded from Cursor.
	offset     int
	fromCursor bool
}

// Page is a single page of results.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// Normalize clamps the limit and resolves the page from the cursor when present.
func (p *Params) Normalize(cfg Config) error {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}

	if p.Limit <= 0 {
		p.Limit = cfg.DefaultLimit
	}
	if p.Limit > cfg.MaxLimit {
		p.Limit = cfg.MaxLimit
	}

	if p.Cursor != "" {
		offset, err := DecodeCursor(p.Cursor)
		if err != nil {
			return err
		}
		p.offset = offset
		p.fromCursor = true
		p.Page = offset/p.Limit + 1
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return nil
}

// Offset returns the number of rows to skip. A cursor resumes at its exact
// offset whatever limit accompanies it.
func (p Params) Offset() int {
	if p.fromCursor {
		return p.offset
	}
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// NewPage builds a page from the items of the requested window and the total row count.
func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	next := p.Offset() + len(items)
	hasMore := int64(next) < total

	page := Page[T]{
		Items:   items,
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   total,
		HasMore: hasMore,
	}
	if hasMore {
		page.NextCursor = EncodeCursor(next)
	}
	return page
}

// Map converts the items of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		HasMore:    p.HasMore,
		NextCursor: p.NextCursor,
	}
}

const cursorPrefix = "o:"

// EncodeCursor creates an opaque cursor for an offset.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// DecodeCursor decodes a cursor back to an offset.
func DecodeCursor(cursor string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor: %w", err)
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid cursor")
	}
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor")
	}
	return offset, nil
}
