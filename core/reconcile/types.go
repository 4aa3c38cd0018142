package reconcile

// Kind identifies a relation kind of a book.
type Kind string

const (
	KindAuthor   Kind = "author"
	KindCategory Kind = "category"
	KindTag      Kind = "tag"
	KindSeries   Kind = "series"
	KindVariant  Kind = "variant"
	KindImage    Kind = "image"
)

// Mode is the client-supplied marker of a submitted item.
type Mode string

const (
	// ModeCreate marks a link or owned row that does not exist yet.
	ModeCreate Mode = "create"
	// ModeUpdate marks a link or owned row that already exists.
	ModeUpdate Mode = "update"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCreate || m == ModeUpdate
}

// Item is one element of the desired set.
// For join kinds ID is the related entity id; for owned kinds it is the row id
// (empty for creates). Extra carries relation-specific fields.
type Item[T any] struct {
	ID    string
	Name  string
	Mode  Mode
	Extra T
}

// NoExtra is the payload of relation kinds without extra fields.
type NoExtra struct{}

// ActionType represents the type of a planned mutation.
type ActionType string

const (
	// ActionCreate inserts a join row or an owned row.
	ActionCreate ActionType = "create"
	// ActionUpdate writes extra fields of an existing row.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a join row or an owned row.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation.
type Action[T any] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the related entity id (join kinds) or row id (owned kinds).
	// Empty for owned creates, the adapter mints the id.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Item is the submitted item for creates and updates.
	Item Item[T] `json:"-"`
}

// Plan contains the planned actions for one relation kind.
type Plan[T any] struct {
	Kind    Kind        `json:"kind"`
	Actions []Action[T] `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	// Stored is the number of rows before reconciliation.
	Stored int `json:"stored"`

	// Desired is the number of submitted items.
	Desired int `json:"desired"`

	// Creates counts planned inserts.
	Creates int `json:"creates"`

	// Updates counts planned writes to existing rows.
	Updates int `json:"updates"`

	// Unchanged counts existing links kept as they are.
	Unchanged int `json:"unchanged"`

	// Deletes counts planned removals.
	Deletes int `json:"deletes"`
}

// Affected returns the number of rows the plan writes.
func (s PlanSummary) Affected() int {
	return s.Creates + s.Updates + s.Deletes
}
