package databases

import (
	"context"

	"github.com/motorlog/motorlog-api/sheets"
)

// Schema describes how one entity maps onto its worksheet
type Schema[T any] struct {
	Table     string
	Columns   []string // write-back column order, id first
	FromRow   func(sheets.Row) T
	ToRow     func(T) []string
	ID        func(T) int
	WithID    func(T, int) T
	Normalize func(T) T // optional, applied before every insert/update
}

// Guard is consulted before every mutating write. A nil check is skipped.
type Guard[T any] struct {
	CheckWrite  func(ctx context.Context, candidate T, existing []T) error
	CheckDelete func(ctx context.Context, id int) error
}

// Repository implements CRUD for one entity as whole-sheet read-modify-write
// cycles, the only mutation primitive the backing store has. Mutations are
// uncoordinated: two concurrent writers to the same sheet race
// last-writer-wins, accepted for this single-operator workload.
type Repository[T any] struct {
	store  sheets.TabularStore
	schema Schema[T]
	guard  Guard[T]
}

// NewRepository initializes a repository over the provided store
func NewRepository[T any](store sheets.TabularStore, schema Schema[T], guard Guard[T]) *Repository[T] {
	return &Repository[T]{store: store, schema: schema, guard: guard}
}

// List returns every row of the entity's worksheet in sheet order
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.store.Read(ctx, r.schema.Table)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.schema.FromRow(row))
	}
	return out, nil
}

// Find filters rows by case-sensitive exact match on a raw cell value
func (r *Repository[T]) Find(ctx context.Context, column, value string) ([]T, error) {
	rows, err := r.store.Read(ctx, r.schema.Table)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, row := range rows {
		if row.String(column) == value {
			out = append(out, r.schema.FromRow(row))
		}
	}
	return out, nil
}

// Insert assigns the next surrogate id and appends the entity, returning the
// assigned id
func (r *Repository[T]) Insert(ctx context.Context, entity T) (int, error) {
	existing, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	if r.schema.Normalize != nil {
		entity = r.schema.Normalize(entity)
	}
	id := nextID(existing, r.schema.ID)
	entity = r.schema.WithID(entity, id)
	if r.guard.CheckWrite != nil {
		if err := r.guard.CheckWrite(ctx, entity, existing); err != nil {
			return 0, err
		}
	}
	if err := r.writeAll(ctx, append(existing, entity)); err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the fields of the row with the matching id. The id itself
// is immutable.
func (r *Repository[T]) Update(ctx context.Context, id int, entity T) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(existing, id, r.schema.ID)
	if idx < 0 {
		return ErrNotFound
	}
	if r.schema.Normalize != nil {
		entity = r.schema.Normalize(entity)
	}
	entity = r.schema.WithID(entity, id)
	if r.guard.CheckWrite != nil {
		if err := r.guard.CheckWrite(ctx, entity, existing); err != nil {
			return err
		}
	}
	existing[idx] = entity
	return r.writeAll(ctx, existing)
}

// Delete removes the row with the matching id, refusing while the guard
// reports the id still referenced
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	if r.guard.CheckDelete != nil {
		if err := r.guard.CheckDelete(ctx, id); err != nil {
			return err
		}
	}
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(existing, id, r.schema.ID)
	if idx < 0 {
		return ErrNotFound
	}
	remaining := append(existing[:idx], existing[idx+1:]...)
	return r.writeAll(ctx, remaining)
}

func (r *Repository[T]) writeAll(ctx context.Context, entities []T) error {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, r.schema.ToRow(e))
	}
	return r.store.Replace(ctx, r.schema.Table, r.schema.Columns, rows)
}

// nextID is one past the maximum existing id, so ids are never reused after
// a delete. An empty collection starts at 1.
func nextID[T any](existing []T, id func(T) int) int {
	max := 0
	for _, e := range existing {
		if v := id(e); v > max {
			max = v
		}
	}
	return max + 1
}

func indexOf[T any](entities []T, want int, id func(T) int) int {
	for i, e := range entities {
		if id(e) == want {
			return i
		}
	}
	return -1
}
