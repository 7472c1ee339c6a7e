package memory

import "slices"

// table holds one entity kind keyed by a per-table id sequence. It is not
// safe for concurrent use; Repository serializes access.
type table[T any] struct {
	rows   map[int64]*T
	lastID int64
	clone  func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	if clone == nil {
		clone = func(v *T) *T {
			c := *v
			return &c
		}
	}
	return &table[T]{rows: make(map[int64]*T), clone: clone}
}

// insert stores a copy of v under the next id and returns another copy.
func (t *table[T]) insert(v *T, setID func(*T, int64)) *T {
	row := t.clone(v)
	t.lastID++
	setID(row, t.lastID)
	t.rows[t.lastID] = row
	return t.clone(row)
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return t.clone(row), true
}

func (t *table[T]) update(id int64, fn func(*T)) (*T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	fn(row)
	return t.clone(row), true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list returns copies of the rows accepted by keep, sorted by cmp. The
// result is never nil.
func (t *table[T]) list(keep func(*T) bool, cmp func(a, b *T) int) []*T {
	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, t.clone(row))
		}
	}
	slices.SortFunc(out, cmp)
	return out
}
