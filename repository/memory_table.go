package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// memoryTable keeps rows as encoded documents so every read hands out a copy.
type memoryTable[T any, P recordPtr[T]] struct {
	name    string
	indexes Indexes[T]
	clock   Clock

	mu   sync.RWMutex
	rows map[string][]byte
	ids  []string // ascending
}

func newMemoryTable[T any, P recordPtr[T]](name string, indexes Indexes[T], clock Clock) *memoryTable[T, P] {
	return &memoryTable[T, P]{
		name:    name,
		indexes: indexes,
		clock:   clock,
		rows:    make(map[string][]byte),
	}
}

func (t *memoryTable[T, P]) Name() string { return t.name }

func (t *memoryTable[T, P]) decode(raw []byte) (T, error) {
	var row T
	if err := json.Unmarshal(raw, &row); err != nil {
		return row, fmt.Errorf("memory table %s: decode: %w", t.name, err)
	}
	return row, nil
}

func (t *memoryTable[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	raw, ok := t.rows[id]
	if !ok {
		return zero, ErrNotFound
	}
	return t.decode(raw)
}

func (t *memoryTable[T, P]) Insert(ctx context.Context, row T) (T, error) {
	if err := ctx.Err(); err != nil {
		return row, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	id := newID()
	P(&row).SetID(id)
	stamp(P(&row), t.clock(), true)
	raw, err := json.Marshal(row)
	if err != nil {
		return row, fmt.Errorf("memory table %s: encode: %w", t.name, err)
	}
	t.rows[id] = raw
	t.insertID(id)
	return row, nil
}

func (t *memoryTable[T, P]) insertID(id string) {
	i := sort.SearchStrings(t.ids, id)
	t.ids = append(t.ids, "")
	copy(t.ids[i+1:], t.ids[i:])
	t.ids[i] = id
}

func (t *memoryTable[T, P]) Patch(ctx context.Context, id string, mutate func(row *T) error) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	raw, ok := t.rows[id]
	if !ok {
		return zero, ErrNotFound
	}
	row, err := t.decode(raw)
	if err != nil {
		return zero, err
	}
	if err := mutate(&row); err != nil {
		return zero, err
	}
	P(&row).SetID(id)
	stamp(P(&row), t.clock(), false)
	raw, err = json.Marshal(row)
	if err != nil {
		return zero, fmt.Errorf("memory table %s: encode: %w", t.name, err)
	}
	t.rows[id] = raw
	return row, nil
}

func (t *memoryTable[T, P]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	i := sort.SearchStrings(t.ids, id)
	if i < len(t.ids) && t.ids[i] == id {
		t.ids = append(t.ids[:i], t.ids[i+1:]...)
	}
	return nil
}

func (t *memoryTable[T, P]) Scan(ctx context.Context, q Query[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var key func(T) string
	if q.Index != "" {
		var ok bool
		if key, ok = t.indexes[q.Index]; !ok {
			return nil, unknownIndex(t.name, q.Index)
		}
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	visit := func(id string) (bool, error) {
		row, err := t.decode(t.rows[id])
		if err != nil {
			return false, err
		}
		if key != nil && key(row) != q.Value {
			return true, nil
		}
		if q.Filter != nil && !q.Filter(row) {
			return true, nil
		}
		out = append(out, row)
		return q.Limit <= 0 || len(out) < q.Limit, nil
	}

	if q.Order == Desc {
		end := len(t.ids)
		if q.After != "" {
			end = sort.SearchStrings(t.ids, q.After)
		}
		for i := end - 1; i >= 0; i-- {
			more, err := visit(t.ids[i])
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
		return out, nil
	}

	start := 0
	if q.After != "" {
		start = sort.SearchStrings(t.ids, q.After)
		if start < len(t.ids) && t.ids[start] == q.After {
			start++
		}
	}
	for i := start; i < len(t.ids); i++ {
		more, err := visit(t.ids[i])
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	return out, nil
}
