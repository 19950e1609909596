package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTable stores rows in a postgres table through gorm.
type gormTable[T any, P recordPtr[T]] struct {
	db      *gorm.DB
	name    string
	indexes Indexes[T]
	clock   Clock
}

func (t *gormTable[T, P]) Name() string { return t.name }

func (t *gormTable[T, P]) Get(ctx context.Context, id string) (T, error) {
	var row T
	err := t.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, ErrNotFound
	}
	return row, err
}

func (t *gormTable[T, P]) Insert(ctx context.Context, row T) (T, error) {
	P(&row).SetID(newID())
	stamp(P(&row), t.clock(), true)
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return row, err
	}
	return row, nil
}

func (t *gormTable[T, P]) Patch(ctx context.Context, id string, mutate func(row *T) error) (T, error) {
	var out T
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := mutate(&row); err != nil {
			return err
		}
		P(&row).SetID(id)
		stamp(P(&row), t.clock(), false)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		out = row
		return nil
	})
	return out, err
}

func (t *gormTable[T, P]) Delete(ctx context.Context, id string) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *gormTable[T, P]) Scan(ctx context.Context, q Query[T]) ([]T, error) {
	tx := t.db.WithContext(ctx).Model(new(T))
	if q.Index != "" {
		if _, ok := t.indexes[q.Index]; !ok {
			return nil, unknownIndex(t.name, q.Index)
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: q.Index}, Value: q.Value})
	}
	desc := q.Order == Desc
	if q.After != "" {
		if desc {
			tx = tx.Where("id < ?", q.After)
		} else {
			tx = tx.Where("id > ?", q.After)
		}
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})

	out := make([]T, 0)
	if q.Filter == nil {
		if q.Limit > 0 {
			tx = tx.Limit(q.Limit)
		}
		if err := tx.Find(&out).Error; err != nil {
			return nil, err
		}
		return out, nil
	}

	// The filter runs in Go, so stream rows until the limit is met.
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var row T
		if err := t.db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		if !q.Filter(row) {
			continue
		}
		out = append(out, row)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, rows.Err()
}
