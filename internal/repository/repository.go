// Package repository provides the generic data-access layer. One
// Repository instance serves one model type; filter and values records are
// per-entity structs that map their set fields to columns, so there is no
// reflection over field names.
//
// Not-found is signalled by a nil record or a zero rows-affected count.
// Repositories never raise domain errors; translating zero rows into a
// not-found error is the service layer's job.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrEmptyFilter is a configuration error, distinct from not-found: a
// delete with no conditions would clear the whole table.
var ErrEmptyFilter = errors.New("repository: at least one filter condition is required")

// Conditions yields equality predicates, ANDed together. Absent fields
// contribute nothing.
type Conditions interface {
	Conditions() map[string]any
}

// Assignments yields the columns an insert/update writes.
type Assignments interface {
	Assignments() map[string]any
}

type Repository[M any] struct {
	db *gorm.DB
}

func New[M any](db *gorm.DB) *Repository[M] {
	return &Repository[M]{db: db}
}

func conditionsOf(filter Conditions) map[string]any {
	if filter == nil {
		return map[string]any{}
	}
	return filter.Conditions()
}

// FindByID looks a row up by primary key. A missing row is (nil, nil).
func (r *Repository[M]) FindByID(ctx context.Context, id uint) (*M, error) {
	var record M

	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindOne returns the first row matching the filter, or (nil, nil).
func (r *Repository[M]) FindOne(ctx context.Context, filter Conditions) (*M, error) {
	var record M

	err := r.db.WithContext(ctx).Where(conditionsOf(filter)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindAll returns every row matching the filter; a nil filter means all
// rows. Ordering is whatever the database gives back.
func (r *Repository[M]) FindAll(ctx context.Context, filter Conditions) ([]M, error) {
	var records []M

	if err := r.db.WithContext(ctx).Where(conditionsOf(filter)).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Insert persists a new row and fills in the generated id and timestamps.
func (r *Repository[M]) Insert(ctx context.Context, record *M) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// InsertAll persists the batch atomically; on any failure nothing is
// committed.
func (r *Repository[M]) InsertAll(ctx context.Context, records []*M) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}

// Update sets the given values on every row matching the filter and
// returns the number of rows touched. Zero means the filter matched
// nothing.
func (r *Repository[M]) Update(ctx context.Context, filter Conditions, values Assignments) (int64, error) {
	assignments := values.Assignments()
	if len(assignments) == 0 {
		return 0, nil
	}

	var model M
	result := r.db.WithContext(ctx).Model(&model).Where(conditionsOf(filter)).Updates(assignments)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// Delete removes every row matching the filter and returns the number of
// rows removed. An empty filter is rejected before touching the table.
func (r *Repository[M]) Delete(ctx context.Context, filter Conditions) (int64, error) {
	conds := conditionsOf(filter)
	if len(conds) == 0 {
		return 0, ErrEmptyFilter
	}

	var model M
	result := r.db.WithContext(ctx).Where(conds).Delete(&model)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository[M]) Count(ctx context.Context, filter Conditions) (int64, error) {
	var model M
	var count int64

	if err := r.db.WithContext(ctx).Model(&model).Where(conditionsOf(filter)).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
