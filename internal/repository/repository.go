package repository

import (
	"errors"
	"fmt"

	"github.com/assaka/aurareach/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownColumn is returned when a filter references a column outside the
// entity's allow-list. The HTTP error translator maps it to 400.
type ErrUnknownColumn struct {
	Column string
}

func (e *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("unknown filter column: %s", e.Column)
}

// Repository is a generic store bound to one table. Column names reaching SQL
// are restricted to the allow-list fixed at construction, so caller-supplied
// keys can never become column references.
type Repository[T any] struct {
	db      *database.DB
	columns map[string]bool
}

func NewRepository[T any](db *database.DB, columns []string) *Repository[T] {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return &Repository[T]{db: db, columns: set}
}

// SortColumn returns col if it is allow-listed, otherwise the default sort
// column. Unknown sort keys silently fall back rather than erroring.
func (r *Repository[T]) SortColumn(col string) string {
	if r.columns[col] {
		return col
	}
	return DefaultSortBy
}

// filter validates every key of a caller-supplied filter map.
func (r *Repository[T]) filter(where map[string]any) (map[string]any, error) {
	if len(where) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(where))
	for k, v := range where {
		if !r.columns[k] {
			return nil, &ErrUnknownColumn{Column: k}
		}
		out[k] = v
	}
	return out, nil
}

// List returns one page of rows plus pagination metadata. The data and count
// queries are two independent round-trips with no shared snapshot; under
// concurrent writes total and rows can disagree.
func (r *Repository[T]) List(opts ListOptions) (*Page[T], error) {
	opts = opts.Normalized()

	var model T
	query := r.db.Model(&model)

	where, err := r.filter(opts.Where)
	if err != nil {
		return nil, err
	}
	if len(where) > 0 {
		query = query.Where(where)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "DESC"
	if opts.Sort == "asc" {
		direction = "ASC"
	}

	rows := make([]T, 0, opts.Limit)
	err = query.
		Order(r.SortColumn(opts.SortBy) + " " + direction).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Data:       rows,
		Pagination: NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// GetByID returns (nil, nil) on a clean miss.
func (r *Repository[T]) GetByID(id uuid.UUID) (*T, error) {
	var row T
	err := r.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row and reloads database-assigned defaults (id,
// created_at, enum defaults) via RETURNING.
func (r *Repository[T]) Create(row *T) error {
	return r.db.Clauses(clause.Returning{}).Create(row).Error
}

// Update applies a partial SET built from an allow-listed column map and
// returns the updated row, or (nil, nil) when no row matched.
func (r *Repository[T]) Update(id uuid.UUID, updates map[string]any) (*T, error) {
	cols, err := r.filter(updates)
	if err != nil {
		return nil, err
	}

	var row T
	result := r.db.Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(cols)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// Delete removes the row and returns it, or (nil, nil) if it was absent.
func (r *Repository[T]) Delete(id uuid.UUID) (*T, error) {
	var row T
	result := r.db.Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// Count applies the same equality-AND semantics as List's count query.
func (r *Repository[T]) Count(where map[string]any) (int64, error) {
	var model T
	query := r.db.Model(&model)

	filtered, err := r.filter(where)
	if err != nil {
		return 0, err
	}
	if len(filtered) > 0 {
		query = query.Where(filtered)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
