package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/somosmas/ong-api/internal/domain"
)

// Repository is the generic soft-delete-aware data access layer, instantiated
// once per entity type over a shared GORM session.
//
// Listing and counting exclude soft-deleted rows so pagination totals always
// agree with the items a client can see. GetByID and FindByCondition do NOT
// exclude them: services need deleted rows to distinguish "gone" (400) from
// "never existed" (404), and uniqueness checks treat a soft-deleted value as
// still taken.
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a Repository for T over the given session.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// FindPage returns the requested page of active rows, ordered by id.
func (r *Repository[T]) FindPage(ctx context.Context, page, size int) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).
		Where("soft_delete = ?", false).
		Order("id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// FindAll returns every active row, unpaged.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Where("soft_delete = ?", false).Order("id").Find(&items).Error; err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// FindByCondition returns rows matching the condition, including soft-deleted
// ones. Used for uniqueness checks and ownership lookups.
func (r *Repository[T]) FindByCondition(ctx context.Context, query string, args ...any) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// CountActive returns the number of active rows, the pagination denominator.
func (r *Repository[T]) CountActive(ctx context.Context) (int64, error) {
	var model T
	var total int64
	if err := r.db.WithContext(ctx).Model(&model).Where("soft_delete = ?", false).Count(&total).Error; err != nil {
		return 0, mapError(err)
	}
	return total, nil
}

// GetByID retrieves a row by primary key, soft-deleted or not.
// An absent id yields (nil, nil); absence is a valid, non-error result.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

// Create stages a new row. It is not durable until the unit of work commits.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Update stages an in-place mutation of an existing row.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a row physically. Present for contract completeness; no
// workflow calls it — all in-scope deletions go through the soft-delete flag.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// mapError converts GORM errors to domain errors. The driver's message is
// preserved so the envelope's diagnostics list can surface it.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeInvalidState, "value already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
