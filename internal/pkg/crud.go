package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/repository"
)

// recordPtr constrains PT to a pointer to T that carries the entity base
// fields. It lets the generic flows below work on soft-delete state without
// knowing the concrete entity type.
type recordPtr[T any] interface {
	*T
	domain.Record
}

// ListResources implements the shared paged listing flow: fetch one page of
// active rows, count the active total, and wrap the mapped display DTOs in a
// PagedResponse with navigation URLs.
//
// An empty table is NotFound regardless of the requested page; a page beyond
// the data is InvalidState.
func ListResources[T, D any](ctx context.Context, repo *repository.Repository[T], params domain.PageParams, baseURL string, mapFn func(*T) D) (*PagedResponse[D], error) {
	params = params.Normalize()

	items, err := repo.FindPage(ctx, params.PageNumber, params.PageSize)
	if err != nil {
		return nil, err
	}
	total, err := repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	if total == 0 {
		return nil, domain.NewAppError(domain.CodeNotFound, "no records found", nil)
	}
	if len(items) == 0 {
		return nil, domain.NewAppError(domain.CodeInvalidState, "invalid pagination, no results", nil)
	}

	display := make([]D, 0, len(items))
	for i := range items {
		display = append(display, mapFn(&items[i]))
	}

	return NewPagedResponse(display, total, params, baseURL), nil
}

// GetResource implements the shared lookup flow: absent id is NotFound,
// a soft-deleted target is InvalidState, anything else maps to a display DTO.
func GetResource[T any, PT recordPtr[T], D any](ctx context.Context, repo *repository.Repository[T], id uint, label string, mapFn func(*T) D) (D, error) {
	var zero D

	entity, err := repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if entity == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, fmt.Sprintf("%s with id(%d) does not exist", label, id), nil)
	}
	if PT(entity).IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, fmt.Sprintf("id(%d) has been removed from the system", id), nil)
	}

	return mapFn(entity), nil
}

// SoftDeleteResource implements the shared logical deletion flow: mark the
// entity deleted, stamp the modification time, and commit. Deleting an
// already-deleted entity fails with InvalidState and leaves the flag set.
func SoftDeleteResource[T any, PT recordPtr[T]](ctx context.Context, uow *repository.UnitOfWork, repo *repository.Repository[T], id uint, label string) (string, error) {
	entity, err := repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if entity == nil {
		return "", domain.NewAppError(domain.CodeNotFound, fmt.Sprintf("%s with id(%d) does not exist", label, id), nil)
	}
	record := PT(entity)
	if record.IsDeleted() {
		return "", domain.NewAppError(domain.CodeInvalidState, fmt.Sprintf("id(%d) is already removed from the system", id), nil)
	}

	record.MarkDeleted(time.Now())
	if err := repo.Update(ctx, entity); err != nil {
		return "", err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s (%d) has been deleted successfully", label, id), nil
}
