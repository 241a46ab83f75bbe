package category

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// CategoryService implements the category workflows.
type CategoryService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(store *repository.Store, images domain.ImageStore) *CategoryService {
	return &CategoryService{store: store, images: images}
}

// List returns one page of active categories, name only.
func (s *CategoryService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[CategoryListItem], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Categories(), params, baseURL, categoryListItem)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (CategoryResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return CategoryResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Categories(), id, "category", categoryResponse)
}

// Insert creates a category. Name must be unique, soft-deleted rows included.
func (s *CategoryService) Insert(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	var zero CategoryResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Categories().FindByCondition(ctx, "name = ?", name)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "category with the same name already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "categories", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Category{Name: name, Description: req.Description, Image: imageURL}
	item.Touch(time.Now())

	if err := uow.Categories().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return categoryResponse(item), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req UpdateCategoryRequest) (CategoryResponse, error) {
	var zero CategoryResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Categories().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "category does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "category has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Categories().FindByCondition(ctx, "name = ? AND id <> ?", name, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "category with the same name already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "categories", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Description = req.Description
	item.Image = imageURL
	item.Touch(time.Now())

	if err := uow.Categories().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return categoryResponse(item), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Categories(), id, "category")
}
