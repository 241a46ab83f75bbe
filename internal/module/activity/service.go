package activity

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// ActivityService implements the activity workflows.
type ActivityService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewActivityService creates an ActivityService.
func NewActivityService(store *repository.Store, images domain.ImageStore) *ActivityService {
	return &ActivityService{store: store, images: images}
}

func (s *ActivityService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[ActivityResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Activities(), params, baseURL, activityResponse)
}

func (s *ActivityService) Get(ctx context.Context, id uint) (ActivityResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return ActivityResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Activities(), id, "activity", activityResponse)
}

// Insert creates an activity. Name and content must each be unique.
func (s *ActivityService) Insert(ctx context.Context, req CreateActivityRequest) (ActivityResponse, error) {
	var zero ActivityResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Activities().FindByCondition(ctx, "name = ? OR content = ?", name, req.Content)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "activity with the same name or content already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "activities", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Activity{Name: name, Content: req.Content, Image: imageURL}
	item.Touch(time.Now())

	if err := uow.Activities().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return activityResponse(item), nil
}

func (s *ActivityService) Update(ctx context.Context, id uint, req UpdateActivityRequest) (ActivityResponse, error) {
	var zero ActivityResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Activities().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "activity does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "activity has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Activities().FindByCondition(ctx, "(name = ? OR content = ?) AND id <> ?", name, req.Content, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "activity with the same name or content already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "activities", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Content = req.Content
	item.Image = imageURL
	item.Touch(time.Now())

	if err := uow.Activities().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return activityResponse(item), nil
}

func (s *ActivityService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Activities(), id, "activity")
}
