package slide

import (
	"context"
	"sort"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// SlideService implements the carousel slide workflows.
type SlideService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewSlideService creates a SlideService.
func NewSlideService(store *repository.Store, images domain.ImageStore) *SlideService {
	return &SlideService{store: store, images: images}
}

func (s *SlideService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[SlideResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Slides(), params, baseURL, slideResponse)
}

func (s *SlideService) Get(ctx context.Context, id uint) (SlideResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return SlideResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Slides(), id, "slide", slideResponse)
}

// ListByOrganization returns the active slides of an organization ordered by
// their carousel position.
func (s *SlideService) ListByOrganization(ctx context.Context, organizationID uint) ([]SlideResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}

	items, err := uow.Slides().FindByCondition(ctx, "organization_id = ? AND soft_delete = ?", organizationID, false)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	out := make([]SlideResponse, 0, len(items))
	for i := range items {
		out = append(out, slideResponse(&items[i]))
	}
	return out, nil
}

// Insert creates a slide. A zero order is replaced by max+1 within the
// organization; an explicit order that collides with an existing slide of the
// same organization is rejected.
func (s *SlideService) Insert(ctx context.Context, req CreateSlideRequest) (SlideResponse, error) {
	var zero SlideResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	org, err := uow.Organizations().GetByID(ctx, req.OrganizationID)
	if err != nil {
		return zero, err
	}
	if org == nil || org.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "organization does not exist", nil)
	}

	order := req.Order
	if order == 0 {
		order, err = s.nextOrder(ctx, uow, req.OrganizationID)
		if err != nil {
			return zero, err
		}
	} else {
		taken, err := uow.Slides().FindByCondition(ctx, "organization_id = ? AND sort_order = ?", req.OrganizationID, order)
		if err != nil {
			return zero, err
		}
		if len(taken) > 0 {
			return zero, domain.NewAppError(domain.CodeInvalidState, "a slide with the same order already exists for this organization", nil)
		}
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "slides", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Slide{
		ImageURL:       imageURL,
		Text:           req.Text,
		Order:          order,
		OrganizationID: req.OrganizationID,
	}
	item.Touch(time.Now())

	if err := uow.Slides().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return slideResponse(item), nil
}

func (s *SlideService) Update(ctx context.Context, id uint, req UpdateSlideRequest) (SlideResponse, error) {
	var zero SlideResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Slides().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "slide does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "slide has been removed from the system", nil)
	}

	// A zero order keeps the current position. The collision check runs
	// whenever the effective position or the organization changes, so a
	// moved slide cannot land on an occupied position either way.
	order := req.Order
	if order == 0 {
		order = item.Order
	}
	if order != item.Order || req.OrganizationID != item.OrganizationID {
		taken, err := uow.Slides().FindByCondition(ctx, "organization_id = ? AND sort_order = ? AND id <> ?", req.OrganizationID, order, id)
		if err != nil {
			return zero, err
		}
		if len(taken) > 0 {
			return zero, domain.NewAppError(domain.CodeInvalidState, "a slide with the same order already exists for this organization", nil)
		}
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "slides", item.ImageURL, req.Image)
	if err != nil {
		return zero, err
	}

	item.ImageURL = imageURL
	item.Text = req.Text
	item.Order = order
	item.OrganizationID = req.OrganizationID
	item.Touch(time.Now())

	if err := uow.Slides().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return slideResponse(item), nil
}

func (s *SlideService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Slides(), id, "slide")
}

// nextOrder computes max(order)+1 across all slides of the organization,
// soft-deleted ones included so a freed position is not silently reused.
func (s *SlideService) nextOrder(ctx context.Context, uow *repository.UnitOfWork, organizationID uint) (int, error) {
	items, err := uow.Slides().FindByCondition(ctx, "organization_id = ?", organizationID)
	if err != nil {
		return 0, err
	}
	max := 0
	for i := range items {
		if items[i].Order > max {
			max = items[i].Order
		}
	}
	return max + 1, nil
}
