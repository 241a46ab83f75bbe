package organization

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// OrganizationService implements the organization workflows.
type OrganizationService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewOrganizationService creates an OrganizationService.
func NewOrganizationService(store *repository.Store, images domain.ImageStore) *OrganizationService {
	return &OrganizationService{store: store, images: images}
}

func (s *OrganizationService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[OrganizationResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Organizations(), params, baseURL, organizationResponse)
}

// ListPublic returns every active organization in its public profile shape.
func (s *OrganizationService) ListPublic(ctx context.Context) ([]PublicOrganizationResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}

	items, err := uow.Organizations().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.NewAppError(domain.CodeNotFound, "no records found", nil)
	}

	out := make([]PublicOrganizationResponse, 0, len(items))
	for i := range items {
		out = append(out, publicOrganizationResponse(&items[i]))
	}
	return out, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uint) (OrganizationResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return OrganizationResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Organizations(), id, "organization", organizationResponse)
}

// Insert creates an organization. Name must be unique.
func (s *OrganizationService) Insert(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error) {
	var zero OrganizationResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Organizations().FindByCondition(ctx, "name = ?", name)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "organization with the same name already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "organizations", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Organization{
		Name:         name,
		Image:        imageURL,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		WelcomeText:  req.WelcomeText,
		AboutUsText:  req.AboutUsText,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		LinkedinURL:  req.LinkedinURL,
	}
	item.Touch(time.Now())

	if err := uow.Organizations().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return organizationResponse(item), nil
}

func (s *OrganizationService) Update(ctx context.Context, id uint, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	var zero OrganizationResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Organizations().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "organization does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "organization has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Organizations().FindByCondition(ctx, "name = ? AND id <> ?", name, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "organization with the same name already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "organizations", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Image = imageURL
	item.Address = req.Address
	item.Phone = req.Phone
	item.Email = req.Email
	item.WelcomeText = req.WelcomeText
	item.AboutUsText = req.AboutUsText
	item.FacebookURL = req.FacebookURL
	item.InstagramURL = req.InstagramURL
	item.LinkedinURL = req.LinkedinURL
	item.Touch(time.Now())

	if err := uow.Organizations().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return organizationResponse(item), nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Organizations(), id, "organization")
}
