package testimonial

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// TestimonialService implements the testimonial workflows.
type TestimonialService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewTestimonialService creates a TestimonialService.
func NewTestimonialService(store *repository.Store, images domain.ImageStore) *TestimonialService {
	return &TestimonialService{store: store, images: images}
}

func (s *TestimonialService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[TestimonialResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Testimonials(), params, baseURL, testimonialResponse)
}

func (s *TestimonialService) Get(ctx context.Context, id uint) (TestimonialResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return TestimonialResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Testimonials(), id, "testimonial", testimonialResponse)
}

// Insert creates a testimonial. Name and content must each be unique.
func (s *TestimonialService) Insert(ctx context.Context, req CreateTestimonialRequest) (TestimonialResponse, error) {
	var zero TestimonialResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Testimonials().FindByCondition(ctx, "name = ? OR content = ?", name, req.Content)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "testimonial with the same name or content already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "testimonials", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Testimonial{Name: name, Content: req.Content, Image: imageURL}
	item.Touch(time.Now())

	if err := uow.Testimonials().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return testimonialResponse(item), nil
}

func (s *TestimonialService) Update(ctx context.Context, id uint, req UpdateTestimonialRequest) (TestimonialResponse, error) {
	var zero TestimonialResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Testimonials().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "testimonial does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "testimonial has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Testimonials().FindByCondition(ctx, "(name = ? OR content = ?) AND id <> ?", name, req.Content, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "testimonial with the same name or content already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "testimonials", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Content = req.Content
	item.Image = imageURL
	item.Touch(time.Now())

	if err := uow.Testimonials().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return testimonialResponse(item), nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Testimonials(), id, "testimonial")
}
