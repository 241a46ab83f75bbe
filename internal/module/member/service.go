package member

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// MemberService implements the member workflows.
type MemberService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewMemberService creates a MemberService.
func NewMemberService(store *repository.Store, images domain.ImageStore) *MemberService {
	return &MemberService{store: store, images: images}
}

func (s *MemberService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[MemberResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Members(), params, baseURL, memberResponse)
}

func (s *MemberService) Get(ctx context.Context, id uint) (MemberResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return MemberResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Members(), id, "member", memberResponse)
}

// Insert creates a member. Name must be unique.
func (s *MemberService) Insert(ctx context.Context, req CreateMemberRequest) (MemberResponse, error) {
	var zero MemberResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Members().FindByCondition(ctx, "name = ?", name)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "member with the same name already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "members", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.Member{
		Name:         name,
		Image:        imageURL,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		LinkedinURL:  req.LinkedinURL,
		Description:  req.Description,
	}
	item.Touch(time.Now())

	if err := uow.Members().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return memberResponse(item), nil
}

func (s *MemberService) Update(ctx context.Context, id uint, req UpdateMemberRequest) (MemberResponse, error) {
	var zero MemberResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Members().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "member does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "member has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.Members().FindByCondition(ctx, "name = ? AND id <> ?", name, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "member with the same name already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "members", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Image = imageURL
	item.FacebookURL = req.FacebookURL
	item.InstagramURL = req.InstagramURL
	item.LinkedinURL = req.LinkedinURL
	item.Description = req.Description
	item.Touch(time.Now())

	if err := uow.Members().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return memberResponse(item), nil
}

func (s *MemberService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Members(), id, "member")
}
