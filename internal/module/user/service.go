package user

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// UserService implements the user account workflows. Registration lives in
// the auth module; this service covers listing, lookup, profile updates, and
// account removal.
type UserService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewUserService creates a UserService.
func NewUserService(store *repository.Store, images domain.ImageStore) *UserService {
	return &UserService{store: store, images: images}
}

func (s *UserService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[UserResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Users(), params, baseURL, UserResponseOf)
}

func (s *UserService) Get(ctx context.Context, id uint) (UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return UserResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Users(), id, "user", UserResponseOf)
}

// Update modifies a profile. Email must stay unique; a non-empty password is
// re-hashed; a new photo replaces the stored object.
func (s *UserService) Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error) {
	var zero UserResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "user does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "user has been removed from the system", nil)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := uow.Users().FindByCondition(ctx, "email = ? AND id <> ?", email, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "email is already in use", nil)
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return zero, domain.NewAppError(domain.CodeInternal, "password hashing failed", err)
		}
		item.Password = string(hash)
	}

	photoURL, err := pkg.ReplaceImage(ctx, s.images, "users", item.Photo, req.Photo)
	if err != nil {
		return zero, err
	}

	item.FirstName = strings.TrimSpace(req.FirstName)
	item.LastName = strings.TrimSpace(req.LastName)
	item.Email = email
	item.Photo = photoURL
	item.Touch(time.Now())

	if err := uow.Users().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return UserResponseOf(item), nil
}

func (s *UserService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Users(), id, "user")
}
