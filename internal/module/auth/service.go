package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/module/user"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// WelcomeMail holds the templated welcome email content sent on registration.
type WelcomeMail struct {
	Title   string
	Body    string
	Contact string
}

// AuthService implements login, registration, and self lookup.
type AuthService struct {
	store   *repository.Store
	tokens  domain.TokenService
	images  domain.ImageStore
	mailer  domain.EmailSender
	expiry  time.Duration
	welcome WelcomeMail
}

// NewAuthService creates an AuthService.
func NewAuthService(store *repository.Store, tokens domain.TokenService, images domain.ImageStore, mailer domain.EmailSender, expiry time.Duration, welcome WelcomeMail) *AuthService {
	return &AuthService{
		store:   store,
		tokens:  tokens,
		images:  images,
		mailer:  mailer,
		expiry:  expiry,
		welcome: welcome,
	}
}

// Login verifies the credentials and returns a signed token. A wrong email
// and a wrong password fail identically so the response does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var zero AuthResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	matches, err := uow.Users().FindByCondition(ctx, "email = ?", email)
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 || matches[0].IsDeleted() {
		return zero, invalidCredentials()
	}
	account := &matches[0]

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return zero, invalidCredentials()
	}

	role, err := s.roleName(ctx, uow, account.RoleID)
	if err != nil {
		return zero, err
	}

	token, err := s.tokens.Generate(account.ID, role, s.expiry)
	if err != nil {
		return zero, domain.NewAppError(domain.CodeInternal, "token generation failed", err)
	}

	return AuthResponse{Token: token, User: user.UserResponseOf(account)}, nil
}

// Register creates an account with the default User role and returns a signed
// token. A welcome email failure does not fail the registration; it is
// returned as a warning for the response envelope.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (AuthResponse, []string, error) {
	var zero AuthResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := uow.Users().FindByCondition(ctx, "email = ?", email)
	if err != nil {
		return zero, nil, err
	}
	if len(taken) > 0 {
		return zero, nil, domain.NewAppError(domain.CodeInvalidState, "email is already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, nil, domain.NewAppError(domain.CodeInternal, "password hashing failed", err)
	}

	photoURL, err := pkg.UploadImage(ctx, s.images, "users", req.Photo)
	if err != nil {
		return zero, nil, err
	}

	account := &domain.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  string(hash),
		Photo:     photoURL,
		RoleID:    domain.RoleIDUser,
	}
	account.Touch(time.Now())

	if err := uow.Users().Create(ctx, account); err != nil {
		return zero, nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, nil, err
	}

	var warnings []string
	if err := s.mailer.SendTemplated(ctx, account.Email, s.welcome.Title, s.welcome.Body, s.welcome.Contact); err != nil {
		warnings = append(warnings, "welcome email could not be delivered")
	}

	token, err := s.tokens.Generate(account.ID, domain.RoleUser, s.expiry)
	if err != nil {
		return zero, nil, domain.NewAppError(domain.CodeInternal, "token generation failed", err)
	}

	return AuthResponse{Token: token, User: user.UserResponseOf(account)}, warnings, nil
}

// Me returns the profile of the authenticated subject.
func (s *AuthService) Me(ctx context.Context, subject domain.Subject) (user.UserResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return user.UserResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Users(), subject.UserID, "user", user.UserResponseOf)
}

// roleName resolves the role name for a user, defaulting to the User role
// when the referenced row is missing.
func (s *AuthService) roleName(ctx context.Context, uow *repository.UnitOfWork, roleID uint) (string, error) {
	role, err := uow.Roles().GetByID(ctx, roleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return domain.RoleUser, nil
	}
	return role.Name, nil
}

func invalidCredentials() error {
	return domain.NewAppError(domain.CodeInvalidState, "invalid email or password", nil)
}
