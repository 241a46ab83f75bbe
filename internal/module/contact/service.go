package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

const (
	ackTitle = "Thank you for contacting us"
	ackBody  = "We have received your message and will get back to you shortly."
)

// ContactService implements the contact form workflows.
type ContactService struct {
	store  *repository.Store
	mailer domain.EmailSender
}

// NewContactService creates a ContactService.
func NewContactService(store *repository.Store, mailer domain.EmailSender) *ContactService {
	return &ContactService{store: store, mailer: mailer}
}

func (s *ContactService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[ContactResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Contacts(), params, baseURL, contactResponse)
}

func (s *ContactService) Get(ctx context.Context, id uint) (ContactResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return ContactResponse{}, err
	}
	return pkg.GetResource(ctx, uow.Contacts(), id, "contact", contactResponse)
}

// Insert stores a contact form submission and sends an acknowledgment email.
// A delivery failure is logged and swallowed: the message is already stored
// and the submitter gets a success either way.
func (s *ContactService) Insert(ctx context.Context, req CreateContactRequest) (ContactResponse, error) {
	var zero ContactResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item := &domain.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}
	item.Touch(time.Now())

	if err := uow.Contacts().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}

	if err := s.mailer.SendTemplated(ctx, item.Email, ackTitle, ackBody, ""); err != nil {
		slog.WarnContext(ctx, "contact acknowledgment email failed",
			slog.String("to", item.Email),
			slog.Any("error", err),
		)
	}

	return contactResponse(item), nil
}

func (s *ContactService) Update(ctx context.Context, id uint, req UpdateContactRequest) (ContactResponse, error) {
	var zero ContactResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Contacts().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "contact does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "contact has been removed from the system", nil)
	}

	item.Name = req.Name
	item.Phone = req.Phone
	item.Email = req.Email
	item.Message = req.Message
	item.Touch(time.Now())

	if err := uow.Contacts().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return contactResponse(item), nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.Contacts(), id, "contact")
}
