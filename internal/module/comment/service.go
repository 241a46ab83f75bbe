package comment

import (
	"context"
	"sort"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// CommentService implements the comment workflows. Mutations beyond creation
// are restricted to the comment's owner or an administrator.
type CommentService struct {
	store *repository.Store
}

// NewCommentService creates a CommentService.
func NewCommentService(store *repository.Store) *CommentService {
	return &CommentService{store: store}
}

func (s *CommentService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[CommentResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.Comments(), params, baseURL, commentResponse)
}

// ListByNews returns the active comments of a news article, oldest edit first.
func (s *CommentService) ListByNews(ctx context.Context, newsID uint) ([]CommentResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}

	article, err := uow.News().GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if article == nil || article.IsDeleted() {
		return nil, domain.NewAppError(domain.CodeNotFound, "news does not exist", nil)
	}

	items, err := uow.Comments().FindByCondition(ctx, "news_id = ? AND soft_delete = ?", newsID, false)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LastModified.Before(items[j].LastModified) })

	out := make([]CommentResponse, 0, len(items))
	for i := range items {
		out = append(out, commentResponse(&items[i]))
	}
	return out, nil
}

// Insert posts a comment on behalf of the authenticated subject.
func (s *CommentService) Insert(ctx context.Context, subject domain.Subject, req CreateCommentRequest) (CommentResponse, error) {
	var zero CommentResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	article, err := uow.News().GetByID(ctx, req.NewsID)
	if err != nil {
		return zero, err
	}
	if article == nil || article.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "news does not exist", nil)
	}

	item := &domain.Comment{
		NewsID: req.NewsID,
		UserID: subject.UserID,
		Body:   req.Body,
	}
	item.Touch(time.Now())

	if err := uow.Comments().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return commentResponse(item), nil
}

// Update edits a comment's body. Only the owner or an administrator may edit.
func (s *CommentService) Update(ctx context.Context, subject domain.Subject, id uint, req UpdateCommentRequest) (CommentResponse, error) {
	var zero CommentResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.Comments().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "comment does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "comment has been removed from the system", nil)
	}
	if err := authorize(subject, item); err != nil {
		return zero, err
	}

	item.Body = req.Body
	item.Touch(time.Now())

	if err := uow.Comments().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return commentResponse(item), nil
}

// Delete soft-deletes a comment under the same ownership rule.
func (s *CommentService) Delete(ctx context.Context, subject domain.Subject, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}

	item, err := uow.Comments().GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if item != nil && !item.IsDeleted() {
		if err := authorize(subject, item); err != nil {
			return "", err
		}
	}

	return pkg.SoftDeleteResource(ctx, uow, uow.Comments(), id, "comment")
}

func authorize(subject domain.Subject, item *domain.Comment) error {
	if subject.IsAdministrator() || subject.UserID == item.UserID {
		return nil
	}
	return domain.NewAppError(domain.CodeForbidden, "you do not have permission over this comment", nil)
}
