package news

import (
	"context"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
	"github.com/somosmas/ong-api/internal/repository"
)

// NewsService implements the news workflows over the unit of work.
type NewsService struct {
	store  *repository.Store
	images domain.ImageStore
}

// NewNewsService creates a NewsService.
func NewNewsService(store *repository.Store, images domain.ImageStore) *NewsService {
	return &NewsService{store: store, images: images}
}

// List returns one page of active news articles.
func (s *NewsService) List(ctx context.Context, params domain.PageParams, baseURL string) (*pkg.PagedResponse[NewsResponse], error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return nil, err
	}
	return pkg.ListResources(ctx, uow.News(), params, baseURL, newsResponse)
}

// Get returns a single news article by id.
func (s *NewsService) Get(ctx context.Context, id uint) (NewsResponse, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return NewsResponse{}, err
	}
	return pkg.GetResource(ctx, uow.News(), id, "news", newsResponse)
}

// Insert publishes a news article. Name and content must each be unique,
// soft-deleted articles included.
func (s *NewsService) Insert(ctx context.Context, req CreateNewsRequest) (NewsResponse, error) {
	var zero NewsResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.News().FindByCondition(ctx, "name = ? OR content = ?", name, req.Content)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "news with the same name or content already exists", nil)
	}

	imageURL, err := pkg.UploadImage(ctx, s.images, "news", req.Image)
	if err != nil {
		return zero, err
	}

	item := &domain.News{
		Name:       name,
		Content:    req.Content,
		Image:      imageURL,
		CategoryID: req.CategoryID,
	}
	item.Touch(time.Now())

	if err := uow.News().Create(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return newsResponse(item), nil
}

// Update modifies an existing news article under the same uniqueness rules.
func (s *NewsService) Update(ctx context.Context, id uint, req UpdateNewsRequest) (NewsResponse, error) {
	var zero NewsResponse

	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return zero, err
	}

	item, err := uow.News().GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item == nil {
		return zero, domain.NewAppError(domain.CodeNotFound, "news does not exist", nil)
	}
	if item.IsDeleted() {
		return zero, domain.NewAppError(domain.CodeInvalidState, "news has been removed from the system", nil)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := uow.News().FindByCondition(ctx, "(name = ? OR content = ?) AND id <> ?", name, req.Content, id)
	if err != nil {
		return zero, err
	}
	if len(taken) > 0 {
		return zero, domain.NewAppError(domain.CodeInvalidState, "news with the same name or content already exists", nil)
	}

	imageURL, err := pkg.ReplaceImage(ctx, s.images, "news", item.Image, req.Image)
	if err != nil {
		return zero, err
	}

	item.Name = name
	item.Content = req.Content
	item.Image = imageURL
	item.CategoryID = req.CategoryID
	item.Touch(time.Now())

	if err := uow.News().Update(ctx, item); err != nil {
		return zero, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return newsResponse(item), nil
}

// Delete soft-deletes a news article.
func (s *NewsService) Delete(ctx context.Context, id uint) (string, error) {
	uow := s.store.NewUnitOfWork()
	defer uow.Rollback()
	if err := uow.Err(); err != nil {
		return "", err
	}
	return pkg.SoftDeleteResource(ctx, uow, uow.News(), id, "news")
}
