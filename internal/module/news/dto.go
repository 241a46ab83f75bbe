package news

import "github.com/somosmas/ong-api/internal/domain"

// CreateNewsRequest represents the input for publishing a news article.
// Image carries a base64 payload (optionally a data URL) or an existing URL.
type CreateNewsRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=255"`
	Content    string `json:"content" binding:"required"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}

// UpdateNewsRequest represents the input for updating a news article.
type UpdateNewsRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=255"`
	Content    string `json:"content" binding:"required"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}

// NewsResponse is the display shape of a news article.
type NewsResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}

func newsResponse(n *domain.News) NewsResponse {
	return NewsResponse{
		ID:         n.ID,
		Name:       n.Name,
		Content:    n.Content,
		Image:      n.Image,
		CategoryID: n.CategoryID,
	}
}
