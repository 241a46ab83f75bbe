package comment

import "github.com/somosmas/ong-api/internal/domain"

// CreateCommentRequest represents the input for posting a comment. The owner
// is stamped from the authenticated subject, never from the body.
type CreateCommentRequest struct {
	NewsID uint   `json:"news_id" binding:"required"`
	Body   string `json:"body" binding:"required,max=2000"`
}

// UpdateCommentRequest represents the input for editing a comment's body.
type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// CommentResponse is the display shape of a comment.
type CommentResponse struct {
	ID     uint   `json:"id"`
	NewsID uint   `json:"news_id"`
	UserID uint   `json:"user_id"`
	Body   string `json:"body"`
}

func commentResponse(cm *domain.Comment) CommentResponse {
	return CommentResponse{ID: cm.ID, NewsID: cm.NewsID, UserID: cm.UserID, Body: cm.Body}
}
