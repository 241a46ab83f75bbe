package activity

import "github.com/somosmas/ong-api/internal/domain"

// CreateActivityRequest represents the input for creating an activity.
type CreateActivityRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// UpdateActivityRequest represents the input for updating an activity.
type UpdateActivityRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// ActivityResponse is the display shape of an activity.
type ActivityResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func activityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{ID: a.ID, Name: a.Name, Content: a.Content, Image: a.Image}
}
