package slide

import "github.com/somosmas/ong-api/internal/domain"

// CreateSlideRequest represents the input for creating a carousel slide.
// Order 0 means "append": the service assigns max+1 within the organization.
type CreateSlideRequest struct {
	Image          string `json:"image" binding:"required"`
	Text           string `json:"text" binding:"max=2000"`
	Order          int    `json:"order" binding:"min=0"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

// UpdateSlideRequest represents the input for updating a slide.
type UpdateSlideRequest struct {
	Image          string `json:"image"`
	Text           string `json:"text" binding:"max=2000"`
	Order          int    `json:"order" binding:"min=0"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

// SlideResponse is the display shape of a slide.
type SlideResponse struct {
	ID             uint   `json:"id"`
	ImageURL       string `json:"image_url"`
	Text           string `json:"text"`
	Order          int    `json:"order"`
	OrganizationID uint   `json:"organization_id"`
}

func slideResponse(s *domain.Slide) SlideResponse {
	return SlideResponse{
		ID:             s.ID,
		ImageURL:       s.ImageURL,
		Text:           s.Text,
		Order:          s.Order,
		OrganizationID: s.OrganizationID,
	}
}
