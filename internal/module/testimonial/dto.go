package testimonial

import "github.com/somosmas/ong-api/internal/domain"

// CreateTestimonialRequest represents the input for creating a testimonial.
type CreateTestimonialRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// UpdateTestimonialRequest represents the input for updating a testimonial.
type UpdateTestimonialRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// TestimonialResponse is the display shape of a testimonial.
type TestimonialResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func testimonialResponse(t *domain.Testimonial) TestimonialResponse {
	return TestimonialResponse{ID: t.ID, Name: t.Name, Content: t.Content, Image: t.Image}
}
