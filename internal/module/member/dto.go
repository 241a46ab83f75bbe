package member

import "github.com/somosmas/ong-api/internal/domain"

// CreateMemberRequest represents the input for creating a member.
type CreateMemberRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Image        string `json:"image"`
	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
	Description  string `json:"description" binding:"max=255"`
}

// UpdateMemberRequest represents the input for updating a member.
type UpdateMemberRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Image        string `json:"image"`
	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
	Description  string `json:"description" binding:"max=255"`
}

// MemberResponse is the display shape of a member.
type MemberResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
	Description  string `json:"description"`
}

func memberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Image:        m.Image,
		FacebookURL:  m.FacebookURL,
		InstagramURL: m.InstagramURL,
		LinkedinURL:  m.LinkedinURL,
		Description:  m.Description,
	}
}
