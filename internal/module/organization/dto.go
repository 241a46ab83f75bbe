package organization

import "github.com/somosmas/ong-api/internal/domain"

// CreateOrganizationRequest represents the input for creating an organization.
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Image        string `json:"image"`
	Address      string `json:"address" binding:"max=255"`
	Phone        string `json:"phone" binding:"max=20"`
	Email        string `json:"email" binding:"required,email"`
	WelcomeText  string `json:"welcome_text" binding:"max=500"`
	AboutUsText  string `json:"about_us_text" binding:"max=2000"`
	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
}

// UpdateOrganizationRequest represents the input for updating an organization.
type UpdateOrganizationRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Image        string `json:"image"`
	Address      string `json:"address" binding:"max=255"`
	Phone        string `json:"phone" binding:"max=20"`
	Email        string `json:"email" binding:"required,email"`
	WelcomeText  string `json:"welcome_text" binding:"max=500"`
	AboutUsText  string `json:"about_us_text" binding:"max=2000"`
	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
}

// OrganizationResponse is the full display shape of an organization.
type OrganizationResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WelcomeText  string `json:"welcome_text"`
	AboutUsText  string `json:"about_us_text"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
}

// PublicOrganizationResponse is the unauthenticated profile shape: contact
// details and social links, without the internal texts.
type PublicOrganizationResponse struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
}

func organizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           o.ID,
		Name:         o.Name,
		Image:        o.Image,
		Address:      o.Address,
		Phone:        o.Phone,
		Email:        o.Email,
		WelcomeText:  o.WelcomeText,
		AboutUsText:  o.AboutUsText,
		FacebookURL:  o.FacebookURL,
		InstagramURL: o.InstagramURL,
		LinkedinURL:  o.LinkedinURL,
	}
}

func publicOrganizationResponse(o *domain.Organization) PublicOrganizationResponse {
	return PublicOrganizationResponse{
		Name:         o.Name,
		Image:        o.Image,
		Address:      o.Address,
		Phone:        o.Phone,
		FacebookURL:  o.FacebookURL,
		InstagramURL: o.InstagramURL,
		LinkedinURL:  o.LinkedinURL,
	}
}
