package contact

import "github.com/somosmas/ong-api/internal/domain"

// CreateContactRequest represents a contact form submission.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Phone   string `json:"phone" binding:"max=20"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=2000"`
}

// UpdateContactRequest represents the input for updating a stored message.
type UpdateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Phone   string `json:"phone" binding:"max=20"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=2000"`
}

// ContactResponse is the display shape of a contact message.
type ContactResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func contactResponse(ct *domain.Contact) ContactResponse {
	return ContactResponse{ID: ct.ID, Name: ct.Name, Phone: ct.Phone, Email: ct.Email, Message: ct.Message}
}
