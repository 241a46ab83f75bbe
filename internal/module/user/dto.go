package user

import "github.com/somosmas/ong-api/internal/domain"

// UpdateUserRequest represents the input for updating a profile. Password is
// optional; an empty value keeps the current hash. Photo carries a base64
// payload or an existing URL.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string `json:"last_name" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
	Photo     string `json:"photo"`
}

// UserResponse is the display shape of a user. The password hash never leaves
// the service layer.
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Photo     string `json:"photo"`
	RoleID    uint   `json:"role_id"`
}

// UserResponseOf maps a user entity to its display shape. Exported for the
// auth module, which returns the same shape from login and registration.
func UserResponseOf(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Photo:     u.Photo,
		RoleID:    u.RoleID,
	}
}
