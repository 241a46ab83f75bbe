package category

import "github.com/somosmas/ong-api/internal/domain"

// CreateCategoryRequest represents the input for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=255"`
	Image       string `json:"image"`
}

// UpdateCategoryRequest represents the input for updating a category.
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=255"`
	Image       string `json:"image"`
}

// CategoryResponse is the display shape of a category.
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryListItem is the trimmed shape used by the paged listing.
type CategoryListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func categoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description, Image: cat.Image}
}

func categoryListItem(cat *domain.Category) CategoryListItem {
	return CategoryListItem{ID: cat.ID, Name: cat.Name}
}
