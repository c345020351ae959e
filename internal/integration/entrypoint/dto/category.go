package dto

// AddCategoryRequest represents the request body for POST /categories.
type AddCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a single category.
type CategoryResponse struct {
	Name string `json:"name"`
}

// CategoryListResponse represents the response body for GET /categories.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// LastCategoryResponse represents the response body for GET /settings/last-category.
type LastCategoryResponse struct {
	Category string `json:"category"`
}
