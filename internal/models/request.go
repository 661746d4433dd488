package models

type HeroImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	AltText  string `json:"alt_text,omitempty"`
}

type AboutSectionRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"image_url,omitempty"`
}

type ServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type PortfolioImageRequest struct {
	ServiceID    string `json:"service_id,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	Title        string `json:"title,omitempty"`
	ImageURL     string `json:"image_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" binding:"required"`
}

// ReorderRequest moves one record immediately before another within the same
// sibling set.
type ReorderRequest struct {
	MovedID  string `json:"moved_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
