package models

import "time"

type HeroImageResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HeroImageListResponse struct {
	HeroImages []HeroImageResponse `json:"hero_images"`
}

type AboutSectionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type PortfolioImageResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id,omitempty"`
	CategoryID   string    `json:"category_id,omitempty"`
	Title        string    `json:"title,omitempty"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type PortfolioImageListResponse struct {
	PortfolioImages []PortfolioImageResponse `json:"portfolio_images"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

// ReorderResponse reports how many position writes landed. The batch is
// best-effort: a count below the list length means some writes failed and
// the list will self-heal on the next fetch.
type ReorderResponse struct {
	Updated int `json:"updated"`
}

type SessionResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
