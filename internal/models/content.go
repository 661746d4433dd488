package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type HeroImage struct {
	ID        uuid.UUID
	ImageURL  string
	AltText   sql.NullString
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AboutSection is a single-row table: the landing page "about us" block.
type AboutSection struct {
	ID        uuid.UUID
	Title     string
	Body      string
	ImageURL  sql.NullString
	UpdatedAt time.Time
}

type Service struct {
	ID          uuid.UUID
	Title       string
	Description string
	ImageURL    sql.NullString
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}

type PortfolioImage struct {
	ID           uuid.UUID
	ServiceID    uuid.NullUUID
	CategoryID   uuid.NullUUID
	Title        sql.NullString
	ImageURL     string
	ThumbnailURL sql.NullString
	SortOrder    int
	CreatedAt    time.Time
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     sql.NullString
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
