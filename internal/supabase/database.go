package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"studio-admin-backend/internal/models"
)

// DatabaseClient is the single row-store handle shared by every handler and
// service. Each method is one independently atomic row operation; there are
// no multi-row transactions anywhere in the content path.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// --- hero images ---

func (d *DatabaseClient) CreateHeroImage(imageURL, altText string, sortOrder int) (*models.HeroImage, error) {
	var hero models.HeroImage
	err := d.db.QueryRow(`
		INSERT INTO hero_images (id, image_url, alt_text, sort_order)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, image_url, alt_text, sort_order, created_at, updated_at
	`, uuid.New(), imageURL, altText, sortOrder).Scan(
		&hero.ID, &hero.ImageURL, &hero.AltText, &hero.SortOrder,
		&hero.CreatedAt, &hero.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create hero image: %w", err)
	}

	return &hero, nil
}

func (d *DatabaseClient) ListHeroImages() ([]models.HeroImage, error) {
	rows, err := d.db.Query(`
		SELECT id, image_url, alt_text, sort_order, created_at, updated_at
		FROM hero_images
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}
	defer rows.Close()

	var heroes []models.HeroImage
	for rows.Next() {
		var hero models.HeroImage
		err := rows.Scan(
			&hero.ID, &hero.ImageURL, &hero.AltText, &hero.SortOrder,
			&hero.CreatedAt, &hero.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hero image: %w", err)
		}
		heroes = append(heroes, hero)
	}

	return heroes, nil
}

func (d *DatabaseClient) GetHeroImage(id uuid.UUID) (*models.HeroImage, error) {
	var hero models.HeroImage
	err := d.db.QueryRow(`
		SELECT id, image_url, alt_text, sort_order, created_at, updated_at
		FROM hero_images
		WHERE id = $1
	`, id).Scan(
		&hero.ID, &hero.ImageURL, &hero.AltText, &hero.SortOrder,
		&hero.CreatedAt, &hero.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get hero image: %w", err)
	}

	return &hero, nil
}

func (d *DatabaseClient) UpdateHeroImage(id uuid.UUID, imageURL, altText string) (*models.HeroImage, error) {
	var hero models.HeroImage
	err := d.db.QueryRow(`
		UPDATE hero_images
		SET image_url = $1, alt_text = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $3
		RETURNING id, image_url, alt_text, sort_order, created_at, updated_at
	`, imageURL, altText, id).Scan(
		&hero.ID, &hero.ImageURL, &hero.AltText, &hero.SortOrder,
		&hero.CreatedAt, &hero.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update hero image: %w", err)
	}

	return &hero, nil
}

func (d *DatabaseClient) UpdateHeroImageOrder(id uuid.UUID, sortOrder int) error {
	_, err := d.db.Exec(`
		UPDATE hero_images
		SET sort_order = $1, updated_at = NOW()
		WHERE id = $2
	`, sortOrder, id)
	return err
}

func (d *DatabaseClient) DeleteHeroImage(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM hero_images
		WHERE id = $1
	`, id)
	return err
}

func (d *DatabaseClient) NextHeroImageOrder() (int, error) {
	var next int
	err := d.db.QueryRow(`
		SELECT COALESCE(MAX(sort_order) + 1, 0) FROM hero_images
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next hero image order: %w", err)
	}
	return next, nil
}

// --- about section ---

func (d *DatabaseClient) GetAboutSection() (*models.AboutSection, error) {
	var about models.AboutSection
	err := d.db.QueryRow(`
		SELECT id, title, body, image_url, updated_at
		FROM about_section
		LIMIT 1
	`).Scan(&about.ID, &about.Title, &about.Body, &about.ImageURL, &about.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get about section: %w", err)
	}

	return &about, nil
}

// UpsertAboutSection writes the single about row, creating it on first save.
func (d *DatabaseClient) UpsertAboutSection(title, body, imageURL string) (*models.AboutSection, error) {
	var about models.AboutSection
	err := d.db.QueryRow(`
		INSERT INTO about_section (id, title, body, image_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (singleton) DO UPDATE
		SET title = EXCLUDED.title, body = EXCLUDED.body,
		    image_url = EXCLUDED.image_url, updated_at = NOW()
		RETURNING id, title, body, image_url, updated_at
	`, uuid.New(), title, body, imageURL).Scan(
		&about.ID, &about.Title, &about.Body, &about.ImageURL, &about.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert about section: %w", err)
	}

	return &about, nil
}

// --- services ---

func (d *DatabaseClient) CreateService(title, description, imageURL string, sortOrder int) (*models.Service, error) {
	var service models.Service
	err := d.db.QueryRow(`
		INSERT INTO services (id, title, description, image_url, sort_order)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, title, description, image_url, sort_order, created_at, updated_at
	`, uuid.New(), title, description, imageURL, sortOrder).Scan(
		&service.ID, &service.Title, &service.Description, &service.ImageURL,
		&service.SortOrder, &service.CreatedAt, &service.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &service, nil
}

func (d *DatabaseClient) ListServices() ([]models.Service, error) {
	rows, err := d.db.Query(`
		SELECT id, title, description, image_url, sort_order, created_at, updated_at
		FROM services
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var service models.Service
		err := rows.Scan(
			&service.ID, &service.Title, &service.Description, &service.ImageURL,
			&service.SortOrder, &service.CreatedAt, &service.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, service)
	}

	return services, nil
}

func (d *DatabaseClient) GetService(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := d.db.QueryRow(`
		SELECT id, title, description, image_url, sort_order, created_at, updated_at
		FROM services
		WHERE id = $1
	`, id).Scan(
		&service.ID, &service.Title, &service.Description, &service.ImageURL,
		&service.SortOrder, &service.CreatedAt, &service.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &service, nil
}

func (d *DatabaseClient) UpdateService(id uuid.UUID, title, description, imageURL string) (*models.Service, error) {
	var service models.Service
	err := d.db.QueryRow(`
		UPDATE services
		SET title = $1, description = $2, image_url = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $4
		RETURNING id, title, description, image_url, sort_order, created_at, updated_at
	`, title, description, imageURL, id).Scan(
		&service.ID, &service.Title, &service.Description, &service.ImageURL,
		&service.SortOrder, &service.CreatedAt, &service.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return &service, nil
}

func (d *DatabaseClient) UpdateServiceOrder(id uuid.UUID, sortOrder int) error {
	_, err := d.db.Exec(`
		UPDATE services
		SET sort_order = $1, updated_at = NOW()
		WHERE id = $2
	`, sortOrder, id)
	return err
}

func (d *DatabaseClient) DeleteService(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM services
		WHERE id = $1
	`, id)
	return err
}

func (d *DatabaseClient) NextServiceOrder() (int, error) {
	var next int
	err := d.db.QueryRow(`
		SELECT COALESCE(MAX(sort_order) + 1, 0) FROM services
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next service order: %w", err)
	}
	return next, nil
}

// --- categories ---

func (d *DatabaseClient) CreateCategory(name, slug string) (*models.Category, error) {
	var category models.Category
	err := d.db.QueryRow(`
		INSERT INTO categories (id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, created_at
	`, uuid.New(), name, slug).Scan(
		&category.ID, &category.Name, &category.Slug, &category.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

func (d *DatabaseClient) ListCategories() ([]models.Category, error) {
	rows, err := d.db.Query(`
		SELECT id, name, slug, created_at
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (d *DatabaseClient) UpdateCategory(id uuid.UUID, name, slug string) (*models.Category, error) {
	var category models.Category
	err := d.db.QueryRow(`
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3
		RETURNING id, name, slug, created_at
	`, name, slug, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

// DeleteCategory removes the category row only; portfolio images keep their
// rows and assets, the association is cleared by ON DELETE SET NULL.
func (d *DatabaseClient) DeleteCategory(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM categories
		WHERE id = $1
	`, id)
	return err
}

// --- portfolio images ---

func (d *DatabaseClient) CreatePortfolioImage(serviceID, categoryID uuid.NullUUID, title, imageURL, thumbnailURL string, sortOrder int) (*models.PortfolioImage, error) {
	var image models.PortfolioImage
	err := d.db.QueryRow(`
		INSERT INTO portfolio_images (id, service_id, category_id, title, image_url, thumbnail_url, sort_order)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
		RETURNING id, service_id, category_id, title, image_url, thumbnail_url, sort_order, created_at
	`, uuid.New(), serviceID, categoryID, title, imageURL, thumbnailURL, sortOrder).Scan(
		&image.ID, &image.ServiceID, &image.CategoryID, &image.Title,
		&image.ImageURL, &image.ThumbnailURL, &image.SortOrder, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio image: %w", err)
	}

	return &image, nil
}

// ListPortfolioImages returns the gallery, optionally filtered by service
// and/or category.
func (d *DatabaseClient) ListPortfolioImages(serviceID, categoryID uuid.NullUUID) ([]models.PortfolioImage, error) {
	rows, err := d.db.Query(`
		SELECT id, service_id, category_id, title, image_url, thumbnail_url, sort_order, created_at
		FROM portfolio_images
		WHERE ($1::uuid IS NULL OR service_id = $1)
		  AND ($2::uuid IS NULL OR category_id = $2)
		ORDER BY sort_order ASC
	`, serviceID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio images: %w", err)
	}
	defer rows.Close()

	return scanPortfolioImages(rows)
}

func (d *DatabaseClient) ListPortfolioImagesByService(serviceID uuid.UUID) ([]models.PortfolioImage, error) {
	rows, err := d.db.Query(`
		SELECT id, service_id, category_id, title, image_url, thumbnail_url, sort_order, created_at
		FROM portfolio_images
		WHERE service_id = $1
		ORDER BY sort_order ASC
	`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio images for service: %w", err)
	}
	defer rows.Close()

	return scanPortfolioImages(rows)
}

func scanPortfolioImages(rows *sql.Rows) ([]models.PortfolioImage, error) {
	var images []models.PortfolioImage
	for rows.Next() {
		var image models.PortfolioImage
		err := rows.Scan(
			&image.ID, &image.ServiceID, &image.CategoryID, &image.Title,
			&image.ImageURL, &image.ThumbnailURL, &image.SortOrder, &image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}

func (d *DatabaseClient) GetPortfolioImage(id uuid.UUID) (*models.PortfolioImage, error) {
	var image models.PortfolioImage
	err := d.db.QueryRow(`
		SELECT id, service_id, category_id, title, image_url, thumbnail_url, sort_order, created_at
		FROM portfolio_images
		WHERE id = $1
	`, id).Scan(
		&image.ID, &image.ServiceID, &image.CategoryID, &image.Title,
		&image.ImageURL, &image.ThumbnailURL, &image.SortOrder, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio image: %w", err)
	}

	return &image, nil
}

func (d *DatabaseClient) UpdatePortfolioImage(id uuid.UUID, serviceID, categoryID uuid.NullUUID, title, imageURL, thumbnailURL string) (*models.PortfolioImage, error) {
	var image models.PortfolioImage
	err := d.db.QueryRow(`
		UPDATE portfolio_images
		SET service_id = $1, category_id = $2, title = NULLIF($3, ''),
		    image_url = $4, thumbnail_url = NULLIF($5, '')
		WHERE id = $6
		RETURNING id, service_id, category_id, title, image_url, thumbnail_url, sort_order, created_at
	`, serviceID, categoryID, title, imageURL, thumbnailURL, id).Scan(
		&image.ID, &image.ServiceID, &image.CategoryID, &image.Title,
		&image.ImageURL, &image.ThumbnailURL, &image.SortOrder, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio image: %w", err)
	}

	return &image, nil
}

func (d *DatabaseClient) UpdatePortfolioImageOrder(id uuid.UUID, sortOrder int) error {
	_, err := d.db.Exec(`
		UPDATE portfolio_images
		SET sort_order = $1
		WHERE id = $2
	`, sortOrder, id)
	return err
}

func (d *DatabaseClient) DeletePortfolioImage(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM portfolio_images
		WHERE id = $1
	`, id)
	return err
}

// DeletePortfolioImagesByService removes every child row of a service in one
// filtered delete; used by the service delete cascade after the children's
// assets were cleaned up.
func (d *DatabaseClient) DeletePortfolioImagesByService(serviceID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM portfolio_images
		WHERE service_id = $1
	`, serviceID)
	return err
}

func (d *DatabaseClient) NextPortfolioImageOrder() (int, error) {
	var next int
	err := d.db.QueryRow(`
		SELECT COALESCE(MAX(sort_order) + 1, 0) FROM portfolio_images
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next portfolio image order: %w", err)
	}
	return next, nil
}

// --- contact messages ---

func (d *DatabaseClient) CreateContactMessage(name, email, phone, message string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := d.db.QueryRow(`
		INSERT INTO contact_messages (id, name, email, phone, message)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, name, email, phone, message, is_read, created_at
	`, uuid.New(), name, email, phone, message).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Message,
		&msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return &msg, nil
}

func (d *DatabaseClient) ListContactMessages() ([]models.ContactMessage, error) {
	rows, err := d.db.Query(`
		SELECT id, name, email, phone, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		err := rows.Scan(
			&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Message,
			&msg.IsRead, &msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (d *DatabaseClient) GetContactMessage(id uuid.UUID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := d.db.QueryRow(`
		SELECT id, name, email, phone, message, is_read, created_at
		FROM contact_messages
		WHERE id = $1
	`, id).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Message,
		&msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return &msg, nil
}

func (d *DatabaseClient) MarkContactMessageRead(id uuid.UUID) error {
	_, err := d.db.Exec(`
		UPDATE contact_messages
		SET is_read = TRUE
		WHERE id = $1
	`, id)
	return err
}

func (d *DatabaseClient) DeleteContactMessage(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM contact_messages
		WHERE id = $1
	`, id)
	return err
}
