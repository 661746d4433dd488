// Package services holds the orchestration layer between the HTTP handlers,
// the row store, and the media host.
package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studio-admin-backend/internal/cloudinary"
	"studio-admin-backend/internal/models"
)

// ServiceStore is the slice of the row store the cascade needs.
type ServiceStore interface {
	GetService(id uuid.UUID) (*models.Service, error)
	ListPortfolioImagesByService(serviceID uuid.UUID) ([]models.PortfolioImage, error)
	DeletePortfolioImagesByService(serviceID uuid.UUID) error
	DeleteService(id uuid.UUID) error
}

// AssetDestroyer issues best-effort destroy requests against the media host.
type AssetDestroyer interface {
	Destroy(publicID string) bool
	DestroyAll(publicIDs []string) int
}

// CleanupService coordinates asset cleanup with row deletion. Asset destroys
// are always advisory: a CDN failure never fails the enclosing operation.
// Row-store failures always do.
type CleanupService struct {
	store  ServiceStore
	media  AssetDestroyer
	logger *zap.Logger
}

func NewCleanupService(store ServiceStore, media AssetDestroyer, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		store:  store,
		media:  media,
		logger: logger,
	}
}

// DeleteService removes a service, its portfolio children, and every asset
// they own. Order is load-bearing: URLs must be captured before their rows
// are deleted (a deleted row cannot be asked for its URL), and child rows go
// before the parent so no child ever references a deleted service.
func (s *CleanupService) DeleteService(serviceID uuid.UUID) error {
	service, err := s.store.GetService(serviceID)
	if err != nil {
		return fmt.Errorf("failed to load service: %w", err)
	}

	children, err := s.store.ListPortfolioImagesByService(serviceID)
	if err != nil {
		return fmt.Errorf("failed to load portfolio images: %w", err)
	}

	var childURLs []string
	for _, child := range children {
		childURLs = append(childURLs, child.ImageURL)
		if child.ThumbnailURL.Valid {
			childURLs = append(childURLs, child.ThumbnailURL.String)
		}
	}
	s.DestroyAssets(childURLs...)

	if err := s.store.DeletePortfolioImagesByService(serviceID); err != nil {
		return fmt.Errorf("failed to delete portfolio images: %w", err)
	}

	if service.ImageURL.Valid {
		s.DestroyAssets(service.ImageURL.String)
	}

	if err := s.store.DeleteService(serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	return nil
}

// DestroyAssets resolves the given URLs to public IDs and destroys them
// concurrently, best-effort. Unparseable URLs are logged and skipped;
// duplicate keys (a thumbnail that is a transformation of its primary) are
// destroyed once. Returns the number of successful destroys.
func (s *CleanupService) DestroyAssets(urls ...string) int {
	seen := make(map[string]bool)
	var publicIDs []string
	for _, u := range urls {
		if u == "" {
			continue
		}
		publicID, ok := cloudinary.ExtractPublicID(u)
		if !ok {
			s.logger.Warn("cleanup: url is not a recognizable asset reference, skipping",
				zap.String("url", u))
			continue
		}
		if seen[publicID] {
			continue
		}
		seen[publicID] = true
		publicIDs = append(publicIDs, publicID)
	}

	if len(publicIDs) == 0 {
		return 0
	}
	return s.media.DestroyAll(publicIDs)
}

// ReplaceAsset destroys the previously stored asset after an update swapped
// it out. A no-op when the URLs resolve to the same public ID (the edit only
// changed transformation parameters) or the old URL does not parse.
func (s *CleanupService) ReplaceAsset(oldURL, newURL string) {
	if oldURL == "" || oldURL == newURL {
		return
	}

	oldID, ok := cloudinary.ExtractPublicID(oldURL)
	if !ok {
		return
	}
	if newID, ok := cloudinary.ExtractPublicID(newURL); ok && newID == oldID {
		return
	}

	if !s.media.Destroy(oldID) {
		s.logger.Warn("cleanup: failed to destroy replaced asset",
			zap.String("public_id", oldID))
	}
}
