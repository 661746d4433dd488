package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/ordering"
	"studio-admin-backend/internal/services"
)

// HeroStore is the slice of the row store the hero endpoints need.
type HeroStore interface {
	ListHeroImages() ([]models.HeroImage, error)
	GetHeroImage(id uuid.UUID) (*models.HeroImage, error)
	CreateHeroImage(imageURL, altText string, sortOrder int) (*models.HeroImage, error)
	UpdateHeroImage(id uuid.UUID, imageURL, altText string) (*models.HeroImage, error)
	UpdateHeroImageOrder(id uuid.UUID, sortOrder int) error
	DeleteHeroImage(id uuid.UUID) error
	NextHeroImageOrder() (int, error)
}

type HeroHandler struct {
	dbClient HeroStore
	cleanup  *services.CleanupService
	logger   *zap.Logger
}

func NewHeroHandler(dbClient HeroStore, cleanup *services.CleanupService, logger *zap.Logger) *HeroHandler {
	return &HeroHandler{
		dbClient: dbClient,
		cleanup:  cleanup,
		logger:   logger,
	}
}

// ListHeroImages godoc
// @Summary     List hero carousel images
// @Description Returns every hero carousel image sorted by position
// @Tags        hero
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.HeroImageListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /hero-images [get]
func (h *HeroHandler) ListHeroImages(c *gin.Context) {
	heroes, err := h.dbClient.ListHeroImages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list hero images",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.HeroImageResponse, len(heroes))
	for i, hero := range heroes {
		responses[i] = toHeroImageResponse(&hero)
	}

	c.JSON(http.StatusOK, models.HeroImageListResponse{HeroImages: responses})
}

// CreateHeroImage godoc
// @Summary     Add a hero carousel image
// @Description Creates a hero image at the end of the carousel
// @Tags        hero
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.HeroImageRequest true "Hero image"
// @Success     201 {object} models.HeroImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /hero-images [post]
func (h *HeroHandler) CreateHeroImage(c *gin.Context) {
	var req models.HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	sortOrder, err := h.dbClient.NextHeroImageOrder()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to assign position",
			Message: err.Error(),
		})
		return
	}

	hero, err := h.dbClient.CreateHeroImage(req.ImageURL, req.AltText, sortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create hero image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toHeroImageResponse(hero))
}

// UpdateHeroImage godoc
// @Summary     Update a hero carousel image
// @Description Updates a hero image; a replaced asset is destroyed on the CDN after the row write
// @Tags        hero
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       hero_id path string true "Hero image ID (UUID)"
// @Param       request body models.HeroImageRequest true "Hero image"
// @Success     200 {object} models.HeroImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /hero-images/{hero_id} [put]
func (h *HeroHandler) UpdateHeroImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("hero_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid hero image id"})
		return
	}

	var req models.HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	existing, err := h.dbClient.GetHeroImage(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "hero image not found",
			Message: err.Error(),
		})
		return
	}

	hero, err := h.dbClient.UpdateHeroImage(id, req.ImageURL, req.AltText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update hero image",
			Message: err.Error(),
		})
		return
	}

	// advisory cleanup of the replaced asset, after the row write landed
	h.cleanup.ReplaceAsset(existing.ImageURL, req.ImageURL)

	c.JSON(http.StatusOK, toHeroImageResponse(hero))
}

// DeleteHeroImage godoc
// @Summary     Delete a hero carousel image
// @Description Deletes the row, then destroys its CDN asset best-effort
// @Tags        hero
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       hero_id path string true "Hero image ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /hero-images/{hero_id} [delete]
func (h *HeroHandler) DeleteHeroImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("hero_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid hero image id"})
		return
	}

	// capture the URL before the row disappears
	existing, err := h.dbClient.GetHeroImage(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "hero image not found",
			Message: err.Error(),
		})
		return
	}

	if err := h.dbClient.DeleteHeroImage(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete hero image",
			Message: err.Error(),
		})
		return
	}

	h.cleanup.DestroyAssets(existing.ImageURL)

	c.JSON(http.StatusOK, gin.H{"message": "hero image deleted successfully"})
}

// ReorderHeroImages applies a drag-and-drop move as independent position
// writes; partial failure is tolerated and reported only through the count.
// @Summary     Reorder the hero carousel
// @Description Moves one hero image immediately before another and re-sequences positions from zero
// @Tags        hero
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ReorderRequest true "Moved and target image IDs"
// @Success     200 {object} models.ReorderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /hero-images/reorder [put]
func (h *HeroHandler) ReorderHeroImages(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	movedID, err := uuid.Parse(req.MovedID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid moved_id"})
		return
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid target_id"})
		return
	}

	heroes, err := h.dbClient.ListHeroImages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list hero images",
			Message: err.Error(),
		})
		return
	}

	items := make([]ordering.Item, len(heroes))
	for i, hero := range heroes {
		items[i] = ordering.Item{ID: hero.ID, SortOrder: hero.SortOrder}
	}

	updated := 0
	for _, update := range ordering.Reorder(items, movedID, targetID) {
		if err := h.dbClient.UpdateHeroImageOrder(update.ID, update.SortOrder); err != nil {
			h.logger.Warn("hero reorder write failed",
				zap.String("id", update.ID.String()), zap.Error(err))
			continue
		}
		updated++
	}

	c.JSON(http.StatusOK, models.ReorderResponse{Updated: updated})
}

func toHeroImageResponse(hero *models.HeroImage) models.HeroImageResponse {
	resp := models.HeroImageResponse{
		ID:        hero.ID.String(),
		ImageURL:  hero.ImageURL,
		SortOrder: hero.SortOrder,
		CreatedAt: hero.CreatedAt,
		UpdatedAt: hero.UpdatedAt,
	}
	if hero.AltText.Valid {
		resp.AltText = hero.AltText.String
	}
	return resp
}
