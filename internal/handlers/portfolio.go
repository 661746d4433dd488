package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/ordering"
	"studio-admin-backend/internal/services"
	"studio-admin-backend/internal/supabase"
)

type PortfolioHandler struct {
	dbClient *supabase.DatabaseClient
	cleanup  *services.CleanupService
	logger   *zap.Logger
}

func NewPortfolioHandler(dbClient *supabase.DatabaseClient, cleanup *services.CleanupService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		dbClient: dbClient,
		cleanup:  cleanup,
		logger:   logger,
	}
}

// ListPortfolioImages godoc
// @Summary     List portfolio images
// @Description Returns portfolio images sorted by position, optionally filtered by service and category
// @Tags        portfolio
// @Produce     json
// @Security    Bearer
// @Param       service_id query string false "Filter by service ID (UUID)"
// @Param       category_id query string false "Filter by category ID (UUID)"
// @Success     200 {object} models.PortfolioImageListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /portfolio-images [get]
func (h *PortfolioHandler) ListPortfolioImages(c *gin.Context) {
	serviceID, ok := optionalUUIDQuery(c, "service_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service_id"})
		return
	}
	categoryID, ok := optionalUUIDQuery(c, "category_id")
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category_id"})
		return
	}

	images, err := h.dbClient.ListPortfolioImages(serviceID, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list portfolio images",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.PortfolioImageResponse, len(images))
	for i, image := range images {
		responses[i] = toPortfolioImageResponse(&image)
	}

	c.JSON(http.StatusOK, models.PortfolioImageListResponse{PortfolioImages: responses})
}

// CreatePortfolioImage godoc
// @Summary     Add a portfolio image
// @Description Creates a portfolio image at the end of the gallery
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.PortfolioImageRequest true "Portfolio image"
// @Success     201 {object} models.PortfolioImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /portfolio-images [post]
func (h *PortfolioHandler) CreatePortfolioImage(c *gin.Context) {
	var req models.PortfolioImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	serviceID, ok := parseOptionalUUID(req.ServiceID)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service_id"})
		return
	}
	categoryID, ok := parseOptionalUUID(req.CategoryID)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category_id"})
		return
	}

	sortOrder, err := h.dbClient.NextPortfolioImageOrder()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to assign position",
			Message: err.Error(),
		})
		return
	}

	image, err := h.dbClient.CreatePortfolioImage(serviceID, categoryID, req.Title, req.ImageURL, req.ThumbnailURL, sortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create portfolio image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toPortfolioImageResponse(image))
}

// UpdatePortfolioImage godoc
// @Summary     Update a portfolio image
// @Description Updates a portfolio image; replaced primary and thumbnail assets are destroyed on the CDN after the row write
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       image_id path string true "Portfolio image ID (UUID)"
// @Param       request body models.PortfolioImageRequest true "Portfolio image"
// @Success     200 {object} models.PortfolioImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /portfolio-images/{image_id} [put]
func (h *PortfolioHandler) UpdatePortfolioImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid portfolio image id"})
		return
	}

	var req models.PortfolioImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	serviceID, ok := parseOptionalUUID(req.ServiceID)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service_id"})
		return
	}
	categoryID, ok := parseOptionalUUID(req.CategoryID)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category_id"})
		return
	}

	existing, err := h.dbClient.GetPortfolioImage(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "portfolio image not found",
			Message: err.Error(),
		})
		return
	}

	image, err := h.dbClient.UpdatePortfolioImage(id, serviceID, categoryID, req.Title, req.ImageURL, req.ThumbnailURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update portfolio image",
			Message: err.Error(),
		})
		return
	}

	h.cleanup.ReplaceAsset(existing.ImageURL, req.ImageURL)
	if existing.ThumbnailURL.Valid {
		h.cleanup.ReplaceAsset(existing.ThumbnailURL.String, req.ThumbnailURL)
	}

	c.JSON(http.StatusOK, toPortfolioImageResponse(image))
}

// DeletePortfolioImage godoc
// @Summary     Delete a portfolio image
// @Description Deletes the row, then destroys its primary and thumbnail CDN assets best-effort
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       image_id path string true "Portfolio image ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /portfolio-images/{image_id} [delete]
func (h *PortfolioHandler) DeletePortfolioImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid portfolio image id"})
		return
	}

	existing, err := h.dbClient.GetPortfolioImage(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "portfolio image not found",
			Message: err.Error(),
		})
		return
	}

	if err := h.dbClient.DeletePortfolioImage(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete portfolio image",
			Message: err.Error(),
		})
		return
	}

	urls := []string{existing.ImageURL}
	if existing.ThumbnailURL.Valid {
		urls = append(urls, existing.ThumbnailURL.String)
	}
	h.cleanup.DestroyAssets(urls...)

	c.JSON(http.StatusOK, gin.H{"message": "portfolio image deleted successfully"})
}

// ReorderPortfolioImages godoc
// @Summary     Reorder the portfolio gallery
// @Description Moves one portfolio image immediately before another and re-sequences positions from zero
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ReorderRequest true "Moved and target image IDs"
// @Success     200 {object} models.ReorderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /portfolio-images/reorder [put]
func (h *PortfolioHandler) ReorderPortfolioImages(c *gin.Context) {
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

	images, err := h.dbClient.ListPortfolioImages(uuid.NullUUID{}, uuid.NullUUID{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list portfolio images",
			Message: err.Error(),
		})
		return
	}

	items := make([]ordering.Item, len(images))
	for i, image := range images {
		items[i] = ordering.Item{ID: image.ID, SortOrder: image.SortOrder}
	}

	updated := 0
	for _, update := range ordering.Reorder(items, movedID, targetID) {
		if err := h.dbClient.UpdatePortfolioImageOrder(update.ID, update.SortOrder); err != nil {
			h.logger.Warn("portfolio reorder write failed",
				zap.String("id", update.ID.String()), zap.Error(err))
			continue
		}
		updated++
	}

	c.JSON(http.StatusOK, models.ReorderResponse{Updated: updated})
}

func toPortfolioImageResponse(image *models.PortfolioImage) models.PortfolioImageResponse {
	resp := models.PortfolioImageResponse{
		ID:        image.ID.String(),
		ImageURL:  image.ImageURL,
		SortOrder: image.SortOrder,
		CreatedAt: image.CreatedAt,
	}
	if image.ServiceID.Valid {
		resp.ServiceID = image.ServiceID.UUID.String()
	}
	if image.CategoryID.Valid {
		resp.CategoryID = image.CategoryID.UUID.String()
	}
	if image.Title.Valid {
		resp.Title = image.Title.String
	}
	if image.ThumbnailURL.Valid {
		resp.ThumbnailURL = image.ThumbnailURL.String
	}
	return resp
}

// parseOptionalUUID maps "" to a null UUID and rejects malformed values.
func parseOptionalUUID(value string) (uuid.NullUUID, bool) {
	if value == "" {
		return uuid.NullUUID{}, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.NullUUID{}, false
	}
	return uuid.NullUUID{UUID: id, Valid: true}, true
}

func optionalUUIDQuery(c *gin.Context, name string) (uuid.NullUUID, bool) {
	return parseOptionalUUID(c.Query(name))
}
