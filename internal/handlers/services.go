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

type ServicesHandler struct {
	dbClient *supabase.DatabaseClient
	cleanup  *services.CleanupService
	logger   *zap.Logger
}

func NewServicesHandler(dbClient *supabase.DatabaseClient, cleanup *services.CleanupService, logger *zap.Logger) *ServicesHandler {
	return &ServicesHandler{
		dbClient: dbClient,
		cleanup:  cleanup,
		logger:   logger,
	}
}

// ListServices godoc
// @Summary     List services
// @Description Returns the studio's service catalog sorted by position
// @Tags        services
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ServiceListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services [get]
func (h *ServicesHandler) ListServices(c *gin.Context) {
	items, err := h.dbClient.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list services",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ServiceResponse, len(items))
	for i, service := range items {
		responses[i] = toServiceResponse(&service)
	}

	c.JSON(http.StatusOK, models.ServiceListResponse{Services: responses})
}

// GetService godoc
// @Summary     Get a service
// @Tags        services
// @Produce     json
// @Security    Bearer
// @Param       service_id path string true "Service ID (UUID)"
// @Success     200 {object} models.ServiceResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /services/{service_id} [get]
func (h *ServicesHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	service, err := h.dbClient.GetService(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "service not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

// CreateService godoc
// @Summary     Create a service
// @Description Creates a service at the end of the catalog
// @Tags        services
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ServiceRequest true "Service"
// @Success     201 {object} models.ServiceResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services [post]
func (h *ServicesHandler) CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	sortOrder, err := h.dbClient.NextServiceOrder()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to assign position",
			Message: err.Error(),
		})
		return
	}

	service, err := h.dbClient.CreateService(req.Title, req.Description, req.ImageURL, sortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create service",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(service))
}

// UpdateService godoc
// @Summary     Update a service
// @Description Updates a service; a replaced cover asset is destroyed on the CDN after the row write
// @Tags        services
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       service_id path string true "Service ID (UUID)"
// @Param       request body models.ServiceRequest true "Service"
// @Success     200 {object} models.ServiceResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services/{service_id} [put]
func (h *ServicesHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	existing, err := h.dbClient.GetService(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "service not found",
			Message: err.Error(),
		})
		return
	}

	service, err := h.dbClient.UpdateService(id, req.Title, req.Description, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update service",
			Message: err.Error(),
		})
		return
	}

	if existing.ImageURL.Valid {
		h.cleanup.ReplaceAsset(existing.ImageURL.String, req.ImageURL)
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

// DeleteService runs the full cascade: child assets, child rows, own asset,
// own row, in that order. Only row-store failures surface as errors.
// @Summary     Delete a service
// @Description Deletes a service with its portfolio images and their CDN assets
// @Tags        services
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       service_id path string true "Service ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services/{service_id} [delete]
func (h *ServicesHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	if err := h.cleanup.DeleteService(id); err != nil {
		h.logger.Error("service cascade delete failed",
			zap.String("service_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete service",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service deleted successfully"})
}

// ReorderServices godoc
// @Summary     Reorder the service catalog
// @Description Moves one service immediately before another and re-sequences positions from zero
// @Tags        services
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ReorderRequest true "Moved and target service IDs"
// @Success     200 {object} models.ReorderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services/reorder [put]
func (h *ServicesHandler) ReorderServices(c *gin.Context) {
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

	items, err := h.dbClient.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list services",
			Message: err.Error(),
		})
		return
	}

	ordered := make([]ordering.Item, len(items))
	for i, service := range items {
		ordered[i] = ordering.Item{ID: service.ID, SortOrder: service.SortOrder}
	}

	updated := 0
	for _, update := range ordering.Reorder(ordered, movedID, targetID) {
		if err := h.dbClient.UpdateServiceOrder(update.ID, update.SortOrder); err != nil {
			h.logger.Warn("service reorder write failed",
				zap.String("id", update.ID.String()), zap.Error(err))
			continue
		}
		updated++
	}

	c.JSON(http.StatusOK, models.ReorderResponse{Updated: updated})
}

func toServiceResponse(service *models.Service) models.ServiceResponse {
	resp := models.ServiceResponse{
		ID:          service.ID.String(),
		Title:       service.Title,
		Description: service.Description,
		SortOrder:   service.SortOrder,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
	if service.ImageURL.Valid {
		resp.ImageURL = service.ImageURL.String
	}
	return resp
}
