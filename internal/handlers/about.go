package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/services"
	"studio-admin-backend/internal/supabase"
)

type AboutHandler struct {
	dbClient *supabase.DatabaseClient
	cleanup  *services.CleanupService
	logger   *zap.Logger
}

func NewAboutHandler(dbClient *supabase.DatabaseClient, cleanup *services.CleanupService, logger *zap.Logger) *AboutHandler {
	return &AboutHandler{
		dbClient: dbClient,
		cleanup:  cleanup,
		logger:   logger,
	}
}

// GetAboutSection godoc
// @Summary     Get the about section
// @Description Returns the single about block shown on the landing page
// @Tags        about
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.AboutSectionResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /about [get]
func (h *AboutHandler) GetAboutSection(c *gin.Context) {
	about, err := h.dbClient.GetAboutSection()
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "about section not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toAboutSectionResponse(about))
}

// UpdateAboutSection upserts the single about row. When the image was
// replaced, the previous asset is destroyed best-effort after the row write.
// @Summary     Update the about section
// @Description Creates or replaces the single about block; a replaced image asset is destroyed on the CDN after the row write
// @Tags        about
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.AboutSectionRequest true "About section"
// @Success     200 {object} models.AboutSectionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /about [put]
func (h *AboutHandler) UpdateAboutSection(c *gin.Context) {
	var req models.AboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	var previousImageURL string
	if existing, err := h.dbClient.GetAboutSection(); err == nil && existing.ImageURL.Valid {
		previousImageURL = existing.ImageURL.String
	}

	about, err := h.dbClient.UpsertAboutSection(req.Title, req.Body, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save about section",
			Message: err.Error(),
		})
		return
	}

	h.cleanup.ReplaceAsset(previousImageURL, req.ImageURL)

	c.JSON(http.StatusOK, toAboutSectionResponse(about))
}

func toAboutSectionResponse(about *models.AboutSection) models.AboutSectionResponse {
	resp := models.AboutSectionResponse{
		ID:        about.ID.String(),
		Title:     about.Title,
		Body:      about.Body,
		UpdatedAt: about.UpdatedAt,
	}
	if about.ImageURL.Valid {
		resp.ImageURL = about.ImageURL.String
	}
	return resp
}
