package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/supabase"
)

type CategoriesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewCategoriesHandler(dbClient *supabase.DatabaseClient) *CategoriesHandler {
	return &CategoriesHandler{dbClient: dbClient}
}

// ListCategories godoc
// @Summary     List portfolio categories
// @Tags        categories
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.CategoryListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /categories [get]
func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.dbClient.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list categories",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = toCategoryResponse(&category)
	}

	c.JSON(http.StatusOK, models.CategoryListResponse{Categories: responses})
}

// CreateCategory godoc
// @Summary     Create a portfolio category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CategoryRequest true "Category"
// @Success     201 {object} models.CategoryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /categories [post]
func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	category, err := h.dbClient.CreateCategory(req.Name, req.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create category",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary     Update a portfolio category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       category_id path string true "Category ID (UUID)"
// @Param       request body models.CategoryRequest true "Category"
// @Success     200 {object} models.CategoryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /categories/{category_id} [put]
func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category id"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	category, err := h.dbClient.UpdateCategory(id, req.Name, req.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update category",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory removes the category only. Portfolio images keep their rows
// and assets; the foreign key clears on delete.
// @Summary     Delete a portfolio category
// @Description Deletes the category; its portfolio images survive with the association cleared
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       category_id path string true "Category ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /categories/{category_id} [delete]
func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.dbClient.DeleteCategory(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete category",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}

func toCategoryResponse(category *models.Category) models.CategoryResponse {
	return models.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
}
