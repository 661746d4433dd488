package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/supabase"
)

type MessagesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewMessagesHandler(dbClient *supabase.DatabaseClient) *MessagesHandler {
	return &MessagesHandler{dbClient: dbClient}
}

// SubmitContactMessage is the only unauthenticated write: the marketing
// site's contact form posts here.
// @Summary     Submit a contact message
// @Description Accepts a contact form submission from the public site
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body models.ContactMessageRequest true "Contact message"
// @Success     201 {object} models.ContactMessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /contact [post]
func (h *MessagesHandler) SubmitContactMessage(c *gin.Context) {
	var req models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	msg, err := h.dbClient.CreateContactMessage(req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to submit message",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toContactMessageResponse(msg))
}

// ListContactMessages godoc
// @Summary     List contact messages
// @Description Returns every contact message, newest first
// @Tags        messages
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ContactMessageListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /messages [get]
func (h *MessagesHandler) ListContactMessages(c *gin.Context) {
	messages, err := h.dbClient.ListContactMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list messages",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ContactMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = toContactMessageResponse(&msg)
	}

	c.JSON(http.StatusOK, models.ContactMessageListResponse{Messages: responses})
}

// GetContactMessage godoc
// @Summary     Get a contact message
// @Tags        messages
// @Produce     json
// @Security    Bearer
// @Param       message_id path string true "Message ID (UUID)"
// @Success     200 {object} models.ContactMessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /messages/{message_id} [get]
func (h *MessagesHandler) GetContactMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid message id"})
		return
	}

	msg, err := h.dbClient.GetContactMessage(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "message not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toContactMessageResponse(msg))
}

// MarkContactMessageRead godoc
// @Summary     Mark a contact message as read
// @Tags        messages
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       message_id path string true "Message ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /messages/{message_id}/read [patch]
func (h *MessagesHandler) MarkContactMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid message id"})
		return
	}

	if err := h.dbClient.MarkContactMessageRead(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to mark message read",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

// DeleteContactMessage godoc
// @Summary     Delete a contact message
// @Tags        messages
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       message_id path string true "Message ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /messages/{message_id} [delete]
func (h *MessagesHandler) DeleteContactMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid message id"})
		return
	}

	if err := h.dbClient.DeleteContactMessage(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete message",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted successfully"})
}

func toContactMessageResponse(msg *models.ContactMessage) models.ContactMessageResponse {
	resp := models.ContactMessageResponse{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Phone.Valid {
		resp.Phone = msg.Phone.String
	}
	return resp
}
