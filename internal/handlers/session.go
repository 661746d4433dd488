package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-admin-backend/internal/middleware"
	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/supabase"
)

type SessionHandler struct {
	supabaseClient *supabase.Client
}

func NewSessionHandler(supabaseClient *supabase.Client) *SessionHandler {
	return &SessionHandler{supabaseClient: supabaseClient}
}

// Me resolves the current access token to its Supabase user so the dashboard
// can show who is signed in.
// @Summary     Get the signed-in user
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	token, exists := c.Get(middleware.AccessTokenKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "access token not found"})
		return
	}

	user, err := h.supabaseClient.GetSessionUser(token.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "failed to resolve session",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}
