package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"studio-admin-backend/internal/handlers"
)

// Validation rejects bad contact submissions before any row-store access, so
// these run against a handler with no database behind it.
func TestSubmitContactMessage_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewMessagesHandler(nil)

	router := gin.New()
	router.POST("/api/v1/contact", handler.SubmitContactMessage)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "hello"},
		{name: "missing name", body: `{"email":"a@b.com","message":"hi"}`},
		{name: "missing message", body: `{"name":"Ann","email":"a@b.com"}`},
		{name: "invalid email", body: `{"name":"Ann","email":"not-an-email","message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("POST", "/api/v1/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
