package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"studio-admin-backend/internal/handlers"
	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/services"
)

// fakeHeroStore records row-store calls in a shared log so tests can assert
// the order of row deletes relative to asset destroys.
type fakeHeroStore struct {
	calls     *[]string
	hero      *models.HeroImage
	deleteErr error
}

func (f *fakeHeroStore) ListHeroImages() ([]models.HeroImage, error) { return nil, nil }

func (f *fakeHeroStore) GetHeroImage(id uuid.UUID) (*models.HeroImage, error) {
	*f.calls = append(*f.calls, "get_hero")
	return f.hero, nil
}

func (f *fakeHeroStore) CreateHeroImage(imageURL, altText string, sortOrder int) (*models.HeroImage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeHeroStore) UpdateHeroImage(id uuid.UUID, imageURL, altText string) (*models.HeroImage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeHeroStore) UpdateHeroImageOrder(id uuid.UUID, sortOrder int) error { return nil }

func (f *fakeHeroStore) DeleteHeroImage(id uuid.UUID) error {
	*f.calls = append(*f.calls, "delete_row")
	return f.deleteErr
}

func (f *fakeHeroStore) NextHeroImageOrder() (int, error) { return 0, nil }

type recordingDestroyer struct {
	calls *[]string
	ids   [][]string
}

func (d *recordingDestroyer) Destroy(publicID string) bool {
	*d.calls = append(*d.calls, "destroy")
	d.ids = append(d.ids, []string{publicID})
	return true
}

func (d *recordingDestroyer) DestroyAll(publicIDs []string) int {
	*d.calls = append(*d.calls, "destroy")
	d.ids = append(d.ids, publicIDs)
	return len(publicIDs)
}

func TestDeleteHeroImage_DestroysAssetAfterRowDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls []string
	id := uuid.New()
	store := &fakeHeroStore{
		calls: &calls,
		hero: &models.HeroImage{
			ID:       id,
			ImageURL: "https://res.cloudinary.com/demo/image/upload/v1712/hero/sunset.jpg",
		},
	}
	destroyer := &recordingDestroyer{calls: &calls}
	cleanup := services.NewCleanupService(nil, destroyer, zap.NewNop())
	handler := handlers.NewHeroHandler(store, cleanup, zap.NewNop())

	router := gin.New()
	router.DELETE("/api/v1/hero-images/:hero_id", handler.DeleteHeroImage)

	req, _ := http.NewRequest("DELETE", "/api/v1/hero-images/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"get_hero", "delete_row", "destroy"}, calls)
	assert.Equal(t, [][]string{{"hero/sunset"}}, destroyer.ids)
}

func TestDeleteHeroImage_NoDestroyWhenRowDeleteFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls []string
	id := uuid.New()
	store := &fakeHeroStore{
		calls: &calls,
		hero: &models.HeroImage{
			ID:       id,
			ImageURL: "https://res.cloudinary.com/demo/image/upload/v1712/hero/sunset.jpg",
		},
		deleteErr: errors.New("connection reset"),
	}
	destroyer := &recordingDestroyer{calls: &calls}
	cleanup := services.NewCleanupService(nil, destroyer, zap.NewNop())
	handler := handlers.NewHeroHandler(store, cleanup, zap.NewNop())

	router := gin.New()
	router.DELETE("/api/v1/hero-images/:hero_id", handler.DeleteHeroImage)

	req, _ := http.NewRequest("DELETE", "/api/v1/hero-images/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, []string{"get_hero", "delete_row"}, calls)
	assert.Empty(t, destroyer.ids)
}

// Malformed reorder requests are rejected before any row-store access.
func TestReorderHeroImages_RejectMalformedIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewHeroHandler(nil, nil, nil)

	router := gin.New()
	router.PUT("/api/v1/hero-images/reorder", handler.ReorderHeroImages)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing ids", body: `{}`},
		{name: "non-uuid moved_id", body: `{"moved_id":"abc","target_id":"f6a7f8a0-0000-0000-0000-000000000000"}`},
		{name: "non-uuid target_id", body: `{"moved_id":"f6a7f8a0-0000-0000-0000-000000000000","target_id":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("PUT", "/api/v1/hero-images/reorder", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
