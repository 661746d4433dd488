package services_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"studio-admin-backend/internal/models"
	"studio-admin-backend/internal/services"
)

type fakeStore struct {
	service  *models.Service
	children []models.PortfolioImage

	getErr            error
	listErr           error
	deleteChildrenErr error
	deleteServiceErr  error

	calls []string
}

func (f *fakeStore) GetService(id uuid.UUID) (*models.Service, error) {
	f.calls = append(f.calls, "get_service")
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.service, nil
}

func (f *fakeStore) ListPortfolioImagesByService(serviceID uuid.UUID) ([]models.PortfolioImage, error) {
	f.calls = append(f.calls, "list_children")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.children, nil
}

func (f *fakeStore) DeletePortfolioImagesByService(serviceID uuid.UUID) error {
	f.calls = append(f.calls, "delete_children")
	return f.deleteChildrenErr
}

func (f *fakeStore) DeleteService(id uuid.UUID) error {
	f.calls = append(f.calls, "delete_service")
	return f.deleteServiceErr
}

type fakeDestroyer struct {
	fail    bool
	single  []string
	batches [][]string
}

func (f *fakeDestroyer) Destroy(publicID string) bool {
	f.single = append(f.single, publicID)
	return !f.fail
}

func (f *fakeDestroyer) DestroyAll(publicIDs []string) int {
	f.batches = append(f.batches, publicIDs)
	if f.fail {
		return 0
	}
	return len(publicIDs)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func cloudinaryURL(path string) string {
	return "https://res.cloudinary.com/demo/image/upload/v1/" + path
}

func newFixture() (*fakeStore, *fakeDestroyer, *services.CleanupService) {
	serviceID := uuid.New()
	store := &fakeStore{
		service: &models.Service{
			ID:       serviceID,
			Title:    "Weddings",
			ImageURL: nullString(cloudinaryURL("services/weddings/cover.jpg")),
		},
		children: []models.PortfolioImage{
			{
				ID:           uuid.New(),
				ImageURL:     cloudinaryURL("services/weddings/img-1.jpg"),
				ThumbnailURL: nullString(cloudinaryURL("services/weddings/img-1-thumb.jpg")),
			},
			{
				ID:       uuid.New(),
				ImageURL: cloudinaryURL("services/weddings/img-2.jpg"),
			},
		},
	}
	destroyer := &fakeDestroyer{}
	cleanup := services.NewCleanupService(store, destroyer, zap.NewNop())
	return store, destroyer, cleanup
}

func TestDeleteService_CascadeOrder(t *testing.T) {
	store, destroyer, cleanup := newFixture()

	err := cleanup.DeleteService(store.service.ID)

	assert.NoError(t, err)
	// URLs are captured and child assets destroyed before any row delete;
	// child rows go before the parent row
	assert.Equal(t, []string{
		"get_service", "list_children", "delete_children", "delete_service",
	}, store.calls)

	assert.Len(t, destroyer.batches, 2)
	assert.ElementsMatch(t, []string{
		"services/weddings/img-1",
		"services/weddings/img-1-thumb",
		"services/weddings/img-2",
	}, destroyer.batches[0])
	assert.Equal(t, []string{"services/weddings/cover"}, destroyer.batches[1])
}

func TestDeleteService_ChildRowDeleteFailureKeepsParent(t *testing.T) {
	store, _, cleanup := newFixture()
	store.deleteChildrenErr = errors.New("row store unavailable")

	err := cleanup.DeleteService(store.service.ID)

	assert.Error(t, err)
	assert.NotContains(t, store.calls, "delete_service")
}

func TestDeleteService_ParentRowDeleteFailureSurfaces(t *testing.T) {
	store, _, cleanup := newFixture()
	store.deleteServiceErr = errors.New("row store unavailable")

	err := cleanup.DeleteService(store.service.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete service")
}

func TestDeleteService_MediaHostDownStillDeletesRows(t *testing.T) {
	store, destroyer, cleanup := newFixture()
	destroyer.fail = true

	err := cleanup.DeleteService(store.service.ID)

	assert.NoError(t, err)
	assert.Contains(t, store.calls, "delete_children")
	assert.Contains(t, store.calls, "delete_service")
}

func TestDeleteService_LoadFailureAbortsBeforeAnyDelete(t *testing.T) {
	store, destroyer, cleanup := newFixture()
	store.getErr = errors.New("not found")

	err := cleanup.DeleteService(store.service.ID)

	assert.Error(t, err)
	assert.Equal(t, []string{"get_service"}, store.calls)
	assert.Empty(t, destroyer.batches)
}

func TestDeleteService_NoChildren(t *testing.T) {
	store, destroyer, cleanup := newFixture()
	store.children = nil

	err := cleanup.DeleteService(store.service.ID)

	assert.NoError(t, err)
	// only the parent asset batch is issued
	assert.Len(t, destroyer.batches, 1)
	assert.Equal(t, []string{"services/weddings/cover"}, destroyer.batches[0])
}

func TestDestroyAssets_DeduplicatesAndSkipsUnparseable(t *testing.T) {
	_, destroyer, cleanup := newFixture()

	count := cleanup.DestroyAssets(
		cloudinaryURL("gallery/shot.jpg"),
		// same asset through a transformation URL
		"https://res.cloudinary.com/demo/image/upload/w_200,h_200/gallery/shot.jpg",
		"https://example.com/unrelated/shot.jpg",
		"",
	)

	assert.Equal(t, 1, count)
	assert.Equal(t, [][]string{{"gallery/shot"}}, destroyer.batches)
}

func TestDestroyAssets_NothingToDo(t *testing.T) {
	_, destroyer, cleanup := newFixture()

	assert.Equal(t, 0, cleanup.DestroyAssets("https://example.com/x.jpg"))
	assert.Empty(t, destroyer.batches)
}

func TestReplaceAsset_DestroysOldAsset(t *testing.T) {
	_, destroyer, cleanup := newFixture()

	cleanup.ReplaceAsset(cloudinaryURL("about/old.jpg"), cloudinaryURL("about/new.jpg"))

	assert.Equal(t, []string{"about/old"}, destroyer.single)
}

func TestReplaceAsset_NoOpWhenKeyUnchanged(t *testing.T) {
	_, destroyer, cleanup := newFixture()

	// same asset, different transformation parameters
	cleanup.ReplaceAsset(
		cloudinaryURL("about/team.jpg"),
		"https://res.cloudinary.com/demo/image/upload/w_800/about/team.jpg",
	)

	assert.Empty(t, destroyer.single)
}

func TestReplaceAsset_NoOpWhenOldURLUnparseable(t *testing.T) {
	_, destroyer, cleanup := newFixture()

	cleanup.ReplaceAsset("https://example.com/legacy.jpg", cloudinaryURL("about/new.jpg"))

	assert.Empty(t, destroyer.single)
}
