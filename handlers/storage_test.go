package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"massagefinder/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeStorage struct {
	deleted []string
	err     error
}

func (f *fakeStorage) UploadShopImage(ctx context.Context, localFilePath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/shops/img.jpg", nil
}

func (f *fakeStorage) DeleteShopImage(ctx context.Context, publicID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newStorageTestRouter(svc storage.StorageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/uploads/shop-image", UploadShopImageHandler(svc))
	r.DELETE("/api/admin/uploads/shop-image", DeleteShopImageHandler(svc))
	return r
}

func TestDeleteShopImageEndpoint(t *testing.T) {
	fake := &fakeStorage{}
	router := newStorageTestRouter(fake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		"/api/admin/uploads/shop-image?publicId=massagefinder/shops/abc123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"massagefinder/shops/abc123"}, fake.deleted)
}

func TestDeleteShopImageEndpointRequiresPublicID(t *testing.T) {
	fake := &fakeStorage{}
	router := newStorageTestRouter(fake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/shop-image", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.deleted)
}

func TestStorageEndpointsUnconfigured(t *testing.T) {
	router := newStorageTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/uploads/shop-image", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/shop-image?publicId=x", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
