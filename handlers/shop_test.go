package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"massagefinder/models"
	"massagefinder/services/review"
	"massagefinder/services/shop"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopRepo "massagefinder/database/repository/shop"
)

func newShopTestRouter(t *testing.T) (*gin.Engine, *shopRepo.MemoryShopRepo, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := shopRepo.NewMemoryShopRepo()
	seeded := &models.Shop{Name: "Lotus Spa", Description: "calm", Address: "Seoul"}
	require.NoError(t, repo.Create(context.Background(), seeded))

	shopSvc := &shop.DefaultShopService{Repo: repo}
	reviewSvc := &review.DefaultReviewService{Repo: repo}

	r := gin.New()
	r.GET("/api/shops", ListShopsHandler(shopSvc))
	r.GET("/api/shops/:id", GetShopHandler(shopSvc))
	r.POST("/api/shops/:id/view", RecordViewHandler(reviewSvc))
	r.GET("/api/shops/:id/reviews", ListReviewsHandler(reviewSvc))
	r.POST("/api/shops/:id/reviews", SubmitReviewHandler(reviewSvc))
	return r, repo, seeded.ID
}

func TestListShopsEndpoint(t *testing.T) {
	router, _, _ := newShopTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Shops []models.Shop `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Shops, 1)
	assert.Equal(t, "Lotus Spa", body.Shops[0].Name)
}

func TestListShopsEndpointWithQuery(t *testing.T) {
	router, _, _ := newShopTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops?q=nomatch", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Shops []models.Shop `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Shops)
}

func TestGetShopEndpoint(t *testing.T) {
	router, _, shopID := newShopTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordViewEndpointAlwaysNoContent(t *testing.T) {
	router, repo, shopID := newShopTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/view", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// A missing shop must not change the response.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shops/unknown/view", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	stored, err := repo.GetByID(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

func TestSubmitReviewEndpoint(t *testing.T) {
	router, _, shopID := newShopTestRouter(t)

	payload := `{"authorName":"mina","rating":5,"comment":"wonderful"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/reviews", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result models.ReviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 5.0, result.NewAverageRating)
	assert.Equal(t, 1, result.NewReviewCount)
}

func TestSubmitReviewEndpointRejectsBadInput(t *testing.T) {
	router, _, shopID := newShopTestRouter(t)

	tests := []struct {
		name       string
		path       string
		payload    string
		wantStatus int
	}{
		{"rating out of range", "/api/shops/" + shopID + "/reviews", `{"authorName":"mina","rating":6,"comment":"x"}`, http.StatusBadRequest},
		{"blank comment", "/api/shops/" + shopID + "/reviews", `{"authorName":"mina","rating":3,"comment":" "}`, http.StatusBadRequest},
		{"malformed json", "/api/shops/" + shopID + "/reviews", `{`, http.StatusBadRequest},
		{"unknown shop", "/api/shops/unknown/reviews", `{"authorName":"mina","rating":3,"comment":"x"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListReviewsEndpoint(t *testing.T) {
	router, _, shopID := newShopTestRouter(t)

	payload := `{"authorName":"mina","rating":4,"comment":"good"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shops/"+shopID+"/reviews", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID+"/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Reviews []models.Review `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reviews, 1)
	assert.Equal(t, "mina", body.Reviews[0].AuthorName)
	assert.Equal(t, 4, body.Reviews[0].Rating)
}
