package controller

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/internal/app/service"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecommendControllerTest(t *testing.T) (*gin.Engine, repository.ProductRepository, service.CatalogService) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	catalogService := service.NewCatalogService(productRepo)
	recommendService := service.NewRecommendService(catalogService, rand.New(rand.NewSource(42)), 3)
	ctrl := NewRecommendController(recommendService)

	router := gin.New()
	router.GET("/recommendations/base-products", ctrl.GetBaseProductOptions)
	router.POST("/recommendations", ctrl.RecommendOutfits)

	return router, productRepo, catalogService
}

// 슬롯마다 최소 한 벌은 나오는 미니 카탈로그
func seedRecommendCatalog(t *testing.T, productRepo repository.ProductRepository, catalogService service.CatalogService) {
	items := []*model.Product{
		{SKUID: "TOP_001", Title: "화이트 티셔츠", Category: model.CategoryTop, LowestPrice: 19900, ColorFamily: model.ColorWhite, Style: model.StyleCasual, Season: model.SeasonAll},
		{SKUID: "BOTTOM_001", Title: "네이비 슬랙스", Category: model.CategoryBottom, LowestPrice: 39900, ColorFamily: model.ColorNavy, Style: model.StyleCasual, Season: model.SeasonAll},
		{SKUID: "SHOE_001", Title: "화이트 스니커즈", Category: model.CategoryFootwear, LowestPrice: 99000, ColorFamily: model.ColorWhite, Style: model.StyleCasual, Season: model.SeasonAll},
		{SKUID: "ACC_001", Title: "블랙 볼캡", Category: model.CategoryAccessory, LowestPrice: 25000, ColorFamily: model.ColorBlack, Style: model.StyleCasual, Season: model.SeasonAll, Tags: []string{model.TagBestseller}},
	}
	for _, item := range items {
		require.NoError(t, productRepo.Create(item))
	}
	require.NoError(t, catalogService.Refresh())
}

func TestRecommendController_GetBaseProductOptions(t *testing.T) {
	router, productRepo, catalogService := setupRecommendControllerTest(t)
	seedRecommendCatalog(t, productRepo, catalogService)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/base-products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(4), response["count"])
}

func TestRecommendController_RecommendOutfits_Success(t *testing.T) {
	router, productRepo, catalogService := setupRecommendControllerTest(t)
	seedRecommendCatalog(t, productRepo, catalogService)

	reqBody := model.RecommendationRequest{
		BaseProductID: "TOP_001",
		NumOutfits:    3,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.RecommendationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	require.NotEmpty(t, response.Outfits)
	assert.Equal(t, "TOP_001", response.BaseProduct.SKUID)
	assert.False(t, response.CacheHit)
	assert.Greater(t, response.ProcessingTimeMS, 0.0)

	for _, outfit := range response.Outfits {
		assert.Equal(t, "TOP_001", outfit.Top.SKUID)
		assert.NotEmpty(t, outfit.Accessories)
		assert.Greater(t, outfit.TotalPrice, 0)
	}
}

func TestRecommendController_RecommendOutfits_UnknownBase(t *testing.T) {
	router, productRepo, catalogService := setupRecommendControllerTest(t)
	seedRecommendCatalog(t, productRepo, catalogService)

	reqBody := model.RecommendationRequest{BaseProductID: "NOPE"}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 없는 베이스 상품은 에러가 아니라 빈 추천 목록
	assert.Equal(t, http.StatusOK, w.Code)

	var response model.RecommendationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Empty(t, response.Outfits)
	assert.False(t, response.CacheHit)
}

func TestRecommendController_RecommendOutfits_InvalidRequest(t *testing.T) {
	router, productRepo, catalogService := setupRecommendControllerTest(t)
	seedRecommendCatalog(t, productRepo, catalogService)

	tests := []struct {
		name    string
		reqBody map[string]interface{}
	}{
		{"Missing base_product_id", map[string]interface{}{"num_outfits": 3}},
		{"Unknown preferred_style", map[string]interface{}{"base_product_id": "TOP_001", "preferred_style": "gorpcore"}},
		{"Too many outfits", map[string]interface{}{"base_product_id": "TOP_001", "num_outfits": 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommendController_RecommendOutfits_EmptyCatalog(t *testing.T) {
	router, _, _ := setupRecommendControllerTest(t)

	reqBody := model.RecommendationRequest{BaseProductID: "TOP_001"}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.RecommendationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Empty(t, response.Outfits)
}
