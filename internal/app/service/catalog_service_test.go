package service

import (
	"testing"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, repository.ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(testDB)
	return NewCatalogService(productRepo), productRepo
}

func TestCatalogService_EmptyBeforeRefresh(t *testing.T) {
	catalog, productRepo := setupCatalogServiceTest(t)

	require.NoError(t, productRepo.Create(testProduct("TOP_001", model.CategoryTop, 19900)))

	// 스냅샷은 Refresh 전까지 비어 있다
	assert.Empty(t, catalog.Products())
	_, ok := catalog.ProductBySKU("TOP_001")
	assert.False(t, ok)
}

func TestCatalogService_Refresh(t *testing.T) {
	catalog, productRepo := setupCatalogServiceTest(t)

	require.NoError(t, productRepo.Create(testProduct("TOP_001", model.CategoryTop, 19900)))
	require.NoError(t, productRepo.Create(testProduct("SHOE_001", model.CategoryFootwear, 99000)))

	require.NoError(t, catalog.Refresh())

	assert.Len(t, catalog.Products(), 2)
	assert.Len(t, catalog.ProductsByCategory(model.CategoryTop), 1)
	assert.Len(t, catalog.ProductsByCategory(model.CategoryFootwear), 1)
	assert.Empty(t, catalog.ProductsByCategory(model.CategoryBottom))

	found, ok := catalog.ProductBySKU("SHOE_001")
	require.True(t, ok)
	assert.Equal(t, model.CategoryFootwear, found.Category)
}

func TestCatalogService_RefreshReplacesSnapshot(t *testing.T) {
	catalog, productRepo := setupCatalogServiceTest(t)

	require.NoError(t, productRepo.Create(testProduct("TOP_001", model.CategoryTop, 19900)))
	require.NoError(t, catalog.Refresh())
	require.Len(t, catalog.Products(), 1)

	require.NoError(t, productRepo.Create(testProduct("TOP_002", model.CategoryTop, 29900)))
	require.NoError(t, catalog.Refresh())

	assert.Len(t, catalog.Products(), 2)
	_, ok := catalog.ProductBySKU("TOP_002")
	assert.True(t, ok)
}
