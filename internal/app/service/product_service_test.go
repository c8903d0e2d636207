package service

import (
	"testing"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductServiceTest(t *testing.T) ProductService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(testDB)
	return NewProductService(productRepo, nil)
}

func testProduct(sku string, category model.ProductCategory, price int) *model.Product {
	return &model.Product{
		SKUID:       sku,
		Title:       "테스트 상품 " + sku,
		BrandName:   "uniqlo",
		Category:    category,
		LowestPrice: price,
		ColorFamily: model.ColorBlack,
		Style:       model.StyleCasual,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	productService := setupProductServiceTest(t)

	// Initially empty
	products, err := productService.ListProducts(ProductListOptions{})
	assert.NoError(t, err)
	assert.Len(t, products, 0)

	require.NoError(t, productService.CreateProduct(testProduct("TOP_001", model.CategoryTop, 19900)))
	require.NoError(t, productService.CreateProduct(testProduct("SHOE_001", model.CategoryFootwear, 99000)))

	products, err = productService.ListProducts(ProductListOptions{})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductService_ListProducts_Filters(t *testing.T) {
	productService := setupProductServiceTest(t)

	top := testProduct("TOP_001", model.CategoryTop, 19900)
	top.Style = model.StyleMinimal
	require.NoError(t, productService.CreateProduct(top))

	soldOut := testProduct("TOP_002", model.CategoryTop, 0)
	require.NoError(t, productService.CreateProduct(soldOut))

	shoe := testProduct("SHOE_001", model.CategoryFootwear, 99000)
	shoe.Season = model.SeasonWinter
	require.NoError(t, productService.CreateProduct(shoe))

	t.Run("By category", func(t *testing.T) {
		category := model.CategoryTop
		products, err := productService.ListProducts(ProductListOptions{Category: &category})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("Available only", func(t *testing.T) {
		category := model.CategoryTop
		products, err := productService.ListProducts(ProductListOptions{Category: &category, AvailableOnly: true})
		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "TOP_001", products[0].SKUID)
	})

	t.Run("By style", func(t *testing.T) {
		style := model.StyleMinimal
		products, err := productService.ListProducts(ProductListOptions{Style: &style})
		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "TOP_001", products[0].SKUID)
	})

	t.Run("Season filter includes all-season items", func(t *testing.T) {
		season := model.SeasonWinter
		products, err := productService.ListProducts(ProductListOptions{Season: &season})
		assert.NoError(t, err)
		// 겨울 상품 1개 + 사계절 상품 2개
		assert.Len(t, products, 3)
	})
}

func TestProductService_GetProductByID(t *testing.T) {
	productService := setupProductServiceTest(t)

	product := testProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, productService.CreateProduct(product))

	tests := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{"Existing product", product.ID, nil},
		{"Non-existing product", 9999, ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := productService.GetProductByID(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				assert.Equal(t, product.SKUID, found.SKUID)
			}
		})
	}
}

func TestProductService_GetProductBySKU(t *testing.T) {
	productService := setupProductServiceTest(t)

	require.NoError(t, productService.CreateProduct(testProduct("TOP_001", model.CategoryTop, 19900)))

	found, err := productService.GetProductBySKU("TOP_001")
	require.NoError(t, err)
	assert.Equal(t, "TOP_001", found.SKUID)

	_, err = productService.GetProductBySKU("NOPE")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_CreateProduct(t *testing.T) {
	productService := setupProductServiceTest(t)

	product := testProduct("TOP_001", model.CategoryTop, 19900)
	err := productService.CreateProduct(product)
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
	// 시즌 미지정 시 사계절로 저장
	assert.Equal(t, model.SeasonAll, product.Season)
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	productService := setupProductServiceTest(t)

	require.NoError(t, productService.CreateProduct(testProduct("TOP_001", model.CategoryTop, 19900)))

	err := productService.CreateProduct(testProduct("TOP_001", model.CategoryTop, 29900))
	assert.ErrorIs(t, err, ErrProductSKUExists)
}

func TestProductService_CreateProduct_InvalidAttributes(t *testing.T) {
	productService := setupProductServiceTest(t)

	tests := []struct {
		name   string
		mutate func(*model.Product)
	}{
		{"Unknown category", func(p *model.Product) { p.Category = "hat" }},
		{"Unknown color family", func(p *model.Product) { p.ColorFamily = "neon" }},
		{"Unknown style", func(p *model.Product) { p.Style = "gorpcore" }},
		{"Unknown season", func(p *model.Product) { p.Season = "monsoon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := testProduct("TOP_X", model.CategoryTop, 19900)
			tt.mutate(product)
			assert.ErrorIs(t, productService.CreateProduct(product), ErrInvalidProductAttribute)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	productService := setupProductServiceTest(t)

	product := testProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, productService.CreateProduct(product))

	product.LowestPrice = 24900
	product.Style = model.StyleStreet
	require.NoError(t, productService.UpdateProduct(product))

	updated, err := productService.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 24900, updated.LowestPrice)
	assert.Equal(t, model.StyleStreet, updated.Style)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	productService := setupProductServiceTest(t)

	ghost := testProduct("GHOST", model.CategoryTop, 19900)
	ghost.ID = 9999
	assert.ErrorIs(t, productService.UpdateProduct(ghost), ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	productService := setupProductServiceTest(t)

	product := testProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, productService.CreateProduct(product))

	require.NoError(t, productService.DeleteProduct(product.ID))

	_, err := productService.GetProductByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, productService.DeleteProduct(9999), ErrProductNotFound)
}
