package repository

import (
	"testing"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductRepository(testDB)
	return testDB, repo
}

func repoTestProduct(sku string, category model.ProductCategory, price int) model.Product {
	return model.Product{
		SKUID:       sku,
		Title:       "테스트 상품 " + sku,
		BrandName:   "uniqlo",
		Category:    category,
		LowestPrice: price,
		ColorFamily: model.ColorBlack,
		Style:       model.StyleCasual,
		Season:      model.SeasonAll,
	}
}

func TestProductRepository_Create(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	product.Tags = []string{model.TagBestseller}

	err := repo.Create(&product)
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)

	// JSON 직렬화된 태그가 그대로 복원되는지 확인
	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.TagBestseller}, found.Tags)
}

func TestProductRepository_Create_DuplicateSKU(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	first := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, repo.Create(&first))

	dup := repoTestProduct("TOP_001", model.CategoryTop, 29900)
	assert.Error(t, repo.Create(&dup))
}

func TestProductRepository_FindAll(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	products := []model.Product{
		repoTestProduct("TOP_001", model.CategoryTop, 19900),
		repoTestProduct("SHOE_001", model.CategoryFootwear, 99000),
	}
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}

	found, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestProductRepository_FindByID(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, repo.Create(&product))

	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{"Existing product", product.ID, false},
		{"Non-existing product", 9999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, product.SKUID, found.SKUID)
			}
		})
	}
}

func TestProductRepository_FindBySKU(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, repo.Create(&product))

	found, err := repo.FindBySKU("TOP_001")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = repo.FindBySKU("NOPE")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_FindWithFilter(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	top := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	top.Style = model.StyleMinimal
	top.ColorFamily = model.ColorWhite
	require.NoError(t, repo.Create(&top))

	soldOut := repoTestProduct("TOP_002", model.CategoryTop, 0)
	require.NoError(t, repo.Create(&soldOut))

	shoe := repoTestProduct("SHOE_001", model.CategoryFootwear, 99000)
	shoe.Season = model.SeasonWinter
	shoe.Title = "겨울 부츠"
	require.NoError(t, repo.Create(&shoe))

	t.Run("By category", func(t *testing.T) {
		category := model.CategoryTop
		found, err := repo.FindWithFilter(ProductFilter{Category: &category})
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("Available only", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{AvailableOnly: true})
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("By color family", func(t *testing.T) {
		color := model.ColorWhite
		found, err := repo.FindWithFilter(ProductFilter{ColorFamily: &color})
		assert.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "TOP_001", found[0].SKUID)
	})

	t.Run("Season includes all-season items", func(t *testing.T) {
		season := model.SeasonWinter
		found, err := repo.FindWithFilter(ProductFilter{Season: &season})
		assert.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("Search by title", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{Search: "부츠"})
		assert.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "SHOE_001", found[0].SKUID)
	})

	t.Run("Sort by price ascending", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{SortBy: ProductSortPrice, SortAscending: true})
		assert.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "TOP_002", found[0].SKUID)
		assert.Equal(t, "SHOE_001", found[2].SKUID)
	})

	t.Run("Limit and offset", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{Limit: 2, Offset: 1})
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})
}

func TestProductRepository_Update(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, repo.Create(&product))

	product.LowestPrice = 24900
	require.NoError(t, repo.Update(&product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 24900, found.LowestPrice)
}

func TestProductRepository_Delete(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := repoTestProduct("TOP_001", model.CategoryTop, 19900)
	require.NoError(t, repo.Create(&product))

	require.NoError(t, repo.Delete(product.ID))

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
