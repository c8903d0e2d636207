package repository

import (
	"fmt"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortPrice     ProductSort = "price"
	ProductSortCreatedAt ProductSort = "created_at"
)

type ProductFilter struct {
	Category      *model.ProductCategory
	Style         *model.StyleType
	ColorFamily   *model.ColorFamily
	Season        *model.Season
	AvailableOnly bool
	Search        string
	SortBy        ProductSort
	SortAscending bool
	Limit         int
	Offset        int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"sku_id":   product.SKUID,
		"title":    product.Title,
		"category": product.Category,
		"brand":    product.BrandName,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"sku_id":   product.SKUID,
			"title":    product.Title,
			"category": product.Category,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"sku_id":     product.SKUID,
	})
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{})
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"category":       filter.Category,
		"style":          filter.Style,
		"color_family":   filter.ColorFamily,
		"season":         filter.Season,
		"available_only": filter.AvailableOnly,
		"search":         filter.Search,
		"limit":          filter.Limit,
		"offset":         filter.Offset,
	})

	query := r.db.Model(&model.Product{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if filter.Style != nil {
		query = query.Where("style = ?", *filter.Style)
	}

	if filter.ColorFamily != nil {
		query = query.Where("color_family = ?", *filter.ColorFamily)
	}

	if filter.Season != nil {
		// 시즌 필터는 항상 '전시즌' 상품을 포함한다
		query = query.Where("season = ? OR season = ?", *filter.Season, model.SeasonAll)
	}

	if filter.AvailableOnly {
		query = query.Where("lowest_price > 0")
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("title LIKE ? OR brand_name LIKE ?", like, like)
	}

	switch filter.SortBy {
	case ProductSortPrice:
		direction := "DESC"
		if filter.SortAscending {
			direction = "ASC"
		}
		query = query.Order("lowest_price " + direction)
	case ProductSortCreatedAt:
		direction := "DESC"
		if filter.SortAscending {
			direction = "ASC"
		}
		query = query.Order("created_at " + direction)
	default:
		query = query.Order("id ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"category": filter.Category,
			"search":   filter.Search,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	logger.Debug("Finding product by ID in database", map[string]interface{}{
		"product_id": id,
	})

	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) FindBySKU(sku string) (*model.Product, error) {
	logger.Debug("Finding product by SKU in database", map[string]interface{}{
		"sku_id": sku,
	})

	var product model.Product
	if err := r.db.Where("sku_id = ?", sku).First(&product).Error; err != nil {
		logger.Error("Failed to find product by SKU in database", err, map[string]interface{}{
			"sku_id": sku,
		})
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"sku_id":     product.SKUID,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
			"sku_id":     product.SKUID,
		})
		return err
	}

	logger.Debug("Product updated in database", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	logger.Debug("Product deleted from database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
