package service

import (
	"errors"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrProductSKUExists        = errors.New("product sku already exists")
	ErrInvalidProductAttribute = errors.New("invalid product attribute")
)

type ProductSort string

const (
	ProductSortPrice     ProductSort = "price"
	ProductSortCreatedAt ProductSort = "created_at"
)

type ProductListOptions struct {
	Category      *model.ProductCategory
	Style         *model.StyleType
	ColorFamily   *model.ColorFamily
	Season        *model.Season
	AvailableOnly bool
	Search        string
	Sort          ProductSort
	SortAscending bool
	Limit         int
	Offset        int
}

// CatalogRefresher는 상품 변경 후 추천 스냅샷을 다시 읽게 한다.
type CatalogRefresher interface {
	Refresh() error
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductBySKU(sku string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	catalog     CatalogRefresher
}

func NewProductService(productRepo repository.ProductRepository, catalog CatalogRefresher) ProductService {
	return &productService{
		productRepo: productRepo,
		catalog:     catalog,
	}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"category": opts.Category,
		"style":    opts.Style,
		"season":   opts.Season,
		"search":   opts.Search,
		"limit":    opts.Limit,
		"offset":   opts.Offset,
	})

	filter := repository.ProductFilter{
		Category:      opts.Category,
		Style:         opts.Style,
		ColorFamily:   opts.ColorFamily,
		Season:        opts.Season,
		AvailableOnly: opts.AvailableOnly,
		Search:        opts.Search,
		SortAscending: opts.SortAscending,
		Limit:         opts.Limit,
		Offset:        opts.Offset,
	}

	switch opts.Sort {
	case ProductSortPrice:
		filter.SortBy = repository.ProductSortPrice
	case ProductSortCreatedAt:
		filter.SortBy = repository.ProductSortCreatedAt
	}

	products, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	logger.Info("Products listed", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductBySKU(sku string) (*model.Product, error) {
	logger.Debug("Fetching product by SKU", map[string]interface{}{
		"sku_id": sku,
	})

	product, err := s.productRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found by SKU", map[string]interface{}{
				"sku_id": sku,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product by SKU", err, map[string]interface{}{
			"sku_id": sku,
		})
		return nil, err
	}
	return product, nil
}

func validateProductAttributes(product *model.Product) error {
	if !product.Category.Valid() {
		return ErrInvalidProductAttribute
	}
	if product.ColorFamily != "" && !product.ColorFamily.Valid() {
		return ErrInvalidProductAttribute
	}
	if product.Style != "" && !product.Style.Valid() {
		return ErrInvalidProductAttribute
	}
	if product.Season == "" {
		product.Season = model.SeasonAll
	}
	if !product.Season.Valid() {
		return ErrInvalidProductAttribute
	}
	return nil
}

func (s *productService) CreateProduct(product *model.Product) error {
	logger.Info("Creating new product", map[string]interface{}{
		"sku_id":   product.SKUID,
		"title":    product.Title,
		"category": product.Category,
		"brand":    product.BrandName,
	})

	if err := validateProductAttributes(product); err != nil {
		logger.Warn("Invalid product attributes", map[string]interface{}{
			"sku_id":   product.SKUID,
			"category": product.Category,
			"color":    product.ColorFamily,
			"style":    product.Style,
		})
		return err
	}

	if _, err := s.productRepo.FindBySKU(product.SKUID); err == nil {
		logger.Warn("Duplicate product SKU", map[string]interface{}{
			"sku_id": product.SKUID,
		})
		return ErrProductSKUExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"sku_id": product.SKUID,
		})
		return err
	}

	s.refreshCatalog()

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"sku_id":     product.SKUID,
	})
	return nil
}

func (s *productService) UpdateProduct(product *model.Product) error {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": product.ID,
		"sku_id":     product.SKUID,
	})

	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": product.ID,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}

	if product.SKUID == "" {
		product.SKUID = existing.SKUID
	}
	if product.Category == "" {
		product.Category = existing.Category
	}
	if err := validateProductAttributes(product); err != nil {
		logger.Warn("Invalid product attributes", map[string]interface{}{
			"product_id": product.ID,
			"category":   product.Category,
		})
		return err
	}

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}

	s.refreshCatalog()

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
		"sku_id":     product.SKUID,
	})
	return nil
}

func (s *productService) DeleteProduct(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: product not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	s.refreshCatalog()

	logger.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func (s *productService) refreshCatalog() {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Refresh(); err != nil {
		logger.Error("Failed to refresh recommendation catalog", err)
	}
}
