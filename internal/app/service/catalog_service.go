package service

import (
	"sync/atomic"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/pkg/logger"
)

// CatalogService holds an immutable in-memory snapshot of the product catalog
// for the recommendation engine. Readers never block: Refresh builds a new
// snapshot and swaps the pointer.
type CatalogService interface {
	Refresh() error
	Products() []model.Product
	ProductsByCategory(category model.ProductCategory) []model.Product
	ProductBySKU(sku string) (model.Product, bool)
}

type catalogSnapshot struct {
	products   []model.Product
	byCategory map[model.ProductCategory][]model.Product
	bySKU      map[string]model.Product
}

type catalogService struct {
	productRepo repository.ProductRepository
	snapshot    atomic.Pointer[catalogSnapshot]
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	s := &catalogService{productRepo: productRepo}
	s.snapshot.Store(&catalogSnapshot{
		byCategory: map[model.ProductCategory][]model.Product{},
		bySKU:      map[string]model.Product{},
	})
	return s
}

func (s *catalogService) Refresh() error {
	logger.Debug("Refreshing catalog snapshot", nil)

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load products for catalog snapshot", err)
		return err
	}

	snap := &catalogSnapshot{
		products:   products,
		byCategory: make(map[model.ProductCategory][]model.Product, len(model.ProductCategories())),
		bySKU:      make(map[string]model.Product, len(products)),
	}
	for _, p := range products {
		snap.byCategory[p.Category] = append(snap.byCategory[p.Category], p)
		snap.bySKU[p.SKUID] = p
	}
	s.snapshot.Store(snap)

	logger.Info("Catalog snapshot refreshed", map[string]interface{}{
		"product_count": len(products),
	})
	return nil
}

func (s *catalogService) Products() []model.Product {
	return s.snapshot.Load().products
}

func (s *catalogService) ProductsByCategory(category model.ProductCategory) []model.Product {
	return s.snapshot.Load().byCategory[category]
}

func (s *catalogService) ProductBySKU(sku string) (model.Product, bool) {
	p, ok := s.snapshot.Load().bySKU[sku]
	return p, ok
}
