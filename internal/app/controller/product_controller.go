package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/service"
	apperrors "github.com/minseokim/coordi-backend/internal/errors"
	"github.com/minseokim/coordi-backend/internal/middleware"
	"github.com/xuri/excelize/v2"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	SKUID         string   `json:"sku_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	BrandName     string   `json:"brand_name"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category" binding:"required"`
	SubCategory   string   `json:"sub_category"`
	LowestPrice   int      `json:"lowest_price"`
	ColorFamily   string   `json:"color_family"`
	Style         string   `json:"style"`
	Season        string   `json:"season"`
	Tags          []string `json:"tags"`
}

type UpdateProductRequest struct {
	Title         string   `json:"title"`
	BrandName     string   `json:"brand_name"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category"`
	SubCategory   string   `json:"sub_category"`
	LowestPrice   *int     `json:"lowest_price"`
	ColorFamily   string   `json:"color_family"`
	Style         string   `json:"style"`
	Season        string   `json:"season"`
	Tags          []string `json:"tags"`
}

func parseListOptions(c *gin.Context) service.ProductListOptions {
	opts := service.ProductListOptions{
		Search:        c.Query("search"),
		AvailableOnly: c.Query("available") == "true",
		SortAscending: c.Query("order") == "asc",
	}

	if v := c.Query("category"); v != "" {
		category := model.ProductCategory(v)
		opts.Category = &category
	}
	if v := c.Query("style"); v != "" {
		style := model.StyleType(v)
		opts.Style = &style
	}
	if v := c.Query("color_family"); v != "" {
		color := model.ColorFamily(v)
		opts.ColorFamily = &color
	}
	if v := c.Query("season"); v != "" {
		season := model.Season(v)
		opts.Season = &season
	}
	if v := c.Query("sort"); v != "" {
		opts.Sort = service.ProductSort(v)
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		opts.Offset = v
	}

	return opts
}

// ListProducts returns the product catalog with optional filters
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := parseListOptions(c)

	products, err := ctrl.productService.ListProducts(opts)
	if err != nil {
		log.Error("Failed to list products", err, nil)
		apperrors.InternalError(c, "상품 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns a single product by ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to get product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "상품 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductBySKU returns a single product by SKU code
// GET /api/v1/products/sku/:sku
func (ctrl *ProductController) GetProductBySKU(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sku := c.Param("sku")
	if sku == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 SKU입니다")
		return
	}

	product, err := ctrl.productService.GetProductBySKU(sku)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to get product by SKU", err, map[string]interface{}{
			"sku_id": sku,
		})
		apperrors.InternalError(c, "상품 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a product to the catalog (admin only)
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create product request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	product := &model.Product{
		SKUID:         req.SKUID,
		Title:         req.Title,
		BrandName:     req.BrandName,
		FeaturedImage: req.FeaturedImage,
		Category:      model.ProductCategory(req.Category),
		SubCategory:   req.SubCategory,
		LowestPrice:   req.LowestPrice,
		ColorFamily:   model.ColorFamily(req.ColorFamily),
		Style:         model.StyleType(req.Style),
		Season:        model.Season(req.Season),
		Tags:          req.Tags,
	}

	if err := ctrl.productService.CreateProduct(product); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProductAttribute):
			apperrors.BadRequest(c, apperrors.ProductBadEnum, "카테고리/컬러/스타일 값이 올바르지 않습니다")
		case errors.Is(err, service.ErrProductSKUExists):
			apperrors.Conflict(c, apperrors.ProductSKUExists, "이미 등록된 SKU입니다")
		default:
			log.Error("Failed to create product", err, map[string]interface{}{
				"sku_id": req.SKUID,
			})
			apperrors.InternalError(c, "상품 등록에 실패했습니다")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates an existing product (admin only)
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update product request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	existing, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "상품 조회에 실패했습니다")
		return
	}

	product := *existing
	if req.Title != "" {
		product.Title = req.Title
	}
	if req.BrandName != "" {
		product.BrandName = req.BrandName
	}
	if req.FeaturedImage != "" {
		product.FeaturedImage = req.FeaturedImage
	}
	if req.Category != "" {
		product.Category = model.ProductCategory(req.Category)
	}
	if req.SubCategory != "" {
		product.SubCategory = req.SubCategory
	}
	if req.LowestPrice != nil {
		product.LowestPrice = *req.LowestPrice
	}
	if req.ColorFamily != "" {
		product.ColorFamily = model.ColorFamily(req.ColorFamily)
	}
	if req.Style != "" {
		product.Style = model.StyleType(req.Style)
	}
	if req.Season != "" {
		product.Season = model.Season(req.Season)
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}

	if err := ctrl.productService.UpdateProduct(&product); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProductAttribute):
			apperrors.BadRequest(c, apperrors.ProductBadEnum, "카테고리/컬러/스타일 값이 올바르지 않습니다")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": id,
			})
			apperrors.InternalError(c, "상품 수정에 실패했습니다")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product from the catalog (admin only)
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	if err := ctrl.productService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "상품 삭제에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// ExportProducts streams the catalog as an xlsx file (admin only)
// GET /api/v1/products/export
func (ctrl *ProductController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.ListProducts(service.ProductListOptions{})
	if err != nil {
		log.Error("Failed to load products for export", err, nil)
		apperrors.InternalError(c, "상품 내보내기에 실패했습니다")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"sku_id", "title", "brand_name", "category", "sub_category", "lowest_price", "color_family", "style", "season", "tags", "featured_image"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		log.Error("Failed to write export header", err, nil)
		apperrors.InternalError(c, "상품 내보내기에 실패했습니다")
		return
	}

	for i, p := range products {
		tags := ""
		for j, tag := range p.Tags {
			if j > 0 {
				tags += ","
			}
			tags += tag
		}
		row := []interface{}{p.SKUID, p.Title, p.BrandName, string(p.Category), p.SubCategory, p.LowestPrice, string(p.ColorFamily), string(p.Style), string(p.Season), tags, p.FeaturedImage}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Error("Failed to write export row", err, map[string]interface{}{
				"row": i + 2,
			})
			apperrors.InternalError(c, "상품 내보내기에 실패했습니다")
			return
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("Failed to serialize export file", err, nil)
		apperrors.InternalError(c, "상품 내보내기에 실패했습니다")
		return
	}

	log.Info("Product catalog exported", map[string]interface{}{
		"product_count": len(products),
	})

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
