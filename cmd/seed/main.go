package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/minseokim/coordi-backend/config"
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/repository"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// 상품 카탈로그 XLSX 임포터
// 컬럼: sku_id, title, brand_name, category, sub_category, lowest_price,
//       color_family, style, season, tags, featured_image
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			fmt.Printf("Failed to import %s: %v\n", products[i].SKUID, err)
			continue
		}
		imported++
		if imported%100 == 0 {
			fmt.Printf("Imported %d products...\n", imported)
		}
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seenSKUs := make(map[string]bool)
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 9 {
			skippedCount++
			continue
		}

		skuID := strings.TrimSpace(row[0])
		title := strings.TrimSpace(row[1])
		brandName := strings.TrimSpace(row[2])
		category := model.ProductCategory(strings.TrimSpace(row[3]))
		subCategory := strings.TrimSpace(row[4])
		priceStr := strings.TrimSpace(row[5])
		colorFamily := model.ColorFamily(strings.TrimSpace(row[6]))
		style := model.StyleType(strings.TrimSpace(row[7]))
		season := model.Season(strings.TrimSpace(row[8]))

		var tags []string
		if len(row) > 9 {
			for _, tag := range strings.Split(row[9], ",") {
				if t := strings.TrimSpace(tag); t != "" {
					tags = append(tags, t)
				}
			}
		}

		featuredImage := ""
		if len(row) > 10 {
			featuredImage = strings.TrimSpace(row[10])
		}

		// 필수 항목 및 enum 검증
		if skuID == "" || title == "" || !category.Valid() {
			skippedCount++
			continue
		}
		if colorFamily != "" && !colorFamily.Valid() {
			skippedCount++
			continue
		}
		if style != "" && !style.Valid() {
			skippedCount++
			continue
		}
		if season == "" {
			season = model.SeasonAll
		}
		if !season.Valid() {
			skippedCount++
			continue
		}

		price, err := strconv.Atoi(priceStr)
		if err != nil || price < 0 {
			// 가격이 없거나 깨진 행은 품절 상품으로 들여온다
			price = 0
		}

		// SKU 중복 제거
		if seenSKUs[skuID] {
			skippedCount++
			continue
		}
		seenSKUs[skuID] = true

		products = append(products, model.Product{
			SKUID:         skuID,
			Title:         title,
			BrandName:     brandName,
			Category:      category,
			SubCategory:   subCategory,
			LowestPrice:   price,
			ColorFamily:   colorFamily,
			Style:         style,
			Season:        season,
			Tags:          tags,
			FeaturedImage: featuredImage,
		})
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return products, nil
}
