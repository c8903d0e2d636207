package db

import (
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedProducts(); err != nil {
		logger.Error("Failed to seed products", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedProducts 기본 상품 카탈로그 생성 (추천 데모용)
func seedProducts() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Products already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding product catalog...")

	products := []model.Product{
		// 상의
		{SKUID: "TOP_WHITE_TEE", Title: "릴렉스드 화이트 티셔츠", BrandName: "uniqlo", Category: model.CategoryTop, SubCategory: "tshirt", LowestPrice: 19900, ColorFamily: model.ColorWhite, Style: model.StyleCasual, Season: model.SeasonAll, Tags: []string{model.TagBestseller}},
		{SKUID: "TOP_BLACK_HOODIE", Title: "헤비웨이트 블랙 후디", BrandName: "nike", Category: model.CategoryTop, SubCategory: "hoodie", LowestPrice: 89000, ColorFamily: model.ColorBlack, Style: model.StyleStreet, Season: model.SeasonFall},
		{SKUID: "TOP_NAVY_KNIT", Title: "메리노 네이비 니트", BrandName: "cos", Category: model.CategoryTop, SubCategory: "knit", LowestPrice: 119000, ColorFamily: model.ColorNavy, Style: model.StyleMinimal, Season: model.SeasonWinter},
		{SKUID: "TOP_BEIGE_SHIRT", Title: "오버핏 베이지 셔츠", BrandName: "zara", Category: model.CategoryTop, SubCategory: "shirt", LowestPrice: 49900, ColorFamily: model.ColorBeige, Style: model.StyleCasual, Season: model.SeasonSpring},
		{SKUID: "TOP_GRAY_BLAZER", Title: "울 블렌드 그레이 블레이저", BrandName: "ami", Category: model.CategoryTop, SubCategory: "blazer", LowestPrice: 450000, ColorFamily: model.ColorGray, Style: model.StyleFormal, Season: model.SeasonFall},

		// 하의
		{SKUID: "BOTTOM_BLUE_DENIM", Title: "스트레이트 데님 팬츠", BrandName: "levis", Category: model.CategoryBottom, SubCategory: "denim", LowestPrice: 99000, ColorFamily: model.ColorBlue, Style: model.StyleCasual, Season: model.SeasonAll, Tags: []string{model.TagBestseller}},
		{SKUID: "BOTTOM_BLACK_CARGO", Title: "와이드 블랙 카고 팬츠", BrandName: "carhartt", Category: model.CategoryBottom, SubCategory: "cargo", LowestPrice: 129000, ColorFamily: model.ColorBlack, Style: model.StyleStreet, Season: model.SeasonAll},
		{SKUID: "BOTTOM_BEIGE_CHINO", Title: "테이퍼드 베이지 치노", BrandName: "uniqlo", Category: model.CategoryBottom, SubCategory: "chino", LowestPrice: 39900, ColorFamily: model.ColorBeige, Style: model.StyleMinimal, Season: model.SeasonSpring},
		{SKUID: "BOTTOM_GRAY_SLACKS", Title: "세미와이드 그레이 슬랙스", BrandName: "cos", Category: model.CategoryBottom, SubCategory: "slacks", LowestPrice: 89000, ColorFamily: model.ColorGray, Style: model.StyleFormal, Season: model.SeasonAll},

		// 신발
		{SKUID: "SHOE_WHITE_SNEAKER", Title: "클래식 화이트 스니커즈", BrandName: "adidas", Category: model.CategoryFootwear, SubCategory: "sneakers", LowestPrice: 119000, ColorFamily: model.ColorWhite, Style: model.StyleCasual, Season: model.SeasonAll, Tags: []string{model.TagBestseller}},
		{SKUID: "SHOE_BLACK_RUNNER", Title: "데일리 블랙 러닝화", BrandName: "nike", Category: model.CategoryFootwear, SubCategory: "running", LowestPrice: 139000, ColorFamily: model.ColorBlack, Style: model.StyleSporty, Season: model.SeasonAll},
		{SKUID: "SHOE_BROWN_LOAFER", Title: "페니 브라운 로퍼", BrandName: "coach", Category: model.CategoryFootwear, SubCategory: "loafer", LowestPrice: 350000, ColorFamily: model.ColorBrown, Style: model.StyleFormal, Season: model.SeasonFall},
		{SKUID: "SHOE_GRAY_NB", Title: "그레이 트레이닝 스니커즈", BrandName: "new balance", Category: model.CategoryFootwear, SubCategory: "sneakers", LowestPrice: 129000, ColorFamily: model.ColorGray, Style: model.StyleSporty, Season: model.SeasonAll},

		// 액세서리
		{SKUID: "ACC_BLACK_CAP", Title: "베이직 블랙 볼캡", BrandName: "nike", Category: model.CategoryAccessory, SubCategory: "cap", LowestPrice: 29000, ColorFamily: model.ColorBlack, Style: model.StyleCasual, Season: model.SeasonAll, Tags: []string{model.TagBestseller}},
		{SKUID: "ACC_BROWN_BELT", Title: "레더 브라운 벨트", BrandName: "coach", Category: model.CategoryAccessory, SubCategory: "belt", LowestPrice: 150000, ColorFamily: model.ColorBrown, Style: model.StyleFormal, Season: model.SeasonAll},
		{SKUID: "ACC_NAVY_SCARF", Title: "캐시미어 네이비 머플러", BrandName: "acne studios", Category: model.CategoryAccessory, SubCategory: "scarf", LowestPrice: 290000, ColorFamily: model.ColorNavy, Style: model.StyleMinimal, Season: model.SeasonWinter},
	}

	totalInserted := 0
	for _, product := range products {
		if err := DB.Create(&product).Error; err != nil {
			logger.Error("Failed to create product", err, map[string]interface{}{
				"sku_id": product.SKUID,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Product catalog seeded successfully", map[string]interface{}{
		"total_products": totalInserted,
	})

	return nil
}
