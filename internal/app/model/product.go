package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryTop       ProductCategory = "top"       // 상의
	CategoryBottom    ProductCategory = "bottom"    // 하의
	CategoryFootwear  ProductCategory = "footwear"  // 신발
	CategoryAccessory ProductCategory = "accessory" // 액세서리
)

// ProductCategories lists every catalog category. Order matters: the
// recommendation engine resolves a base product's slot in this priority order.
func ProductCategories() []ProductCategory {
	return []ProductCategory{CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory}
}

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory:
		return true
	}
	return false
}

// ColorFamily 색상 계열 (정확한 색상이 아니라 조화 판단용 버킷)
type ColorFamily string

const (
	ColorBlack   ColorFamily = "black"
	ColorWhite   ColorFamily = "white"
	ColorGray    ColorFamily = "gray"
	ColorBeige   ColorFamily = "beige"
	ColorBrown   ColorFamily = "brown"
	ColorNavy    ColorFamily = "navy"
	ColorBlue    ColorFamily = "blue"
	ColorSkyblue ColorFamily = "skyblue"
	ColorGreen   ColorFamily = "green"
	ColorKhaki   ColorFamily = "khaki"
	ColorRed     ColorFamily = "red"
	ColorPink    ColorFamily = "pink"
	ColorPurple  ColorFamily = "purple"
	ColorYellow  ColorFamily = "yellow"
)

// ColorFamilies returns the closed set of color families.
func ColorFamilies() []ColorFamily {
	return []ColorFamily{
		ColorBlack, ColorWhite, ColorGray, ColorBeige, ColorBrown,
		ColorNavy, ColorBlue, ColorSkyblue, ColorGreen, ColorKhaki,
		ColorRed, ColorPink, ColorPurple, ColorYellow,
	}
}

func (c ColorFamily) Valid() bool {
	for _, v := range ColorFamilies() {
		if c == v {
			return true
		}
	}
	return false
}

type StyleType string

const (
	StyleCasual  StyleType = "casual"
	StyleFormal  StyleType = "formal"
	StyleStreet  StyleType = "street"
	StyleSporty  StyleType = "sporty"
	StyleMinimal StyleType = "minimal"
	StyleVintage StyleType = "vintage"
)

// StyleTypes returns the closed set of style types.
func StyleTypes() []StyleType {
	return []StyleType{StyleCasual, StyleFormal, StyleStreet, StyleSporty, StyleMinimal, StyleVintage}
}

func (s StyleType) Valid() bool {
	for _, v := range StyleTypes() {
		if s == v {
			return true
		}
	}
	return false
}

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all" // 사계절
)

func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll:
		return true
	}
	return false
}

// TagBestseller marks products that get a selection bonus in recommendations.
const TagBestseller = "bestseller"

type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	SKUID         string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku_id"` // 상품 고유 코드
	Title         string          `gorm:"not null" json:"title"`
	BrandName     string          `gorm:"type:varchar(100)" json:"brand_name"`
	FeaturedImage string          `json:"featured_image"`
	Category      ProductCategory `gorm:"type:varchar(30);index" json:"category"`
	SubCategory   string          `gorm:"type:varchar(50)" json:"sub_category"`
	LowestPrice   int             `gorm:"default:0" json:"lowest_price"` // 0이면 품절 (추천 대상 제외)
	ColorFamily   ColorFamily     `gorm:"type:varchar(20)" json:"color_family"`
	Style         StyleType       `gorm:"type:varchar(20)" json:"style"`
	Season        Season          `gorm:"type:varchar(10);default:'all'" json:"season"`
	Tags          []string        `gorm:"serializer:json" json:"tags"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Available reports whether the product can appear in recommendations.
// Price 0 means sold out / no offer.
func (p Product) Available() bool {
	return p.LowestPrice > 0
}

// HasTag checks the tag set (linear scan, tag sets are tiny).
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
