package recommend

import (
	"strings"

	"github.com/minseokim/coordi-backend/internal/app/model"
)

// Static compatibility tables. Initialized once, read-only afterwards.
//
// Both matrices store a single triangle; lookups mirror the pair. Any pair
// missing from the tables resolves to defaultCompatibility, so lookups are
// total over the enum cross-products.
const (
	defaultCompatibility = 0.5
	defaultBrandTier     = 2 // mid-tier for unknown brands
)

// colorHarmonyMatrix 색상 계열 조합 점수.
// 같은 색끼리는 일부러 낮게 잡는다 (너무 깔맞춤이면 단조로움).
var colorHarmonyMatrix = map[model.ColorFamily]map[model.ColorFamily]float64{
	model.ColorBlack: {
		model.ColorBlack: 0.7, model.ColorWhite: 1.0, model.ColorGray: 0.9,
		model.ColorBeige: 0.85, model.ColorBrown: 0.75, model.ColorNavy: 0.8,
		model.ColorBlue: 0.85, model.ColorSkyblue: 0.8, model.ColorGreen: 0.8,
		model.ColorKhaki: 0.8, model.ColorRed: 0.85, model.ColorPink: 0.8,
		model.ColorPurple: 0.8, model.ColorYellow: 0.75,
	},
	model.ColorWhite: {
		model.ColorWhite: 0.6, model.ColorGray: 0.9, model.ColorBeige: 0.9,
		model.ColorBrown: 0.85, model.ColorNavy: 0.85, model.ColorBlue: 0.9,
		model.ColorSkyblue: 0.9, model.ColorGreen: 0.85, model.ColorKhaki: 0.85,
		model.ColorRed: 0.8, model.ColorPink: 0.85, model.ColorPurple: 0.75,
		model.ColorYellow: 0.8,
	},
	model.ColorGray: {
		model.ColorGray: 0.65, model.ColorBeige: 0.8, model.ColorBrown: 0.75,
		model.ColorNavy: 0.85, model.ColorBlue: 0.85, model.ColorSkyblue: 0.8,
		model.ColorGreen: 0.75, model.ColorKhaki: 0.75, model.ColorRed: 0.75,
		model.ColorPink: 0.8, model.ColorPurple: 0.75, model.ColorYellow: 0.7,
	},
	model.ColorBeige: {
		model.ColorBeige: 0.7, model.ColorBrown: 0.9, model.ColorNavy: 0.85,
		model.ColorBlue: 0.8, model.ColorSkyblue: 0.8, model.ColorGreen: 0.8,
		model.ColorKhaki: 0.85, model.ColorRed: 0.7, model.ColorPink: 0.75,
		model.ColorPurple: 0.65, model.ColorYellow: 0.75,
	},
	model.ColorBrown: {
		model.ColorBrown: 0.7, model.ColorNavy: 0.75, model.ColorBlue: 0.7,
		model.ColorSkyblue: 0.65, model.ColorGreen: 0.75, model.ColorKhaki: 0.85,
		model.ColorRed: 0.6, model.ColorPink: 0.65, model.ColorPurple: 0.55,
		model.ColorYellow: 0.7,
	},
	model.ColorNavy: {
		model.ColorNavy: 0.7, model.ColorBlue: 0.75, model.ColorSkyblue: 0.8,
		model.ColorGreen: 0.7, model.ColorKhaki: 0.75, model.ColorRed: 0.75,
		model.ColorPink: 0.7, model.ColorPurple: 0.65, model.ColorYellow: 0.75,
	},
	model.ColorBlue: {
		model.ColorBlue: 0.65, model.ColorSkyblue: 0.8, model.ColorGreen: 0.65,
		model.ColorKhaki: 0.7, model.ColorRed: 0.6, model.ColorPink: 0.7,
		model.ColorPurple: 0.65, model.ColorYellow: 0.7,
	},
	model.ColorSkyblue: {
		model.ColorSkyblue: 0.65, model.ColorGreen: 0.65, model.ColorKhaki: 0.65,
		model.ColorRed: 0.55, model.ColorPink: 0.75, model.ColorPurple: 0.6,
		model.ColorYellow: 0.7,
	},
	model.ColorGreen: {
		model.ColorGreen: 0.6, model.ColorKhaki: 0.8, model.ColorRed: 0.55,
		model.ColorPink: 0.6, model.ColorPurple: 0.55, model.ColorYellow: 0.7,
	},
	model.ColorKhaki: {
		model.ColorKhaki: 0.65, model.ColorRed: 0.55, model.ColorPink: 0.6,
		model.ColorPurple: 0.5, model.ColorYellow: 0.65,
	},
	model.ColorRed: {
		model.ColorRed: 0.55, model.ColorPink: 0.6, model.ColorPurple: 0.6,
		model.ColorYellow: 0.6,
	},
	model.ColorPink: {
		model.ColorPink: 0.6, model.ColorPurple: 0.7, model.ColorYellow: 0.65,
	},
	model.ColorPurple: {
		model.ColorPurple: 0.55, model.ColorYellow: 0.55,
	},
	model.ColorYellow: {
		model.ColorYellow: 0.6,
	},
}

// styleCompatMatrix 스타일 조합 점수 (상삼각).
var styleCompatMatrix = map[model.StyleType]map[model.StyleType]float64{
	model.StyleCasual: {
		model.StyleCasual: 0.9, model.StyleFormal: 0.6, model.StyleStreet: 0.85,
		model.StyleSporty: 0.8, model.StyleMinimal: 0.9, model.StyleVintage: 0.8,
	},
	model.StyleFormal: {
		model.StyleFormal: 0.9, model.StyleStreet: 0.4, model.StyleSporty: 0.3,
		model.StyleMinimal: 0.85, model.StyleVintage: 0.6,
	},
	model.StyleStreet: {
		model.StyleStreet: 0.85, model.StyleSporty: 0.75, model.StyleMinimal: 0.6,
		model.StyleVintage: 0.7,
	},
	model.StyleSporty: {
		model.StyleSporty: 0.85, model.StyleMinimal: 0.6, model.StyleVintage: 0.45,
	},
	model.StyleMinimal: {
		model.StyleMinimal: 0.9, model.StyleVintage: 0.65,
	},
	model.StyleVintage: {
		model.StyleVintage: 0.8,
	},
}

// brandTiers 브랜드 등급 (1~5, 가격/포지셔닝 기준). 키는 소문자.
var brandTiers = map[string]int{
	// 럭셔리
	"gucci":         5,
	"prada":         5,
	"saint laurent": 5,
	"burberry":      5,
	"bottega veneta": 5,

	// 컨템포러리
	"acne studios":   4,
	"ami":            4,
	"maison kitsune": 4,
	"stone island":   4,
	"coach":          4,

	// 미드레인지
	"nike":        3,
	"adidas":      3,
	"new balance": 3,
	"carhartt":    3,
	"levis":       3,
	"lacoste":     3,
	"zara":        3,
	"cos":         3,

	// SPA
	"uniqlo":           2,
	"spao":             2,
	"gap":              2,
	"h&m":              2,
	"musinsa standard": 2,
	"topten":           2,

	// 초저가
	"shein": 1,
	"cider": 1,
}

// ColorHarmony returns the harmony score for a pair of color families in
// [0,1]. The pair order does not matter.
func ColorHarmony(a, b model.ColorFamily) float64 {
	if row, ok := colorHarmonyMatrix[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	if row, ok := colorHarmonyMatrix[b]; ok {
		if v, ok := row[a]; ok {
			return v
		}
	}
	return defaultCompatibility
}

// StyleCompatibility returns the compatibility score for a pair of styles in
// [0,1]. The pair order does not matter.
func StyleCompatibility(a, b model.StyleType) float64 {
	if row, ok := styleCompatMatrix[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	if row, ok := styleCompatMatrix[b]; ok {
		if v, ok := row[a]; ok {
			return v
		}
	}
	return defaultCompatibility
}

// BrandTier returns the 1-5 tier for a brand name, case-insensitive.
// Unknown brands are treated as mid-tier (2).
func BrandTier(brand string) int {
	if tier, ok := brandTiers[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return tier
	}
	return defaultBrandTier
}
