package recommend

import (
	"math"

	"github.com/minseokim/coordi-backend/internal/app/model"
)

// Dimension scorers. Each takes the items of a candidate outfit and returns a
// score in [0,1]. They are pure functions over the static matrices.

// ColorHarmonyScore 아이템 전체 쌍의 색상 조화 평균.
func ColorHarmonyScore(items []model.Product) float64 {
	if len(items) < 2 {
		return defaultCompatibility
	}
	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			sum += ColorHarmony(items[i].ColorFamily, items[j].ColorFamily)
			pairs++
		}
	}
	return sum / float64(pairs)
}

// StyleMatchScore 아이템 전체 쌍의 스타일 호환 평균.
func StyleMatchScore(items []model.Product) float64 {
	if len(items) < 2 {
		return defaultCompatibility
	}
	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			sum += StyleCompatibility(items[i].Style, items[j].Style)
			pairs++
		}
	}
	return sum / float64(pairs)
}

// BrandCohesionScore scores how close the items' brand tiers sit to each
// other. A tier variance of 4 (tier 1 mixed with tier 5) zeroes the score.
func BrandCohesionScore(items []model.Product) float64 {
	if len(items) == 0 {
		return defaultCompatibility
	}
	tiers := make([]float64, len(items))
	var sum float64
	for i, item := range items {
		tiers[i] = float64(BrandTier(item.BrandName))
		sum += tiers[i]
	}
	mean := sum / float64(len(tiers))

	var variance float64
	for _, t := range tiers {
		variance += (t - mean) * (t - mean)
	}
	variance /= float64(len(tiers))

	return math.Max(0, 1-variance/4)
}

// PriceBalanceScore scores how evenly the items are priced, using squared
// relative deviation from the mean price. Sold-out items (price 0) are
// ignored; if nothing has a price the score is neutral.
//
// This dimension carries zero weight in ranking but is still reported.
func PriceBalanceScore(items []model.Product) float64 {
	prices := make([]float64, 0, len(items))
	var sum float64
	for _, item := range items {
		if item.LowestPrice > 0 {
			prices = append(prices, float64(item.LowestPrice))
			sum += float64(item.LowestPrice)
		}
	}
	if len(prices) == 0 {
		return defaultCompatibility
	}
	mean := sum / float64(len(prices))

	var variance float64
	for _, p := range prices {
		rel := (p - mean) / mean
		variance += rel * rel
	}
	variance /= float64(len(prices))

	return math.Max(0, 1-variance)
}

// SeasonFitScore returns the fraction of items wearable in the target season.
// Items tagged "all" fit every season. No target (or "all") means no
// constraint and a perfect score.
func SeasonFitScore(items []model.Product, target model.Season) float64 {
	if target == "" || target == model.SeasonAll {
		return 1.0
	}
	if len(items) == 0 {
		return defaultCompatibility
	}
	var fit int
	for _, item := range items {
		if item.Season == target || item.Season == model.SeasonAll {
			fit++
		}
	}
	return float64(fit) / float64(len(items))
}

// Breakdown computes all five dimensions for an item set.
func Breakdown(items []model.Product, target model.Season) model.ScoreBreakdown {
	return model.ScoreBreakdown{
		ColorHarmony:  ColorHarmonyScore(items),
		StyleMatch:    StyleMatchScore(items),
		BrandCohesion: BrandCohesionScore(items),
		PriceBalance:  PriceBalanceScore(items),
		SeasonFit:     SeasonFitScore(items, target),
	}
}
