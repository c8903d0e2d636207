package model

// ScoreBreakdown 코디 평가 5개 차원 점수 (각각 0~1)
type ScoreBreakdown struct {
	ColorHarmony  float64 `json:"color_harmony"`
	StyleMatch    float64 `json:"style_match"`
	BrandCohesion float64 `json:"brand_cohesion"`
	PriceBalance  float64 `json:"price_balance"`
	SeasonFit     float64 `json:"season_fit"`
}

// Outfit 추천된 코디 한 벌. 상의/하의/신발은 필수, 액세서리는 1~2개.
//
// MatchScore is the score shown to users and equals StyleMatch rounded to two
// decimals. Ranking uses a separate internal composite that is never exposed.
type Outfit struct {
	ID             string         `json:"id"`
	Top            Product        `json:"top"`
	Bottom         Product        `json:"bottom"`
	Footwear       Product        `json:"footwear"`
	Accessories    []Product      `json:"accessories"`
	MatchScore     float64        `json:"match_score"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	Reasoning      string         `json:"reasoning"`
	TotalPrice     int            `json:"total_price"`
}

type RecommendationRequest struct {
	BaseProductID  string    `json:"base_product_id" binding:"required"`
	PreferredStyle StyleType `json:"preferred_style" binding:"omitempty,oneof=casual formal street sporty minimal vintage"`
	Season         Season    `json:"season" binding:"omitempty,oneof=spring summer fall winter all"`
	NumOutfits     int       `json:"num_outfits" binding:"omitempty,min=1,max=10"`
}

type RecommendationResponse struct {
	Outfits          []Outfit `json:"outfits"`
	BaseProduct      Product  `json:"base_product"`
	ProcessingTimeMS float64  `json:"processing_time_ms"`
	// CacheHit is part of the response contract but caching is not
	// implemented; it is always false.
	CacheHit bool `json:"cache_hit"`
}
