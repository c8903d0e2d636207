package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minseokim/coordi-backend/internal/app/model"
)

// Catalog is the read-only product source the engine consumes. Implementations
// must return stable, immutable data for the duration of a call.
type Catalog interface {
	Products() []model.Product
	ProductsByCategory(category model.ProductCategory) []model.Product
	ProductBySKU(sku string) (model.Product, bool)
}

// Composite ranking weights. Price balance is deliberately weighted 0: it is
// computed and reported but does not move the ranking.
const (
	rankWeightColor  = 0.35
	rankWeightStyle  = 0.30
	rankWeightBrand  = 0.20
	rankWeightPrice  = 0.00
	rankWeightSeason = 0.15

	// 코디 한 벌당 시도 횟수 상한 배수
	attemptsPerOutfit = 5

	defaultNumOutfits = 3
)

// Engine assembles and ranks outfit recommendations. It is a pure computation
// over the catalog snapshot: no I/O, no state shared between calls.
type Engine struct {
	catalog Catalog
	rng     Rand
}

func NewEngine(catalog Catalog, rng Rand) *Engine {
	if rng == nil {
		rng = SystemRand()
	}
	return &Engine{catalog: catalog, rng: rng}
}

// BaseProductOptions returns every product a user can build an outfit around:
// all catalog products with a price, in catalog order.
func (e *Engine) BaseProductOptions() []model.Product {
	all := e.catalog.Products()
	options := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Available() {
			options = append(options, p)
		}
	}
	return options
}

// scoredOutfit carries the internal composite score used only for ranking.
// It never leaves this package; callers see match_score (= style match).
type scoredOutfit struct {
	outfit    model.Outfit
	sortScore float64
}

// Recommend builds up to req.NumOutfits distinct outfits around the base
// product. An unknown base product id yields a well-formed empty response,
// never an error.
func (e *Engine) Recommend(req model.RecommendationRequest) model.RecommendationResponse {
	start := time.Now()

	numOutfits := req.NumOutfits
	if numOutfits <= 0 {
		numOutfits = defaultNumOutfits
	}

	base, ok := e.catalog.ProductBySKU(req.BaseProductID)
	if !ok {
		return model.RecommendationResponse{
			Outfits:          []model.Outfit{},
			BaseProduct:      model.Product{},
			ProcessingTimeMS: elapsedMS(start),
			CacheHit:         false,
		}
	}

	pools := e.buildPools()
	seen := make(map[string]bool)
	collected := make([]scoredOutfit, 0, numOutfits)

	maxAttempts := attemptsPerOutfit * numOutfits
	for attempt := 0; attempt < maxAttempts && len(collected) < numOutfits; attempt++ {
		outfit, ok := e.assemble(base, pools, req, attempt, seen)
		if !ok {
			continue
		}
		collected = append(collected, outfit)
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].sortScore > collected[j].sortScore
	})
	if len(collected) > numOutfits {
		collected = collected[:numOutfits]
	}

	outfits := make([]model.Outfit, 0, len(collected))
	for _, s := range collected {
		outfits = append(outfits, s.outfit)
	}

	return model.RecommendationResponse{
		Outfits:          outfits,
		BaseProduct:      base,
		ProcessingTimeMS: elapsedMS(start),
		CacheHit:         false,
	}
}

// buildPools partitions the catalog into per-category pools, dropping
// sold-out items.
func (e *Engine) buildPools() map[model.ProductCategory][]model.Product {
	pools := make(map[model.ProductCategory][]model.Product, len(model.ProductCategories()))
	for _, category := range model.ProductCategories() {
		products := e.catalog.ProductsByCategory(category)
		pool := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Available() {
				pool = append(pool, p)
			}
		}
		pools[category] = pool
	}
	return pools
}

// baseSlot resolves which slot the base product occupies, in priority order
// top, bottom, footwear; anything else lands in the accessory slot.
func baseSlot(base model.Product) model.ProductCategory {
	switch base.Category {
	case model.CategoryTop, model.CategoryBottom, model.CategoryFootwear:
		return base.Category
	default:
		return model.CategoryAccessory
	}
}

// assemble runs one outfit-construction attempt. A slot that cannot be filled
// or a duplicate mandatory triple abandons the attempt silently.
func (e *Engine) assemble(
	base model.Product,
	pools map[model.ProductCategory][]model.Product,
	req model.RecommendationRequest,
	attempt int,
	seen map[string]bool,
) (scoredOutfit, bool) {
	slots := make(map[model.ProductCategory]model.Product, 3)
	selected := []model.Product{base}
	var accessories []model.Product

	slot := baseSlot(base)
	if slot == model.CategoryAccessory {
		accessories = append(accessories, base)
	} else {
		slots[slot] = base
	}

	for _, category := range []model.ProductCategory{model.CategoryTop, model.CategoryBottom, model.CategoryFootwear} {
		if _, filled := slots[category]; filled {
			continue
		}
		pool := excludeSelected(pools[category], selected)
		item, ok := pickNext(e.rng, pool, selected, req.PreferredStyle)
		if !ok {
			return scoredOutfit{}, false
		}
		slots[category] = item
		selected = append(selected, item)
	}

	key := dedupKey(slots[model.CategoryTop], slots[model.CategoryBottom], slots[model.CategoryFootwear])
	if seen[key] {
		return scoredOutfit{}, false
	}
	seen[key] = true

	// 액세서리 1~2개, 시도 순번에 따라 번갈아 추가
	targetAccessories := 1 + attempt%2
	for len(accessories) < targetAccessories {
		pool := excludeSelected(pools[model.CategoryAccessory], selected)
		item, ok := pickNext(e.rng, pool, selected, req.PreferredStyle)
		if !ok {
			break
		}
		accessories = append(accessories, item)
		selected = append(selected, item)
	}

	breakdown := Breakdown(selected, req.Season)
	totalPrice := 0
	for _, item := range selected {
		totalPrice += item.LowestPrice
	}

	outfit := model.Outfit{
		ID:             uuid.New().String(),
		Top:            slots[model.CategoryTop],
		Bottom:         slots[model.CategoryBottom],
		Footwear:       slots[model.CategoryFootwear],
		Accessories:    accessories,
		MatchScore:     round2(breakdown.StyleMatch),
		ScoreBreakdown: breakdown,
		Reasoning:      buildReasoning(base, breakdown),
		TotalPrice:     totalPrice,
	}

	sortScore := rankWeightColor*breakdown.ColorHarmony +
		rankWeightStyle*breakdown.StyleMatch +
		rankWeightBrand*breakdown.BrandCohesion +
		rankWeightPrice*breakdown.PriceBalance +
		rankWeightSeason*breakdown.SeasonFit

	return scoredOutfit{outfit: outfit, sortScore: sortScore}, true
}

func excludeSelected(pool, selected []model.Product) []model.Product {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s.SKUID] = true
	}
	out := make([]model.Product, 0, len(pool))
	for _, p := range pool {
		if !chosen[p.SKUID] {
			out = append(out, p)
		}
	}
	return out
}

// dedupKey identifies an outfit by its unordered mandatory triple.
// Accessories do not participate.
func dedupKey(top, bottom, footwear model.Product) string {
	ids := []string{top.SKUID, bottom.SKUID, footwear.SKUID}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// buildReasoning 추천 근거 문구 생성 (사용자 노출용).
func buildReasoning(base model.Product, b model.ScoreBreakdown) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s 컬러 %s 아이템을 베이스로 구성한 코디입니다.", base.ColorFamily, base.Style))

	if b.ColorHarmony >= 0.8 {
		sb.WriteString(" 컬러 조합이 잘 어울리고")
	} else if b.ColorHarmony >= 0.6 {
		sb.WriteString(" 컬러 밸런스가 무난하고")
	} else {
		sb.WriteString(" 포인트가 되는 컬러 조합이며")
	}

	if b.BrandCohesion >= 0.8 {
		sb.WriteString(" 브랜드 결이 비슷해 통일감이 있습니다.")
	} else {
		sb.WriteString(" 브랜드 믹스로 변화를 준 구성입니다.")
	}

	return sb.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// elapsedMS reports wall-clock time in milliseconds with two decimals.
// Clamped to a minimum of 0.01 so the field is never reported as zero.
func elapsedMS(start time.Time) float64 {
	ms := round2(float64(time.Since(start).Nanoseconds()) / 1e6)
	if ms < 0.01 {
		ms = 0.01
	}
	return ms
}
