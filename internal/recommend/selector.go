package recommend

import (
	"math"
	"math/rand"
	"sort"

	"github.com/minseokim/coordi-backend/internal/app/model"
)

// Rand is the random source used for selection tie-breaking. Tests substitute
// a deterministic stub; production uses the shared math/rand source.
type Rand interface {
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// SystemRand returns the default random source. The top-level math/rand
// functions are safe for concurrent use.
func SystemRand() Rand { return systemRand{} }

// Selection score weights. The bestseller bonus is additive on top.
const (
	selectWeightColor = 0.40
	selectWeightStyle = 0.35
	selectWeightTier  = 0.15
	bestsellerBonus   = 0.10

	// 후보 상위 몇 개 중에서 랜덤으로 뽑을지. 호출마다 코디가 조금씩
	// 달라지게 하는 장치라 1로 줄이면 안 된다.
	selectionPoolSize = 3
)

type scoredCandidate struct {
	product model.Product
	score   float64
}

// pickNext chooses the next item for an outfit from pool, scoring each
// candidate against the items already selected. Returns false when the pool
// is empty.
func pickNext(rng Rand, pool, selected []model.Product, preferred model.StyleType) (model.Product, bool) {
	if len(pool) == 0 {
		return model.Product{}, false
	}

	candidates := make([]scoredCandidate, 0, len(pool))
	for _, candidate := range pool {
		candidates = append(candidates, scoredCandidate{
			product: candidate,
			score:   selectionScore(candidate, selected, preferred),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	top := selectionPoolSize
	if len(candidates) < top {
		top = len(candidates)
	}
	return candidates[rng.Intn(top)].product, true
}

func selectionScore(candidate model.Product, selected []model.Product, preferred model.StyleType) float64 {
	score := 0.0

	// 색상: 이미 고른 아이템들과의 조화 평균
	if len(selected) > 0 {
		var sum float64
		for _, s := range selected {
			sum += ColorHarmony(candidate.ColorFamily, s.ColorFamily)
		}
		score += selectWeightColor * (sum / float64(len(selected)))
	} else {
		score += selectWeightColor
	}

	// 스타일: 고른 아이템 기준, 없으면 선호 스타일 기준
	if len(selected) > 0 {
		var sum float64
		for _, s := range selected {
			sum += StyleCompatibility(candidate.Style, s.Style)
		}
		score += selectWeightStyle * (sum / float64(len(selected)))
	} else if preferred != "" {
		score += selectWeightStyle * StyleCompatibility(candidate.Style, preferred)
	} else {
		score += selectWeightStyle
	}

	// 브랜드 등급 근접 보너스
	if len(selected) > 0 {
		var tierSum float64
		for _, s := range selected {
			tierSum += float64(BrandTier(s.BrandName))
		}
		avgTier := tierSum / float64(len(selected))
		diff := math.Abs(avgTier - float64(BrandTier(candidate.BrandName)))
		score += selectWeightTier * math.Max(0, 1-diff/3)
	} else {
		score += selectWeightTier
	}

	if candidate.HasTag(model.TagBestseller) {
		score += bestsellerBonus
	}

	return score
}
