package service

import (
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/recommend"
	"github.com/minseokim/coordi-backend/pkg/logger"
)

type RecommendService interface {
	GetBaseProductOptions() []model.Product
	GenerateOutfitRecommendations(req model.RecommendationRequest) model.RecommendationResponse
}

type recommendService struct {
	engine         *recommend.Engine
	defaultOutfits int
}

// NewRecommendService wires the engine against the live catalog snapshot.
// rng may be nil; the engine then uses the process-wide source.
// defaultOutfits applies when a request leaves num_outfits unset.
func NewRecommendService(catalog CatalogService, rng recommend.Rand, defaultOutfits int) RecommendService {
	return &recommendService{
		engine:         recommend.NewEngine(catalog, rng),
		defaultOutfits: defaultOutfits,
	}
}

func (s *recommendService) GetBaseProductOptions() []model.Product {
	logger.Debug("Fetching base product options", nil)

	options := s.engine.BaseProductOptions()

	logger.Info("Base product options fetched", map[string]interface{}{
		"count": len(options),
	})
	return options
}

func (s *recommendService) GenerateOutfitRecommendations(req model.RecommendationRequest) model.RecommendationResponse {
	if req.NumOutfits <= 0 && s.defaultOutfits > 0 {
		req.NumOutfits = s.defaultOutfits
	}

	logger.Debug("Generating outfit recommendations", map[string]interface{}{
		"base_product_id": req.BaseProductID,
		"preferred_style": req.PreferredStyle,
		"season":          req.Season,
		"num_outfits":     req.NumOutfits,
	})

	resp := s.engine.Recommend(req)

	if len(resp.Outfits) == 0 {
		logger.Warn("No outfits generated", map[string]interface{}{
			"base_product_id": req.BaseProductID,
		})
	} else {
		logger.Info("Outfit recommendations generated", map[string]interface{}{
			"base_product_id":    req.BaseProductID,
			"outfit_count":       len(resp.Outfits),
			"processing_time_ms": resp.ProcessingTimeMS,
		})
	}
	return resp
}
