package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/app/service"
	apperrors "github.com/minseokim/coordi-backend/internal/errors"
	"github.com/minseokim/coordi-backend/internal/middleware"
)

type RecommendController struct {
	recommendService service.RecommendService
}

func NewRecommendController(recommendService service.RecommendService) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// GetBaseProductOptions lists every product an outfit can be built around
// GET /api/v1/recommendations/base-products
func (ctrl *RecommendController) GetBaseProductOptions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	options := ctrl.recommendService.GetBaseProductOptions()

	log.Debug("Base product options returned", map[string]interface{}{
		"count": len(options),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": options,
		"count":    len(options),
	})
}

// RecommendOutfits builds outfit recommendations around a base product.
// An unknown base product id yields an empty outfit list, not an error.
// POST /api/v1/recommendations
func (ctrl *RecommendController) RecommendOutfits(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid recommendation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	resp := ctrl.recommendService.GenerateOutfitRecommendations(req)

	c.JSON(http.StatusOK, resp)
}
