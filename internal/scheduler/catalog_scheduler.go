package scheduler

import (
	"github.com/minseokim/coordi-backend/internal/app/service"
	"github.com/minseokim/coordi-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CatalogScheduler 추천 카탈로그 스냅샷 주기 갱신 스케줄러
type CatalogScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	spec           string
}

// NewCatalogScheduler 카탈로그 스케줄러 생성
// spec은 cron 표현식 또는 "@every 10m" 형식
func NewCatalogScheduler(catalogService service.CatalogService, spec string) *CatalogScheduler {
	return &CatalogScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		spec:           spec,
	}
}

// Start 스케줄러 시작
func (s *CatalogScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled catalog refresh", nil)

		if err := s.catalogService.Refresh(); err != nil {
			logger.Error("Failed to refresh catalog from scheduler", err)
			return
		}

		logger.Info("Successfully refreshed catalog from scheduler", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog refresh", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped", nil)
}
