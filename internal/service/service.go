package service

import (
	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/repository"
	"github.com/rameshsdv/stock-predictor/pkg/cache"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
	"github.com/rameshsdv/stock-predictor/pkg/telegram"
)

type Service struct {
	PredictService   PredictService
	TrackerService   TrackerService
	SchedulerService SchedulerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	notifier *telegram.Notifier,
) *Service {
	predictService := NewPredictService(cfg, log, repo, inmemoryCache, notifier)
	trackerService := NewTrackerService(cfg, log, repo.PredictionLogRepo, repo.YahooFinanceRepo)
	schedulerService := NewSchedulerService(cfg, log, trackerService)

	return &Service{
		PredictService:   predictService,
		TrackerService:   trackerService,
		SchedulerService: schedulerService,
	}
}
