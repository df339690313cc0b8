package repository

import (
	"gorm.io/gorm"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

type Repository struct {
	ForecastRepo      ForecastRepository
	ScannerRepo       TradingViewScannerRepository
	YahooFinanceRepo  YahooFinanceRepository
	PredictionLogRepo PredictionLogRepository
	GeminiAIRepo      AIRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	repo := &Repository{
		ForecastRepo:      NewForecastRepository(cfg, log),
		ScannerRepo:       NewTradingViewScannerRepository(cfg, log),
		YahooFinanceRepo:  NewYahooFinanceRepository(cfg, log),
		PredictionLogRepo: NewPredictionLogRepository(db),
	}

	if cfg.Gemini.Enabled {
		geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
		if err != nil {
			return nil, err
		}
		repo.GeminiAIRepo = geminiAIRepo
	}

	return repo, nil
}
