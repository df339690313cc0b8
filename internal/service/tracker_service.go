package service

import (
	"context"
	"fmt"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/internal/model"
	"github.com/rameshsdv/stock-predictor/internal/repository"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
	"github.com/rameshsdv/stock-predictor/pkg/utils"
)

type TrackerService interface {
	VerifyPending(ctx context.Context) error
}

type trackerService struct {
	cfg               *config.Config
	log               *logger.Logger
	predictionLogRepo repository.PredictionLogRepository
	yahooFinanceRepo  repository.YahooFinanceRepository
}

func NewTrackerService(
	cfg *config.Config,
	log *logger.Logger,
	predictionLogRepo repository.PredictionLogRepository,
	yahooFinanceRepo repository.YahooFinanceRepository,
) TrackerService {
	return &trackerService{
		cfg:               cfg,
		log:               log,
		predictionLogRepo: predictionLogRepo,
		yahooFinanceRepo:  yahooFinanceRepo,
	}
}

// VerifyPending scores every prediction whose target day has passed against
// the actual close. Predictions for non-trading days settle on the next
// session's close. Entries without a published close yet stay pending for the
// next run.
func (s *trackerService) VerifyPending(ctx context.Context) error {
	cutoff := utils.TruncateToDay(utils.TimeNowIST())

	entries, err := s.predictionLogRepo.FindPendingBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to find pending predictions: %w", err)
	}
	if len(entries) == 0 {
		s.log.InfoContext(ctx, "No pending predictions to verify")
		return nil
	}

	s.log.InfoContext(ctx, "Verifying pending predictions", logger.IntField("count", len(entries)))

	bySymbol := make(map[string][]model.PredictionLog)
	for _, entry := range entries {
		bySymbol[entry.Symbol] = append(bySymbol[entry.Symbol], entry)
	}

	verified := 0
	for symbol, symbolEntries := range bySymbol {
		if !utils.ShouldContinue(ctx, s.log) {
			break
		}

		closes, err := s.yahooFinanceRepo.GetDailyCloses(ctx, symbol, s.cfg.Tracker.LookbackDays)
		if err != nil {
			s.log.WarnContext(ctx, "Failed to fetch closes for verification",
				logger.StringField("symbol", symbol),
				logger.ErrorField(err),
			)
			continue
		}

		for _, entry := range symbolEntries {
			actual, ok := settlingClose(closes, entry)
			if !ok {
				continue
			}
			if err := s.predictionLogRepo.MarkVerified(ctx, entry.ID, actual); err != nil {
				s.log.ErrorContext(ctx, "Failed to mark prediction verified",
					logger.StringField("symbol", symbol),
					logger.IntField("id", int(entry.ID)),
					logger.ErrorField(err),
				)
				continue
			}
			verified++
		}
	}

	s.log.InfoContext(ctx, "Prediction verification finished",
		logger.IntField("pending", len(entries)),
		logger.IntField("verified", verified),
	)

	return nil
}

// settlingClose picks the first close on or after the prediction date.
func settlingClose(closes []dto.DailyClose, entry model.PredictionLog) (float64, bool) {
	target := utils.TruncateToDay(entry.PredictionDate)
	for _, c := range closes {
		if !utils.TruncateToDay(c.Date).Before(target) {
			return c.Close, true
		}
	}
	return 0, false
}
