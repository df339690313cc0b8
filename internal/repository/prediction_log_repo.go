package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rameshsdv/stock-predictor/internal/model"
)

type PredictionLogRepository interface {
	Log(ctx context.Context, entry *model.PredictionLog) error
	FindPendingBefore(ctx context.Context, cutoff time.Time) ([]model.PredictionLog, error)
	MarkVerified(ctx context.Context, id uint, actual float64) error
	AccuracyStats(ctx context.Context, symbol string) (*model.AccuracyStats, error)
}

type predictionLogRepository struct {
	db *gorm.DB
}

func NewPredictionLogRepository(db *gorm.DB) PredictionLogRepository {
	return &predictionLogRepository{db: db}
}

// Log records one prediction. A second prediction for the same symbol and
// day is ignored, only the first one of the day is tracked.
func (r *predictionLogRepository) Log(ctx context.Context, entry *model.PredictionLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry).Error
}

func (r *predictionLogRepository) FindPendingBefore(ctx context.Context, cutoff time.Time) ([]model.PredictionLog, error) {
	var entries []model.PredictionLog
	err := r.db.WithContext(ctx).
		Where("verified = ? AND prediction_date < ?", false, cutoff).
		Order("symbol, prediction_date").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *predictionLogRepository) MarkVerified(ctx context.Context, id uint, actual float64) error {
	return r.db.WithContext(ctx).
		Model(&model.PredictionLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"actual":   actual,
			"verified": true,
		}).Error
}

// AccuracyStats computes the mean absolute error percentage over verified
// predictions for a symbol. Returns nil when no verified samples exist yet.
func (r *predictionLogRepository) AccuracyStats(ctx context.Context, symbol string) (*model.AccuracyStats, error) {
	var row struct {
		MAEPercent *float64
		Samples    int
	}

	err := r.db.WithContext(ctx).
		Model(&model.PredictionLog{}).
		Select("AVG(ABS(predicted - actual) / NULLIF(actual, 0)) * 100 AS mae_percent, COUNT(*) AS samples").
		Where("symbol = ? AND verified = ?", symbol, true).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	if row.Samples == 0 || row.MAEPercent == nil {
		return nil, nil
	}

	return &model.AccuracyStats{
		MAEPercent: *row.MAEPercent,
		Samples:    row.Samples,
	}, nil
}
