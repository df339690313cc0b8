package model

import (
	"time"

	"gorm.io/datatypes"
)

// PredictionLog records one next-day price prediction so the tracker can
// verify it against the realized close and report accuracy back to the
// dashboard.
type PredictionLog struct {
	ID             uint      `gorm:"primarykey"`
	Symbol         string    `gorm:"not null;uniqueIndex:idx_prediction_logs_symbol_date,priority:1"`
	PredictionDate time.Time `gorm:"not null;uniqueIndex:idx_prediction_logs_symbol_date,priority:2"`
	Predicted      float64   `gorm:"not null"`
	Actual         *float64
	Verified       bool           `gorm:"not null;default:false"`
	TechnicalData  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (PredictionLog) TableName() string {
	return "prediction_logs"
}

// AccuracyStats is the aggregate over verified rows for one symbol.
type AccuracyStats struct {
	MAEPercent float64
	Samples    int
}
