package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/pkg/httpclient"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

type ForecastRepository interface {
	Predict(ctx context.Context, symbol string) (*dto.ForecastResult, error)
}

type forecastRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     httpclient.HTTPClient
	requestLimiter *rate.Limiter
}

func NewForecastRepository(cfg *config.Config, log *logger.Logger) ForecastRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Forecast.MaxRequestPerMinute)

	return &forecastRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     httpclient.New(log, cfg.Forecast.BaseURL, cfg.Forecast.Timeout, ""),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// Predict asks the forecast model service for the history, predicted series,
// and regime analytics of a symbol. The call can take tens of seconds, model
// fitting happens per request upstream.
func (r *forecastRepository) Predict(ctx context.Context, symbol string) (*dto.ForecastResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result dto.ForecastResult
	resp, err := r.httpClient.Post(ctx, "/predict", dto.ForecastRequest{Symbol: symbol}, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.WarnContext(ctx, "Forecast service returned non-200 response",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("symbol", symbol),
		)
		return nil, fmt.Errorf("forecast service returned status: %d", resp.StatusCode)
	}

	if len(result.History) == 0 && len(result.Forecast) == 0 {
		return nil, fmt.Errorf("forecast service returned no data for symbol: %s", symbol)
	}

	return &result, nil
}
