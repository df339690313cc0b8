package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/pkg/httpclient"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

type YahooFinanceRepository interface {
	GetDailyCloses(ctx context.Context, symbol string, days int) ([]dto.DailyClose, error)
}

type yahooFinanceRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     httpclient.HTTPClient
	requestLimiter *rate.Limiter
}

func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) YahooFinanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooChart.MaxRequestPerMinute)

	return &yahooFinanceRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     httpclient.New(log, cfg.YahooChart.BaseURL, cfg.YahooChart.Timeout, ""),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// GetDailyCloses fetches the last N days of daily closes for a symbol.
// NSE symbols get the configured exchange suffix appended when missing.
func (r *yahooFinanceRepository) GetDailyCloses(ctx context.Context, symbol string, days int) ([]dto.DailyClose, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	suffix := r.cfg.YahooChart.SymbolSuffix
	if suffix != "" && !strings.HasSuffix(symbol, suffix) {
		symbol = symbol + suffix
	}

	now := time.Now()
	queryParams := map[string]string{
		"period1":        fmt.Sprintf("%d", now.AddDate(0, 0, -days).Unix()),
		"period2":        fmt.Sprintf("%d", now.Unix()),
		"interval":       "1d",
		"includePrePost": "false",
	}

	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://finance.yahoo.com/",
	}

	var yahooResp dto.YahooChartResponse
	resp, err := r.httpClient.Get(ctx, "/"+symbol, queryParams, headers, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data from yahoo finance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.ErrorContext(ctx, "Yahoo Finance API returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("symbol", symbol),
		)
		return nil, fmt.Errorf("yahoo finance api returned status: %d", resp.StatusCode)
	}

	if yahooResp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo finance api error: %v", yahooResp.Chart.Error)
	}

	if len(yahooResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data returned for symbol: %s", symbol)
	}

	result := yahooResp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data available for symbol: %s", symbol)
	}

	quote := result.Indicators.Quote[0]

	var closes []dto.DailyClose
	for i, timestamp := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}
		closes = append(closes, dto.DailyClose{
			Date:  time.Unix(timestamp, 0).In(time.UTC),
			Close: quote.Close[i],
		})
	}

	if len(closes) == 0 {
		return nil, fmt.Errorf("no valid close data found for symbol: %s", symbol)
	}

	return closes, nil
}
