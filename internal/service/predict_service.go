package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/analysis"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/internal/model"
	"github.com/rameshsdv/stock-predictor/internal/repository"
	"github.com/rameshsdv/stock-predictor/pkg/cache"
	"github.com/rameshsdv/stock-predictor/pkg/common"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
	"github.com/rameshsdv/stock-predictor/pkg/telegram"
	"github.com/rameshsdv/stock-predictor/pkg/utils"
)

// oscillatorDisplay is the row order and naming of the oscillator cards.
var oscillatorDisplay = []struct {
	Key  string
	Name string
}{
	{analysis.KeyRSI, "Relative Strength Index (14)"},
	{analysis.KeyStochK, "Stochastic %K (14, 3, 3)"},
	{analysis.KeyCCI20, "Commodity Channel Index (20)"},
	{analysis.KeyADX, "Average Directional Index (14)"},
	{analysis.KeyAO, "Awesome Oscillator"},
	{analysis.KeyMom, "Momentum (10)"},
	{analysis.KeyMACD, "MACD Level (12, 26)"},
}

type PredictService interface {
	Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error)
}

type predictService struct {
	cfg      *config.Config
	log      *logger.Logger
	repo     *repository.Repository
	cache    cache.Cache
	notifier *telegram.Notifier

	flight singleflight.Group

	// generation tracks the newest query per symbol so a slow, superseded
	// flight never publishes over a fresher result.
	mu         sync.Mutex
	generation map[string]uint64
}

func NewPredictService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	notifier *telegram.Notifier,
) PredictService {
	return &predictService{
		cfg:        cfg,
		log:        log,
		repo:       repo,
		cache:      inmemoryCache,
		notifier:   notifier,
		generation: make(map[string]uint64),
	}
}

func (s *predictService) Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	cacheKey := fmt.Sprintf(common.KEY_PREDICTION, symbol)
	if cached, ok := cache.GetFromCache[*dto.PredictionResponse](cacheKey); ok {
		s.log.DebugContext(ctx, "Prediction served from cache", logger.StringField("symbol", symbol))
		return cached, nil
	}

	gen := s.bumpGeneration(symbol)

	v, err, shared := s.flight.Do(symbol, func() (interface{}, error) {
		return s.fetchAndBuild(ctx, symbol)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Prediction failed",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return nil, err
	}

	result := v.(*dto.PredictionResponse)

	if s.currentGeneration(symbol) == gen {
		s.cache.Set(cacheKey, result, s.cfg.Cache.PredictionTTL)
	} else {
		s.log.DebugContext(ctx, "Stale prediction flight, skipping cache publish",
			logger.StringField("symbol", symbol),
		)
	}

	s.log.InfoContext(ctx, "Prediction built",
		logger.StringField("symbol", symbol),
		logger.StringField("recommendation", result.TVTechnicalIndicators.Summary.Recommendation),
		logger.Field("shared", shared),
	)

	return result, nil
}

func (s *predictService) bumpGeneration(symbol string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation[symbol]++
	return s.generation[symbol]
}

func (s *predictService) currentGeneration(symbol string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation[symbol]
}

// fetchAndBuild runs the two upstream fetches concurrently and assembles the
// full dashboard payload. Either fetch failing fails the whole build, the
// response is never a partial merge of stale halves.
func (s *predictService) fetchAndBuild(ctx context.Context, symbol string) (*dto.PredictionResponse, error) {
	var (
		forecast *dto.ForecastResult
		tech     *dto.TechnicalSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.repo.ForecastRepo.Predict(gctx, symbol)
		if err != nil {
			return fmt.Errorf("forecast fetch: %w", err)
		}
		forecast = res
		return nil
	})
	g.Go(func() error {
		res, err := s.repo.ScannerRepo.Get(gctx, symbol)
		if err != nil {
			return fmt.Errorf("scanner fetch: %w", err)
		}
		tech = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	accuracy, err := s.repo.PredictionLogRepo.AccuracyStats(ctx, symbol)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to load accuracy stats",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		accuracy = nil
	}

	result, err := buildPredictionResponse(symbol, forecast, tech, accuracy)
	if err != nil {
		return nil, err
	}

	s.attachInsight(ctx, result)

	utils.GoSafe(func() {
		s.recordPrediction(symbol, forecast, tech)
	})
	utils.GoSafe(func() {
		s.alertStrongVerdict(result)
	})

	return result, nil
}

// attachInsight asks the AI model for a narrative summary. The insight is
// decorative, any failure degrades to an empty string instead of failing the
// prediction.
func (s *predictService) attachInsight(ctx context.Context, result *dto.PredictionResponse) {
	if s.repo.GeminiAIRepo == nil {
		return
	}

	insightCtx, cancel := context.WithTimeout(ctx, s.cfg.Gemini.Timeout)
	defer cancel()

	insight, err := s.repo.GeminiAIRepo.GenerateInsight(insightCtx, result)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to generate AI insight",
			logger.StringField("symbol", result.Symbol),
			logger.ErrorField(err),
		)
		return
	}
	result.AIInsight = insight
}

// recordPrediction logs the next-day price prediction so the verification job
// can score it once the actual close is known.
func (s *predictService) recordPrediction(symbol string, forecast *dto.ForecastResult, tech *dto.TechnicalSnapshot) {
	if len(forecast.Forecast) == 0 {
		return
	}

	first := forecast.Forecast[0]
	predictionDate, err := utils.ParseISODate(first.Date)
	if err != nil {
		s.log.Warn("Skipping prediction log, unparseable forecast date",
			logger.StringField("symbol", symbol),
			logger.StringField("date", first.Date),
		)
		return
	}

	technicalData, err := json.Marshal(map[string]interface{}{
		"recommendation": tech.Recommendation,
		"buy":            tech.Votes.Buy,
		"sell":           tech.Votes.Sell,
		"neutral":        tech.Votes.Neutral,
		"indicators":     tech.Snapshot,
	})
	if err != nil {
		technicalData = []byte("{}")
	}

	entry := &model.PredictionLog{
		Symbol:         symbol,
		PredictionDate: utils.TruncateToDay(predictionDate),
		Predicted:      first.Price,
		TechnicalData:  datatypes.JSON(technicalData),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.repo.PredictionLogRepo.Log(ctx, entry); err != nil {
		s.log.Error("Failed to log prediction",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
	}
}

func (s *predictService) alertStrongVerdict(result *dto.PredictionResponse) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	label := result.TVTechnicalIndicators.Summary.Recommendation
	if label != dto.SignalStrongBuy && label != dto.SignalStrongSell {
		return
	}

	text := fmt.Sprintf("*%s* — %s\nPrice: %.2f\nBuy %d | Neutral %d | Sell %d",
		result.Symbol,
		analysis.DisplayLabel(label),
		result.CurrentPrice,
		result.TVTechnicalIndicators.Summary.Buy,
		result.TVTechnicalIndicators.Summary.Neutral,
		result.TVTechnicalIndicators.Summary.Sell,
	)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Telegram.TimeoutDuration)
	defer cancel()

	if err := s.notifier.SendAlert(ctx, text); err != nil {
		s.log.Error("Failed to send verdict alert",
			logger.StringField("symbol", result.Symbol),
			logger.ErrorField(err),
		)
	}
}

// buildPredictionResponse assembles the dashboard payload out of the two
// upstream fetches and the stored accuracy stats.
func buildPredictionResponse(
	symbol string,
	forecast *dto.ForecastResult,
	tech *dto.TechnicalSnapshot,
	accuracy *model.AccuracyStats,
) (*dto.PredictionResponse, error) {
	historical := make([]analysis.PricePoint, 0, len(forecast.History))
	for _, item := range forecast.History {
		date, err := utils.ParseISODate(item.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed history date %q: %w", item.Date, err)
		}
		historical = append(historical, analysis.PricePoint{Date: date, Price: item.Price})
	}

	predicted := make([]analysis.ForecastPoint, 0, len(forecast.Forecast))
	for _, item := range forecast.Forecast {
		date, err := utils.ParseISODate(item.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed forecast date %q: %w", item.Date, err)
		}
		predicted = append(predicted, analysis.ForecastPoint{
			Date:       date,
			Price:      item.Price,
			LowerBound: item.LowerBound,
			UpperBound: item.UpperBound,
		})
	}

	series := analysis.MergeSeries(historical, predicted)
	chartData := make([]dto.ChartPointResponse, 0, len(series))
	for _, point := range series {
		chartData = append(chartData, dto.ChartPointResponse{
			Date:         point.Date.Format("2006-01-02"),
			Price:        point.Price,
			IsPrediction: point.IsPrediction,
			LowerBound:   point.LowerBound,
			UpperBound:   point.UpperBound,
		})
	}

	var forecastStartDate *string
	if boundary, ok := analysis.ForecastBoundary(series); ok {
		forecastStartDate = utils.ToPointer(boundary.Format("2006-01-02"))
	}

	oscillators := make([]dto.OscillatorReading, 0, len(oscillatorDisplay))
	for _, row := range oscillatorDisplay {
		value := tech.Snapshot.Lookup(row.Key)
		oscillators = append(oscillators, dto.OscillatorReading{
			Key:    row.Key,
			Name:   row.Name,
			Value:  value,
			Signal: string(analysis.Classify(row.Key, value)),
		})
	}

	summary := analysis.Aggregate(tech.Votes, tech.Recommendation)

	ladder := analysis.BuildLadder(tech.Snapshot, analysis.MethodFibonacci)
	pivotLadder := make([]dto.PivotLevelResponse, 0, 7)
	for _, level := range ladder.Levels() {
		if level.Value == nil {
			continue
		}
		pivotLadder = append(pivotLadder, dto.PivotLevelResponse{
			Level: level.Name,
			Value: *level.Value,
		})
	}

	rsi := forecast.RSI
	if rsi == nil {
		rsi = tech.Snapshot.Lookup(analysis.KeyRSI)
	}

	response := &dto.PredictionResponse{
		Symbol:              symbol,
		ChartData:           chartData,
		ForecastStartDate:   forecastStartDate,
		MarketPhase:         forecast.MarketPhase,
		ActionSignal:        forecast.ActionSignal,
		TrendStrength:       forecast.TrendStrength,
		RSI:                 rsi,
		MACDSignal:          forecast.MACDSignal,
		CurrentPrice:        forecast.CurrentPrice,
		SignificantFeatures: forecast.SignificantFeatures,
		TVTechnicalIndicators: dto.TVTechnicalIndicators{
			Indicators: map[string]float64(tech.Snapshot),
			Summary: dto.TVSummary{
				Recommendation: tech.Recommendation,
				Buy:            tech.Votes.Buy,
				Sell:           tech.Votes.Sell,
				Neutral:        tech.Votes.Neutral,
			},
		},
		Verdict: dto.VerdictResponse{
			Label:        summary.Label,
			DisplayLabel: summary.DisplayLabel,
			Class:        string(summary.Class),
			BuyPct:       summary.Gauge.Buy,
			SellPct:      summary.Gauge.Sell,
			NeutralPct:   summary.Gauge.Neutral,
		},
		Oscillators: oscillators,
		PivotLadder: pivotLadder,
		BreakoutLevels: dto.BreakoutLevels{
			Resistance1: ladder.R1,
			Support1:    ladder.S1,
			Pivot:       ladder.Pivot,
		},
		Metrics:       forecast.Metrics,
		MarketContext: forecast.MarketContext,
	}

	if accuracy != nil {
		response.ModelAccuracy = dto.ModelAccuracy{
			MAEPercent: utils.ToPointer(accuracy.MAEPercent),
			Samples:    utils.ToPointer(accuracy.Samples),
		}
	}

	return response, nil
}
