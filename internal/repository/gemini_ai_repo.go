package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

type AIRepository interface {
	GenerateInsight(ctx context.Context, result *dto.PredictionResponse) (string, error)
}

type geminiAIRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)

	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		genAiClient:    genAiClient,
	}, nil
}

// GenerateInsight produces a short plain-language narrative of the verdict
// and indicator readings for the dashboard. Callers treat failures as an
// empty insight, never as a failed prediction.
func (r *geminiAIRepository) GenerateInsight(ctx context.Context, result *dto.PredictionResponse) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt := r.buildPrompt(result)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to generate insight", logger.ErrorField(err))
		return "", fmt.Errorf("failed to generate insight: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty insight")
	}

	return text, nil
}

func (r *geminiAIRepository) buildPrompt(result *dto.PredictionResponse) string {
	var b strings.Builder
	b.WriteString("You are a market analyst. Summarize the following stock snapshot in one short paragraph for a retail dashboard. ")
	b.WriteString("Be factual, mention the overall recommendation and the strongest signals, no financial advice disclaimer.\n\n")
	fmt.Fprintf(&b, "Symbol: %s\n", result.Symbol)
	fmt.Fprintf(&b, "Current price: %.2f\n", result.CurrentPrice)
	fmt.Fprintf(&b, "Market phase: %s\n", result.MarketPhase)
	fmt.Fprintf(&b, "Action signal: %s\n", result.ActionSignal)
	fmt.Fprintf(&b, "Trend strength: %s\n", result.TrendStrength)
	fmt.Fprintf(&b, "Recommendation: %s (buy %d / neutral %d / sell %d)\n",
		result.TVTechnicalIndicators.Summary.Recommendation,
		result.TVTechnicalIndicators.Summary.Buy,
		result.TVTechnicalIndicators.Summary.Neutral,
		result.TVTechnicalIndicators.Summary.Sell,
	)
	for _, osc := range result.Oscillators {
		if osc.Value != nil {
			fmt.Fprintf(&b, "%s: %.2f (%s)\n", osc.Name, *osc.Value, osc.Signal)
		}
	}
	return b.String()
}
