package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/analysis"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/pkg/httpclient"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

// scannerFields are the daily-interval fields requested from the TradingView
// scanner: the oscillator values the dashboard displays, their previous-bar
// companions needed for the vote rules, the Fibonacci pivot ladder, and the
// overall recommendation score.
var scannerFields = []string{
	"Recommend.All",
	"RSI", "RSI[1]",
	"Stoch.K", "Stoch.D", "Stoch.K[1]", "Stoch.D[1]",
	"CCI20", "CCI20[1]",
	"ADX", "ADX+DI", "ADX-DI", "ADX+DI[1]", "ADX-DI[1]",
	"AO", "AO[1]", "AO[2]",
	"Mom", "Mom[1]",
	"MACD.macd", "MACD.signal",
	"Pivot.M.Fibonacci.S3",
	"Pivot.M.Fibonacci.S2",
	"Pivot.M.Fibonacci.S1",
	"Pivot.M.Fibonacci.Middle",
	"Pivot.M.Fibonacci.R1",
	"Pivot.M.Fibonacci.R2",
	"Pivot.M.Fibonacci.R3",
	"close", "high", "low",
}

type TradingViewScannerRepository interface {
	Get(ctx context.Context, symbol string) (*dto.TechnicalSnapshot, error)
}

type tradingViewScannerRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     httpclient.HTTPClient
	requestLimiter *rate.Limiter
}

func NewTradingViewScannerRepository(cfg *config.Config, log *logger.Logger) TradingViewScannerRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.TradingView.MaxRequestPerMin)

	return &tradingViewScannerRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     httpclient.New(log, cfg.TradingView.BaseURLScanner, cfg.TradingView.BaseTimeout, ""),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// Get fetches the daily technical snapshot for a symbol. The scanner wants
// symbols in EXCHANGE:SYMBOL form; a bare symbol gets the configured exchange
// prefix. Null fields in the response stay absent in the snapshot, they are
// never zero-filled.
func (t *tradingViewScannerRepository) Get(ctx context.Context, symbol string) (*dto.TechnicalSnapshot, error) {
	if err := t.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	if !strings.Contains(symbol, ":") {
		symbol = fmt.Sprintf("%s:%s", t.cfg.TradingView.Exchange, symbol)
	}

	params := map[string]string{
		"symbol": symbol,
		"fields": strings.Join(scannerFields, ","),
	}

	responseMap := make(map[string]*float64)
	baseResponse, err := t.httpClient.Get(ctx, "/symbol", params, nil, &responseMap)
	if err != nil {
		return nil, err
	}

	if baseResponse.StatusCode != http.StatusOK {
		t.log.WarnContext(ctx, "TradingView scanner returned non-200 response",
			logger.IntField("status_code", baseResponse.StatusCode),
		)
		return nil, fmt.Errorf("failed to get scanner data: %s", string(baseResponse.Body))
	}

	snapshot := make(analysis.IndicatorSnapshot, len(responseMap))
	for k, v := range responseMap {
		if v != nil {
			snapshot[k] = *v
		}
	}

	votes := countVotes(snapshot)
	recommendation := dto.SignalNeutral
	if all, ok := snapshot.Value("Recommend.All"); ok {
		recommendation = dto.MapRecommendScore(recommendScore(all))
	}

	return &dto.TechnicalSnapshot{
		Snapshot:       snapshot,
		Votes:          votes,
		Recommendation: recommendation,
	}, nil
}

// countVotes applies the TradingView oscillator vote rules to the snapshot.
// Any rule whose inputs are absent votes neutral.
func countVotes(snap analysis.IndicatorSnapshot) analysis.VoteCounts {
	scores := []int{
		voteRsi(snap),
		voteStoch(snap),
		voteCci20(snap),
		voteAdx(snap),
		voteAo(snap),
		voteMom(snap),
		voteMacd(snap),
	}

	var counts analysis.VoteCounts
	for _, score := range scores {
		switch {
		case score > 0:
			counts.Buy++
		case score < 0:
			counts.Sell++
		default:
			counts.Neutral++
		}
	}
	return counts
}

// recommendScore buckets the Recommend.All value into the five-step scale.
func recommendScore(v float64) int {
	switch {
	case v > 0.5 && v <= 1:
		return dto.TradingViewSignalStrongBuy
	case v > 0.1 && v <= 0.5:
		return dto.TradingViewSignalBuy
	case v >= -0.1 && v <= 0.1:
		return dto.TradingViewSignalNeutral
	case v >= -0.5 && v < -0.1:
		return dto.TradingViewSignalSell
	case v >= -1 && v < -0.5:
		return dto.TradingViewSignalStrongSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteRsi(snap analysis.IndicatorSnapshot) int {
	rsi, ok1 := snap.Value("RSI")
	rsi1, ok2 := snap.Value("RSI[1]")
	if !ok1 || !ok2 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case rsi < 30 && rsi1 < rsi:
		return dto.TradingViewSignalBuy
	case rsi > 70 && rsi1 > rsi:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteStoch(snap analysis.IndicatorSnapshot) int {
	k, ok1 := snap.Value("Stoch.K")
	d, ok2 := snap.Value("Stoch.D")
	k1, ok3 := snap.Value("Stoch.K[1]")
	d1, ok4 := snap.Value("Stoch.D[1]")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case k < 20 && d < 20 && k > d && k1 < d1:
		return dto.TradingViewSignalBuy
	case k > 80 && d > 80 && k < d && k1 > d1:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteCci20(snap analysis.IndicatorSnapshot) int {
	cci, ok1 := snap.Value("CCI20")
	cci1, ok2 := snap.Value("CCI20[1]")
	if !ok1 || !ok2 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case cci < -100 && cci > cci1:
		return dto.TradingViewSignalBuy
	case cci > 100 && cci < cci1:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteAdx(snap analysis.IndicatorSnapshot) int {
	adx, ok1 := snap.Value("ADX")
	pdi, ok2 := snap.Value("ADX+DI")
	ndi, ok3 := snap.Value("ADX-DI")
	pdi1, ok4 := snap.Value("ADX+DI[1]")
	ndi1, ok5 := snap.Value("ADX-DI[1]")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case adx > 20 && pdi1 < ndi1 && pdi > ndi:
		return dto.TradingViewSignalBuy
	case adx > 20 && pdi1 > ndi1 && pdi < ndi:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteAo(snap analysis.IndicatorSnapshot) int {
	ao, ok1 := snap.Value("AO")
	ao1, ok2 := snap.Value("AO[1]")
	ao2, ok3 := snap.Value("AO[2]")
	if !ok1 || !ok2 || !ok3 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case (ao > 0 && ao1 < 0) || (ao > 0 && ao1 > 0 && ao > ao1 && ao2 > ao1):
		return dto.TradingViewSignalBuy
	case (ao < 0 && ao1 > 0) || (ao < 0 && ao1 < 0 && ao < ao1 && ao2 < ao1):
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteMom(snap analysis.IndicatorSnapshot) int {
	mom, ok1 := snap.Value("Mom")
	mom1, ok2 := snap.Value("Mom[1]")
	if !ok1 || !ok2 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case mom > mom1:
		return dto.TradingViewSignalBuy
	case mom < mom1:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}

func voteMacd(snap analysis.IndicatorSnapshot) int {
	macd, ok1 := snap.Value("MACD.macd")
	signal, ok2 := snap.Value("MACD.signal")
	if !ok1 || !ok2 {
		return dto.TradingViewSignalNeutral
	}
	switch {
	case macd > signal:
		return dto.TradingViewSignalBuy
	case macd < signal:
		return dto.TradingViewSignalSell
	default:
		return dto.TradingViewSignalNeutral
	}
}
