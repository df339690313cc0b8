package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/dto"
	"github.com/rameshsdv/stock-predictor/internal/service"
)

type stubPredictService struct {
	result *dto.PredictionResponse
	err    error
}

func (s *stubPredictService) Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestHandler(stub *stubPredictService) *HttpAPIHandler {
	cfg := &config.Config{}
	cfg.API.AllowedOrigins = "*"
	return NewHttpAPIHandler(
		context.Background(),
		cfg,
		echo.New(),
		goValidator.New(),
		&service.Service{PredictService: stub},
	)
}

func doPredict(h *HttpAPIHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := h.echo.NewContext(req, rec)
	_ = h.Predict(c)
	return rec
}

func TestPredict_Success(t *testing.T) {
	h := newTestHandler(&stubPredictService{
		result: &dto.PredictionResponse{Symbol: "RELIANCE", CurrentPrice: 2890.5},
	})

	rec := doPredict(h, `{"symbol":"RELIANCE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RELIANCE", resp.Symbol)
	assert.Equal(t, 2890.5, resp.CurrentPrice)
}

func TestPredict_MissingSymbol(t *testing.T) {
	h := newTestHandler(&stubPredictService{})

	rec := doPredict(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredict_InvalidBody(t *testing.T) {
	h := newTestHandler(&stubPredictService{})

	rec := doPredict(h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredict_UpstreamFailure(t *testing.T) {
	h := newTestHandler(&stubPredictService{err: errors.New("scanner fetch: connection refused")})

	rec := doPredict(h, `{"symbol":"RELIANCE"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// one generic message regardless of which upstream failed
	assert.Equal(t, dto.ErrMsgFetchFailed, resp.Message)
}
