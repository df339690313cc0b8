package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rameshsdv/stock-predictor/internal/dto"
)

func (h *HttpAPIHandler) SetupPredict(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.POST("/predict", h.Predict)
	}

	// legacy path the dashboard was first built against
	h.echo.POST("/predict", h.Predict)
}

// Predict serves the full dashboard payload for one symbol. Any upstream
// failure maps to one generic error message, the client never sees which
// provider failed.
func (h *HttpAPIHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("symbol is required"))
	}

	result, err := h.service.PredictService.Predict(c.Request().Context(), req.Symbol)
	if err != nil {
		response := dto.NewFetchFailedResponse()
		return c.JSON(response.Code, response)
	}

	return c.JSON(http.StatusOK, result)
}
