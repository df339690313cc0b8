package http

import (
	"context"
	"strings"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/internal/service"
	"github.com/rameshsdv/stock-predictor/pkg/middleware"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: strings.Split(h.cfg.API.AllowedOrigins, ","),
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
	}))
	h.echo.Use(middleware.NewRateLimiterMiddleware(h.cfg.API.RateLimitPerSec, h.cfg.API.RateLimitBurst))

	h.echo.GET("/healthz", h.Healthz)

	base := h.echo.Group("/api")
	h.SetupPredict(base)
}

func (h *HttpAPIHandler) Healthz(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
