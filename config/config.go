package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log         Logger         `mapstructure:"logger"`
	DB          Database       `mapstructure:"database"`
	API         API            `mapstructure:"api"`
	Forecast    Forecast       `mapstructure:"forecast"`
	TradingView TradingView    `mapstructure:"tradingview"`
	YahooChart  YahooChart     `mapstructure:"yahoo_chart"`
	Cache       Cache          `mapstructure:"cache"`
	Tracker     Tracker        `mapstructure:"tracker"`
	Telegram    TelegramConfig `mapstructure:"telegram"`
	Gemini      Gemini         `mapstructure:"gemini"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port            int     `mapstructure:"port"`
	RateLimitPerSec float64 `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst  int     `mapstructure:"rate_limit_burst"`
	AllowedOrigins  string  `mapstructure:"allowed_origins"`
}

// Forecast points at the forecast model service that produces the price
// history, predicted series, and regime analytics per symbol.
type Forecast struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type TradingView struct {
	BaseURLScanner   string        `mapstructure:"base_url_scanner"`
	BaseTimeout      time.Duration `mapstructure:"base_timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
	Exchange         string        `mapstructure:"exchange"`
}

type YahooChart struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	SymbolSuffix        string        `mapstructure:"symbol_suffix"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	PredictionTTL     time.Duration `mapstructure:"prediction_ttl"`
}

// Tracker configures the prediction accuracy verification job.
type Tracker struct {
	VerifyCron   string `mapstructure:"verify_cron"`
	LookbackDays int    `mapstructure:"lookback_days"`
}

type TelegramConfig struct {
	BotToken          string        `mapstructure:"bot_token"`
	ChatID            int64         `mapstructure:"chat_id"`
	TimeoutDuration   time.Duration `mapstructure:"timeout_duration"`
	MaxAlertPerMinute int           `mapstructure:"max_alert_per_minute"`
}

type Gemini struct {
	Enabled             bool          `mapstructure:"enabled"`
	APIKey              string        `mapstructure:"api_key"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

func Load() (*Config, error) {
	// .env is optional, real deployments inject env vars directly.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	// Missing config file is fine, env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("api.port", 8000)
	viper.SetDefault("api.rate_limit_per_sec", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("api.allowed_origins", "*")

	viper.SetDefault("forecast.timeout", 60*time.Second)
	viper.SetDefault("forecast.max_request_per_minute", 30)

	viper.SetDefault("tradingview.base_url_scanner", "https://scanner.tradingview.com")
	viper.SetDefault("tradingview.base_timeout", 15*time.Second)
	viper.SetDefault("tradingview.max_request_per_min", 30)
	viper.SetDefault("tradingview.exchange", "NSE")

	viper.SetDefault("yahoo_chart.base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("yahoo_chart.timeout", 15*time.Second)
	viper.SetDefault("yahoo_chart.max_request_per_minute", 20)
	viper.SetDefault("yahoo_chart.symbol_suffix", ".NS")

	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.prediction_ttl", 5*time.Minute)

	viper.SetDefault("tracker.verify_cron", "30 18 * * *")
	viper.SetDefault("tracker.lookback_days", 30)

	viper.SetDefault("telegram.timeout_duration", 10*time.Second)
	viper.SetDefault("telegram.max_alert_per_minute", 20)

	viper.SetDefault("gemini.base_model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", 30*time.Second)
	viper.SetDefault("gemini.max_request_per_minute", 10)
}
