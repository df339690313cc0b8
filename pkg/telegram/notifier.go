package telegram

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"

	"github.com/rameshsdv/stock-predictor/config"
	"github.com/rameshsdv/stock-predictor/pkg/logger"
)

// Notifier pushes alert messages to a single configured chat. It is disabled
// when no bot token is configured; SendAlert is then a no-op.
type Notifier struct {
	cfg     *config.TelegramConfig
	log     *logger.Logger
	bot     *telebot.Bot
	limiter *rate.Limiter
}

func NewNotifier(cfg *config.TelegramConfig, log *logger.Logger) (*Notifier, error) {
	n := &Notifier{
		cfg: cfg,
		log: log,
		limiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(max(cfg.MaxAlertPerMinute, 1))),
			1,
		),
	}

	if cfg.BotToken == "" {
		log.Info("Telegram alerts disabled, no bot token configured")
		return n, nil
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token: cfg.BotToken,
	})
	if err != nil {
		return nil, err
	}
	n.bot = bot

	return n, nil
}

func (n *Notifier) Enabled() bool {
	return n.bot != nil && n.cfg.ChatID != 0
}

// SendAlert sends a Markdown-formatted message to the configured chat,
// honoring the alert rate limit.
func (n *Notifier) SendAlert(ctx context.Context, text string) error {
	if !n.Enabled() {
		return nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := n.bot.Send(telebot.ChatID(n.cfg.ChatID), text, telebot.ModeMarkdown)
	if err != nil {
		n.log.ErrorContext(ctx, "Failed to send telegram alert", logger.ErrorField(err))
	}
	return err
}
