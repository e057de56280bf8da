package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"brme/internal/event"
	pkgLog "brme/pkg/log"
)

const (
	defaultCommandPrefix = "brme"
	processTimeout       = 90 * time.Second
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of pkg/telegram.Bot the handler replies through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Config tunes the Telegram handler.
type Config struct {
	// SecretToken must match the X-Telegram-Bot-Api-Secret-Token header when set.
	SecretToken     string
	CommandPrefix   string
	RateLimitPerMin int
	// CreateEvents inserts into the calendar; otherwise the bot only replies with the resolution.
	CreateEvents bool
}

type handler struct {
	l       pkgLog.Logger
	uc      event.UseCase
	bot     Sender
	cfg     Config
	limiter *chatLimiter
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc event.UseCase, bot Sender, cfg Config) Handler {
	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = defaultCommandPrefix
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		cfg:     cfg,
		limiter: newChatLimiter(cfg.RateLimitPerMin),
	}
}
