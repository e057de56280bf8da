package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"brme/config"
	_ "brme/docs" // Swagger docs
	eventHTTP "brme/internal/event/delivery/http"
	tgDelivery "brme/internal/event/delivery/telegram"
	"brme/internal/event/repository"
	gcalRepo "brme/internal/event/repository/gcalendar"
	"brme/internal/event/usecase"
	"brme/internal/estimator"
	"brme/internal/httpserver"
	"brme/pkg/gcalendar"
	"brme/pkg/log"
	"brme/pkg/telegram"
)

// @title       brme API
// @description Turns Portuguese event sentences into calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting brme...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s (%s), estimator: %s", cfg.Resolver.TimezoneName, cfg.Resolver.TimezoneOffset, cfg.Resolver.Estimator)

	// 3. Estimator
	est, err := estimator.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize estimator: ", err)
		os.Exit(1)
	}

	// 4. Google Calendar (optional)
	calendarRepo := newCalendarRepository(ctx, cfg.GoogleCalendar, logger)

	// 5. Event UseCase
	eventUC := usecase.New(logger, est, cfg.Resolver.Estimator, calendarRepo, cfg.Resolver.TimezoneName, cfg.Resolver.TimezoneOffset)

	// 6. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, eventUC, bot, tgDelivery.Config{
			SecretToken:     cfg.Telegram.SecretToken,
			CommandPrefix:   cfg.Telegram.CommandPrefix,
			RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
			CreateEvents:    calendarRepo != nil,
		})

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		EventHandler:    eventHTTP.New(logger, eventUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCalendarRepository prefers the OAuth refresh token and falls back to a service account file.
// It returns nil when Google Calendar is not configured or fails to initialize.
func newCalendarRepository(ctx context.Context, cfg config.GoogleCalendarConfig, logger log.Logger) repository.CalendarRepository {
	if !cfg.Enabled() {
		logger.Warn(ctx, "Google Calendar not configured: events will only be resolved")
		return nil
	}

	var (
		client *gcalendar.Client
		err    error
	)
	if cfg.RefreshToken != "" {
		client, err = gcalendar.NewClientFromRefreshToken(ctx, gcalendar.OAuthConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURI:  cfg.RedirectURI,
			RefreshToken: cfg.RefreshToken,
		})
	} else {
		client, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	}
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `brme auth` to generate GOOGLE_REFRESH_TOKEN")
		return nil
	}

	logger.Infof(ctx, "Google Calendar initialized (calendar %s)", cfg.CalendarID)
	return gcalRepo.New(client, cfg.CalendarID, logger)
}
