package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	auraya "github.com/auraya-bot/auraya"
	"github.com/auraya-bot/auraya/internal/cache"
	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/handler"
	"github.com/auraya-bot/auraya/internal/language"
	"github.com/auraya-bot/auraya/internal/middleware"
	"github.com/auraya-bot/auraya/internal/repository"
	"github.com/auraya-bot/auraya/internal/router"
	"github.com/auraya-bot/auraya/internal/service"
	"github.com/auraya-bot/auraya/internal/session"
	"github.com/auraya-bot/auraya/internal/skill"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateBot(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(auraya.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// External providers
	deepl := service.NewDeepLClient(cfg.DeepLAPIKey)
	weather := service.NewOpenWeatherClient(cfg.OpenWeatherAPIKey)
	wikipedia := service.NewWikipediaClient()
	github := service.NewGitHubClient(cfg.GitHubToken)
	arxiv := service.NewArxivClient()

	// Turn pipeline
	responseCache := cache.NewPostgres(pool)
	sessions := session.NewStore(config.MaxHistoryMessages)
	skills := skill.Default(skill.Deps{
		Encyclopedia: wikipedia,
		Weather:      weather,
		Repos:        github,
	})
	turnRouter := router.New(language.NewDetector(), deepl, responseCache, sessions, skills)

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(config.RateLimitPerMinute),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	h := handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Router:      turnRouter,
		Sessions:    sessions,
		Papers:      arxiv,
		BotUsername: me.Username,
	})
	h.Register()

	// Default text handler for everything that is not a command
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
			return
		}
		h.HandleText(ctx, b, update)
	})

	// Expired cache entry cleanup goroutine
	go func() {
		ticker := time.NewTicker(config.CacheCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := responseCache.CleanupExpired(context.Background()); err != nil {
					slog.Error("cleanup expired cache entries", "error", err)
				} else if n > 0 {
					slog.Info("cache entries expired", "count", n)
				}
			}
		}
	}()

	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
