// Command cli runs the conversation pipeline as a terminal chat, with the
// in-memory cache instead of Postgres. Handy for trying the skills without a
// bot token or a database.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/auraya-bot/auraya/internal/cache"
	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/language"
	"github.com/auraya-bot/auraya/internal/router"
	"github.com/auraya-bot/auraya/internal/service"
	"github.com/auraya-bot/auraya/internal/session"
	"github.com/auraya-bot/auraya/internal/skill"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	skills := skill.Default(skill.Deps{
		Encyclopedia: service.NewWikipediaClient(),
		Weather:      service.NewOpenWeatherClient(cfg.OpenWeatherAPIKey),
		Repos:        service.NewGitHubClient(cfg.GitHubToken),
	})
	sessions := session.NewStore(config.MaxHistoryMessages)
	turnRouter := router.New(
		language.NewDetector(),
		service.NewDeepLClient(cfg.DeepLAPIKey),
		cache.NewMemory(),
		sessions,
		skills,
	)

	fmt.Println("Auraya CLI. Type a message, or \"exit\" to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		fmt.Println(turnRouter.Answer(ctx, "cli", line))
	}

	if err := scanner.Err(); err != nil {
		slog.Error("read input", "error", err)
		os.Exit(1)
	}
	fmt.Println("Bye!")
}
