package handler

import (
	"context"

	"github.com/go-telegram/bot"

	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
	"github.com/auraya-bot/auraya/internal/router"
	"github.com/auraya-bot/auraya/internal/session"
)

// PaperSearcher finds papers for the /papers command.
type PaperSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.Paper, error)
}

// Handler holds all dependencies needed by command and text handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	router      *router.Router
	sessions    *session.Store
	papers      PaperSearcher
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Router      *router.Router
	Sessions    *session.Store
	Papers      PaperSearcher
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		router:      deps.Router,
		sessions:    deps.Sessions,
		papers:      deps.Papers,
		botUsername: deps.BotUsername,
	}
}
