package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/auraya-bot/auraya/internal/config"
	tg "github.com/auraya-bot/auraya/internal/telegram"
)

const helpText = "🤖 *Auraya* understands questions in many languages and answers with:\n\n" +
	"📖 Definitions — \"What is Rust?\"\n" +
	"🧮 Arithmetic — \"2 + 2 * 3\" or \"sqrt(144)\"\n" +
	"🌤 Weather — \"weather in London\"\n" +
	"💻 Code examples — \"show me an example in python\"\n" +
	"📂 Repositories — \"rust example\"\n\n" +
	"*Commands:*\n" +
	"/start — Restart the conversation\n" +
	"/help — This message\n" +
	"/reset — Forget the dialog history\n" +
	"/papers <topic> — Search arXiv papers\n\n" +
	"Or just chat with me!"

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	h.sessions.Reset(conversationID(chatID))

	name := "friend"
	if update.Message.From != nil && update.Message.From.FirstName != "" {
		name = update.Message.From.FirstName
	}

	text := fmt.Sprintf("👋 Hi, *%s*! I'm Auraya.\n\n"+
		"Ask me anything in your own language: definitions, arithmetic, "+
		"weather, code examples.\n\nUse /help to see everything I can do.", name)
	if err := tg.SendLongMessage(ctx, b, chatID, text); err != nil {
		slog.Error("send start message", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	if err := tg.SendLongMessage(ctx, b, update.Message.Chat.ID, helpText); err != nil {
		slog.Error("send help message", "error", err)
	}
}

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	h.sessions.Reset(conversationID(chatID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🧹 Dialog history cleared. Let's start fresh!",
	})
}

func (h *Handler) handlePapers(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	parts := strings.SplitN(update.Message.Text, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Usage: /papers <topic>, e.g. /papers quantum computing",
		})
		return
	}
	query := strings.TrimSpace(parts[1])

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	papers, err := h.papers.Search(ctx, query, config.PaperSearchLimit)
	if err != nil {
		slog.Warn("paper search failed", "error", err, "query", query)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📄 Could not find papers on \"" + query + "\" right now. Try again later.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("📄 *Papers on " + query + ":*\n\n")
	for i, p := range papers {
		sb.WriteString(strconv.Itoa(i+1) + ". " + p.Title + "\n" + p.URL + "\n\n")
	}
	if err := tg.SendLongMessage(ctx, b, chatID, sb.String()); err != nil {
		slog.Error("send papers message", "error", err)
	}
}

// conversationID maps a Telegram chat to a router conversation key.
func conversationID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
