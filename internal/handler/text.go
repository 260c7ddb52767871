package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/auraya-bot/auraya/internal/telegram"
)

// HandleText processes every non-command text message: it runs one router
// turn and sends the reply back to the chat.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	msg := update.Message
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	chatID := msg.Chat.ID
	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	answer := h.router.Answer(ctx, conversationID(chatID), msg.Text)

	if err := tg.SendLongMessage(ctx, b, chatID, answer); err != nil {
		slog.Error("send answer", "error", err, "chat_id", chatID)
	}
}
