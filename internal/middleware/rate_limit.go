package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type rateWindow struct {
	start time.Time
	count int
}

// RateLimit returns middleware that enforces a per-chat messages-per-minute
// limit. Counters live in memory: limits reset on restart, which is
// acceptable for abuse protection.
func RateLimit(perMinute int) bot.Middleware {
	var (
		mu      sync.Mutex
		windows = make(map[int64]*rateWindow)
	)

	allow := func(chatID int64, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		w, ok := windows[chatID]
		if !ok || now.Sub(w.start) >= time.Minute {
			windows[chatID] = &rateWindow{start: now, count: 1}
			return true
		}
		w.count++
		return w.count <= perMinute
	}

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !allow(chatID, time.Now()) {
				slog.Debug("rate limited", "chat_id", chatID, "limit", perMinute)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many requests. Please wait a moment.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
