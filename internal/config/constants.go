package config

import "time"

const (
	// WorkingLanguage is the internal language every skill operates on.
	// Input is translated to it before routing, answers back from it after.
	WorkingLanguage = "EN"

	// Outbound collaborator call timeout
	RequestTimeout = 10 * time.Second

	// Response cache entry lifetime
	CacheTTL = 1 * time.Hour

	// Expired cache row sweep interval
	CacheCleanupInterval = 10 * time.Minute

	// Per-conversation history cap; oldest messages are trimmed beyond it
	MaxHistoryMessages = 200

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Rate limit (messages per minute per chat)
	RateLimitPerMinute = 10

	// GitHub search sizes
	RepoSearchLimit = 3
	CodeSearchLimit = 5

	// arXiv search size
	PaperSearchLimit = 5
)
