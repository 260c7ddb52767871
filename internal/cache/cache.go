// Package cache maps normalized working-language queries to previously
// computed answers. The cache is a best-effort optimization: implementations
// swallow storage errors, and concurrent writers to the same key resolve by
// last-write-wins.
package cache

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the cached answer for key if present and not expired.
	Get(ctx context.Context, key string) (string, bool)
	// Put stores the answer for key with the given lifetime, overwriting any
	// existing entry.
	Put(ctx context.Context, key, value string, ttl time.Duration)
}
