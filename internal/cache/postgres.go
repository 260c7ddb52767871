package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the durable Store backing the bot. A broken database degrades
// to recompute: read errors report a miss, write errors are logged and dropped.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM cache WHERE key = $1 AND expires_at > NOW()`,
		key,
	).Scan(&value)
	if err != nil {
		if err != pgx.ErrNoRows {
			slog.Error("cache get", "error", err)
		}
		return "", false
	}
	return value, true
}

func (p *Postgres) Put(ctx context.Context, key, value string, ttl time.Duration) {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO cache (key, value, expires_at)
		 VALUES ($1, $2, NOW() + $3)
		 ON CONFLICT (key)
		 DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, ttl,
	)
	if err != nil {
		slog.Error("cache put", "error", err)
	}
}

// CleanupExpired deletes expired rows and reports how many were removed.
func (p *Postgres) CleanupExpired(ctx context.Context) (int64, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM cache WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
