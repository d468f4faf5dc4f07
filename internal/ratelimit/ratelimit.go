package ratelimit

import (
	"context"
	"net/http"
	"time"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Limiter { return &Limiter{rdb: rdb} }

func (l *Limiter) AllowSliding(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := "rl:" + key
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// LimitHTTP keys the window on the authenticated external id. On limiter
// backend errors requests pass through: rate limiting is advisory, the write
// path is not.
func (l *Limiter) LimitHTTP(limit int64, window time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := httpx.ExternalFromCtx(r)
		if err != nil || key == "" {
			httpx.WriteJSON(w, map[string]string{"error": "missing user"}, http.StatusUnauthorized)
			return
		}
		ok, _, err := l.AllowSliding(r.Context(), key, limit, window)
		if err == nil && !ok {
			httpx.WriteJSON(w, map[string]string{"error": "rate limit exceeded"}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
