package middlewares

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// NewRateLimiter creates an in-memory limiter allowing requests per period for each client IP.
func NewRateLimiter(requests int64, period time.Duration) *limiter.Limiter {
	return limiter.New(memory.NewStore(), limiter.Rate{
		Period: period,
		Limit:  requests,
	})
}

// RateLimitMiddleware rejects clients that exceeded the limiter's rate with 429.
func RateLimitMiddleware(l *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.GetIPKey(r)

			lctx, err := l.Get(r.Context(), ip)
			if err != nil {
				logger.Log.Errorw("failed to get rate limit context", "ip", ip, "error", err)
				writeLimitError(w, http.StatusInternalServerError, "Internal server error during rate limit check")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				logger.Log.Warnw("rate limit exceeded", "ip", ip, "limit", lctx.Limit)
				writeLimitError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeLimitError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
