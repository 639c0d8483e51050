package middleware

import (
	"casino_simulator/internal/api/apierr"
	"casino_simulator/internal/logger"
	"casino_simulator/internal/repository"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RateLimit ограничивает число запросов игрока на action за window.
// Ставится после Auth. Ошибка хранилища не блокирует игру
func RateLimit(limiter repository.RateLimitRepository, action string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID, ok := PlayerIDFromContext(r.Context())
			if !ok || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := limiter.Allow(r.Context(), playerID, action, limit, window)
			if err != nil {
				logger.Log.Warn("rate limit check failed", zap.Int64("player_id", playerID), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				apierr.Write(w, r, apierr.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
