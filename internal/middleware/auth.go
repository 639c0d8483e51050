package middleware

import (
	"casino_simulator/internal/api/apierr"
	"casino_simulator/internal/model"
	"casino_simulator/pkg/token"
	"fmt"
	"net/http"
	"strings"
)

// AccessTokenCookie Имя cookie с access токеном
const AccessTokenCookie = "access_token"

// Auth проверяет access токен из заголовка Authorization: Bearer или из cookie
// и кладёт игрока в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := accessToken(r)
			if tokenStr == "" {
				apierr.Write(w, r, model.ErrUnauthenticated)
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				apierr.Write(w, r, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err))
				return
			}

			ctx := WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}
