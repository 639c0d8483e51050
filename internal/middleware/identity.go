package middleware

import (
	"casino_simulator/internal/model"
	"context"
)

type identityKey struct{}

// WithIdentity кладёт игрока из access токена в контекст запроса
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext возвращает игрока, положенного Auth
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok || identity.PlayerID <= 0 {
		return model.Identity{}, false
	}
	return identity, true
}

func PlayerIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := IdentityFromContext(ctx)
	return identity.PlayerID, ok
}
