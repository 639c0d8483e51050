package token

import (
	"casino_simulator/internal/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func GenerateAccessToken(identity model.Identity, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.PlayerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.PlayerID, 10),
			IssuedAt:  jwt.NewNumericDate(identity.ConnectedAt),
			ExpiresAt: jwt.NewNumericDate(identity.ConnectedAt.Add(ttl)),
		},
		PlayerID:    identity.PlayerID,
		Name:        identity.Name,
		ConnectedAt: identity.ConnectedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.PlayerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.PlayerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.PlayerClaims)
	if !ok || claims.PlayerID <= 0 {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
