package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PlayerClaims Содержимое access токена
type PlayerClaims struct {
	jwt.RegisteredClaims
	PlayerID    int64  `json:"pid"`
	Name        string `json:"name"`
	ConnectedAt int64  `json:"cat"` // unix, момент входа
}

func (c *PlayerClaims) Identity() Identity {
	return Identity{
		PlayerID:    c.PlayerID,
		Name:        c.Name,
		ConnectedAt: time.Unix(c.ConnectedAt, 0).UTC(),
	}
}
