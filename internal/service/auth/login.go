package auth

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/model"
	"casino_simulator/pkg/token"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const maxNameLength = 64

// Login находит игрока по имени (или создаёт его) и выдаёт access токен
func (s *serv) Login(ctx context.Context, name string) (*model.AuthData, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", model.ErrInvalidInput, maxNameLength)
	}

	player, created, err := s.playerRepo.EnsurePlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	// Время входа попадает в токен, от него считается длительность сессии
	accessToken, err := token.GenerateAccessToken(
		model.Identity{PlayerID: player.ID, Name: player.Name, ConnectedAt: s.now()},
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	logger.Log.Info("login",
		zap.Int64("player_id", player.ID),
		zap.String("name", player.Name),
		zap.Bool("created", created),
	)

	return &model.AuthData{
		AccessToken: accessToken,
		Player:      player,
		FirstTime:   player.FirstTime(),
	}, nil
}
