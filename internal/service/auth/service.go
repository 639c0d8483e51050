package auth

import (
	"casino_simulator/internal/config"
	"casino_simulator/internal/repository"
	"casino_simulator/internal/service"
	"time"
)

type serv struct {
	playerRepo  repository.PlayerRepository
	minesweeper service.MinesweeperService
	jwtConfig   config.JWTConfig
	now         func() time.Time
}

func NewAuthService(
	playerRepo repository.PlayerRepository,
	minesweeper service.MinesweeperService,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		playerRepo:  playerRepo,
		minesweeper: minesweeper,
		jwtConfig:   jwtConfig,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
