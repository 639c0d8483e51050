package game

import (
	"casino_simulator/internal/payout"
	"casino_simulator/internal/random"
	"casino_simulator/internal/repository"
	"casino_simulator/internal/service"
	"time"
)

type serv struct {
	engine     *payout.Engine
	random     random.Provider
	account    service.AccountService
	playerRepo repository.PlayerRepository
	statsRepo  repository.StatsRepository
	now        func() time.Time
}

// NewGameService Игры с одной ставкой: ракета, слоты, рулетка, кости
func NewGameService(
	engine *payout.Engine,
	random random.Provider,
	account service.AccountService,
	playerRepo repository.PlayerRepository,
	statsRepo repository.StatsRepository,
) service.GameService {
	return &serv{
		engine:     engine,
		random:     random,
		account:    account,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		now:        time.Now,
	}
}
