package minesweeper

import (
	"casino_simulator/internal/payout"
	"casino_simulator/internal/random"
	"casino_simulator/internal/repository"
	"casino_simulator/internal/service"
	"sync"
	"time"
)

type serv struct {
	engine     *payout.Engine
	random     random.Provider
	account    service.AccountService
	playerRepo repository.PlayerRepository
	boardRepo  repository.BoardRepository
	statsRepo  repository.StatsRepository

	size  int
	mines int

	// locks Мьютекс на игрока: старт и открытия одного игрока идут по очереди.
	// Запись живёт, пока её кто-то держит или ждёт
	locksMtx sync.Mutex
	locks    map[int64]*playerLock
	now      func() time.Time
}

// NewMinesweeperService Сапёр size x size с mines минами
func NewMinesweeperService(
	engine *payout.Engine,
	random random.Provider,
	account service.AccountService,
	playerRepo repository.PlayerRepository,
	boardRepo repository.BoardRepository,
	statsRepo repository.StatsRepository,
	size, mines int,
) service.MinesweeperService {
	return &serv{
		engine:     engine,
		random:     random,
		account:    account,
		playerRepo: playerRepo,
		boardRepo:  boardRepo,
		statsRepo:  statsRepo,
		size:       size,
		mines:      mines,
		locks:      make(map[int64]*playerLock),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type playerLock struct {
	mtx  sync.Mutex
	refs int
}

// lock берёт мьютекс игрока и возвращает функцию освобождения
func (s *serv) lock(playerID int64) func() {
	s.locksMtx.Lock()
	l, ok := s.locks[playerID]
	if !ok {
		l = &playerLock{}
		s.locks[playerID] = l
	}
	l.refs++
	s.locksMtx.Unlock()

	l.mtx.Lock()
	return func() {
		l.mtx.Unlock()

		s.locksMtx.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, playerID)
		}
		s.locksMtx.Unlock()
	}
}
