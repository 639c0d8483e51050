package repository

import (
	"casino_simulator/internal/model"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PlayerRepository interface {
	// EnsurePlayer возвращает игрока по имени, создавая его с нулевым балансом при первом входе
	EnsurePlayer(ctx context.Context, name string) (player *model.Player, created bool, err error)
	GetPlayer(ctx context.Context, id int64) (*model.Player, error)
	// GetPlayerForUpdate блокирует строку игрока до конца транзакции
	GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error)

	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	SetInitialDeposit(ctx context.Context, id int64, amount decimal.Decimal) error
}

type MatchRepository interface {
	AppendMatch(ctx context.Context, match *model.Match) (id int64, err error)
	// ListMatches - последние матчи игрока, новые первыми
	ListMatches(ctx context.Context, playerID int64, limit int) ([]model.Match, error)
}

type BoardRepository interface {
	// GetBoard возвращает model.ErrNoActiveSession, если поля нет или оно истекло
	GetBoard(ctx context.Context, playerID int64) (*model.Board, error)
	SaveBoard(ctx context.Context, board *model.Board) error
	DeleteBoard(ctx context.Context, playerID int64) error
}

type RateLimitRepository interface {
	// Allow считает обращение и говорит, укладывается ли оно в limit за window
	Allow(ctx context.Context, playerID int64, action string, limit int, window time.Duration) (bool, error)
}

type StatsRepository interface {
	Record(game model.Game, bet, payout decimal.Decimal, win bool)
	Snapshot() []model.GameStats
}
