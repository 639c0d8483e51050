package service

import (
	"casino_simulator/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	// Login входит по имени, создавая игрока при первом входе
	Login(ctx context.Context, name string) (*model.AuthData, error)
	Logout(ctx context.Context, playerID int64) error
}

type AccountService interface {
	// ApplyOutcome атомарно меняет баланс на payout и записывает матч
	ApplyOutcome(ctx context.Context, wager model.Wager) (*model.LedgerEntry, error)
	Deposit(ctx context.Context, playerID int64, amount decimal.Decimal) (*model.Player, error)
	Balance(ctx context.Context, playerID int64) (*model.Player, error)
	History(ctx context.Context, playerID int64, limit int) ([]model.Match, error)
}

type GameService interface {
	Play(ctx context.Context, req model.PlayRequest) (*model.PlayResult, error)
	Stats() []model.GameStats
}

type MinesweeperService interface {
	Start(ctx context.Context, bet decimal.Decimal) (*model.BoardView, error)
	Reveal(ctx context.Context, row, col int) (*model.RevealResult, error)
	Board(ctx context.Context) (*model.BoardView, error)
	Discard(ctx context.Context, playerID int64) error
}
