package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match - неизменяемая запись об одной ставке
type Match struct {
	ID           int64
	PlayerID     int64
	Game         Game
	Bet          decimal.Decimal
	Payout       decimal.Decimal // < 0 - проигрыш
	BalanceAfter decimal.Decimal
	PlayedAt     time.Time
}

// Wager - то, что нужно записать в леджер после разрешения ставки
type Wager struct {
	PlayerID int64
	Game     Game
	Bet      decimal.Decimal
	Payout   decimal.Decimal
}

// LedgerEntry - результат применения ставки: запись матча и обновлённый игрок
type LedgerEntry struct {
	Match  Match
	Player Player
}
