package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowFundsAdvisory Предупреждение, когда баланс опустился до половины первого депозита
const LowFundsAdvisory = "⚠️ Low luck: we recommend stopping for today."

type Player struct {
	ID             int64
	Name           string
	Balance        decimal.Decimal
	InitialDeposit decimal.Decimal
	CreatedAt      time.Time
}

// FirstTime - игрок ещё ни разу не пополнял счёт
func (p *Player) FirstTime() bool {
	return p.InitialDeposit.IsZero() && p.Balance.IsZero()
}

// LowFunds возвращает true, если баланс <= initial_deposit / 2.
// Пока депозита не было, порога нет.
func (p *Player) LowFunds() bool {
	if !p.InitialDeposit.IsPositive() {
		return false
	}
	return p.Balance.LessThanOrEqual(p.InitialDeposit.Div(decimal.NewFromInt(2)))
}

// Advisory возвращает текст предупреждения или пустую строку
func (p *Player) Advisory() string {
	if p.LowFunds() {
		return LowFundsAdvisory
	}
	return ""
}

// Identity - данные аутентифицированного игрока из access токена
type Identity struct {
	PlayerID    int64
	Name        string
	ConnectedAt time.Time
}

// AuthData - результат логина
type AuthData struct {
	AccessToken string
	Player      *Player
	FirstTime   bool
}
