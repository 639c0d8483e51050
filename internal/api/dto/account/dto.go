package account

import "github.com/shopspring/decimal"

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"` // Число или строка, не больше 2 знаков после запятой
}

type BalanceResponse struct {
	Balance        string `json:"balance"`
	InitialDeposit string `json:"initial_deposit"`
	Advisory       string `json:"advisory,omitempty"`
}

type MatchResponse struct {
	ID           int64  `json:"id"`
	Game         string `json:"game"`
	Bet          string `json:"bet"`
	Payout       string `json:"payout"` // < 0 - проигрыш
	BalanceAfter string `json:"balance_after"`
	PlayedAt     string `json:"played_at"` // RFC 3339, UTC
}

type HistoryResponse struct {
	Matches []MatchResponse `json:"matches"`
}
