package game

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type PlayRequest struct {
	Bet     decimal.Decimal `json:"bet"`
	Predict string          `json:"predict,omitempty"` // rocket: up/down
	Pick    string          `json:"pick,omitempty"`    // roulette: цвет
	Guess   json.Number     `json:"guess,omitempty"`   // dice: сумма костей, число или строка
}

type PlayResponse struct {
	Game       string         `json:"game"`
	Win        bool           `json:"win"`
	Bet        string         `json:"bet"`
	Payout     string         `json:"payout"`
	NewBalance string         `json:"new_balance"`
	ResultText string         `json:"result_text"`
	Advisory   string         `json:"advisory,omitempty"`
	Duration   int64          `json:"duration"` // секунды с момента входа
	MatchID    int64          `json:"match_id"`
	Extra      map[string]any `json:"extra,omitempty"`
}

type GameStatsResponse struct {
	Game        string `json:"game"`
	Plays       int64  `json:"plays"`
	Wins        int64  `json:"wins"`
	TotalBet    string `json:"total_bet"`
	TotalPayout string `json:"total_payout"`
	RTP         string `json:"rtp"`
	WindowRTP   string `json:"window_rtp"`
}

type StatsResponse struct {
	Games []GameStatsResponse `json:"games"`
}
