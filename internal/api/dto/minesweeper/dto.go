package minesweeper

import "github.com/shopspring/decimal"

type StartRequest struct {
	Bet decimal.Decimal `json:"bet"`
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type BoardResponse struct {
	Size          int    `json:"size"`
	Mines         int    `json:"mines"`
	Bet           string `json:"bet"`
	State         string `json:"state"` // not_started, active, exhausted, lost
	Revealed      []Cell `json:"revealed"`
	MineCells     []Cell `json:"mine_cells,omitempty"` // только после проигрыша
	SafeRemaining int    `json:"safe_remaining"`
}

type RevealResponse struct {
	Row        int           `json:"row"`
	Col        int           `json:"col"`
	Mine       bool          `json:"mine"`
	Payout     string        `json:"payout"`
	NewBalance string        `json:"new_balance"`
	ResultText string        `json:"result_text"`
	Advisory   string        `json:"advisory,omitempty"`
	MatchID    int64         `json:"match_id"`
	Board      BoardResponse `json:"board"`
}
