package converter

import (
	dto "casino_simulator/internal/api/dto/account"
	"casino_simulator/internal/model"
	"time"
)

func ToBalanceResponse(p *model.Player) dto.BalanceResponse {
	return dto.BalanceResponse{
		Balance:        money(p.Balance),
		InitialDeposit: money(p.InitialDeposit),
		Advisory:       p.Advisory(),
	}
}

func ToHistoryResponse(matches []model.Match) dto.HistoryResponse {
	res := make([]dto.MatchResponse, len(matches))
	for i, m := range matches {
		res[i] = dto.MatchResponse{
			ID:           m.ID,
			Game:         string(m.Game),
			Bet:          money(m.Bet),
			Payout:       money(m.Payout),
			BalanceAfter: money(m.BalanceAfter),
			PlayedAt:     m.PlayedAt.UTC().Format(time.RFC3339),
		}
	}
	return dto.HistoryResponse{Matches: res}
}
