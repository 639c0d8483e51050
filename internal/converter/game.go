package converter

import (
	dto "casino_simulator/internal/api/dto/game"
	"casino_simulator/internal/model"
)

func ToPlayRequest(game string, req dto.PlayRequest) model.PlayRequest {
	return model.PlayRequest{
		Game: game,
		Bet:  req.Bet,
		Input: model.PlayInput{
			Predict: req.Predict,
			Pick:    req.Pick,
			Guess:   req.Guess.String(),
		},
	}
}

func ToPlayResponse(res *model.PlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		Game:       string(res.Game),
		Win:        res.Win,
		Bet:        money(res.Bet),
		Payout:     money(res.Payout),
		NewBalance: money(res.NewBalance),
		ResultText: res.ResultText,
		Advisory:   res.Advisory,
		Duration:   res.Duration,
		MatchID:    res.MatchID,
		Extra:      res.Extra,
	}
}

func ToStatsResponse(stats []model.GameStats) dto.StatsResponse {
	res := make([]dto.GameStatsResponse, len(stats))
	for i, s := range stats {
		res[i] = dto.GameStatsResponse{
			Game:        string(s.Game),
			Plays:       s.Plays,
			Wins:        s.Wins,
			TotalBet:    money(s.TotalBet),
			TotalPayout: money(s.TotalPayout),
			RTP:         money(s.RTP()),
			WindowRTP:   money(s.WindowRTP),
		}
	}
	return dto.StatsResponse{Games: res}
}
