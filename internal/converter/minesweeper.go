package converter

import (
	dto "casino_simulator/internal/api/dto/minesweeper"
	"casino_simulator/internal/model"
)

func ToBoardResponse(v *model.BoardView) dto.BoardResponse {
	return dto.BoardResponse{
		Size:          v.Size,
		Mines:         v.Mines,
		Bet:           money(v.Bet),
		State:         string(v.State),
		Revealed:      toCells(v.Revealed),
		MineCells:     toCells(v.MineCells),
		SafeRemaining: v.SafeRemaining,
	}
}

func ToRevealResponse(res *model.RevealResult) dto.RevealResponse {
	return dto.RevealResponse{
		Row:        res.Row,
		Col:        res.Col,
		Mine:       res.Mine,
		Payout:     money(res.Payout),
		NewBalance: money(res.NewBalance),
		ResultText: res.ResultText,
		Advisory:   res.Advisory,
		MatchID:    res.MatchID,
		Board:      ToBoardResponse(res.Board),
	}
}

func toCells(cells []model.Cell) []dto.Cell {
	if cells == nil {
		return nil
	}
	res := make([]dto.Cell, len(cells))
	for i, c := range cells {
		res[i] = dto.Cell{Row: c.Row, Col: c.Col}
	}
	return res
}
