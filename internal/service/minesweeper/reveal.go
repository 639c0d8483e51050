package minesweeper

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Reveal открывает клетку. Поле сохраняется до записи ставки, при ошибке леджера оно откатывается
func (s *serv) Reveal(ctx context.Context, row, col int) (*model.RevealResult, error) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	unlock := s.lock(identity.PlayerID)
	defer unlock()

	board, err := s.boardRepo.GetBoard(ctx, identity.PlayerID)
	if err != nil {
		return nil, err
	}

	mine, err := board.Check(row, col)
	if err != nil {
		return nil, err
	}

	outcome, err := s.engine.Resolve(
		model.GameMinesweeper,
		board.Bet,
		model.PlayInput{Row: row, Col: col},
		model.Draw{Mine: mine},
	)
	if err != nil {
		return nil, err
	}

	// Сначала поле: клетка открывается один раз, даже если леджер потом упадёт
	original := board.Clone()
	if _, err := board.Reveal(row, col); err != nil {
		return nil, err
	}
	if err := s.boardRepo.SaveBoard(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	entry, err := s.account.ApplyOutcome(ctx, model.Wager{
		PlayerID: identity.PlayerID,
		Game:     model.GameMinesweeper,
		Bet:      board.Bet,
		Payout:   outcome.Payout,
	})
	if err != nil {
		// Ставка не записана, возвращаем поле как было
		if restoreErr := s.boardRepo.SaveBoard(ctx, original); restoreErr != nil {
			logger.Log.Error("failed to restore board after ledger error",
				zap.Int64("player_id", identity.PlayerID),
				zap.Int("row", row),
				zap.Int("col", col),
				zap.Error(restoreErr),
			)
		}
		return nil, err
	}

	s.statsRepo.Record(model.GameMinesweeper, board.Bet, entry.Match.Payout, outcome.Win)

	return &model.RevealResult{
		Row:        row,
		Col:        col,
		Mine:       mine,
		Payout:     entry.Match.Payout,
		NewBalance: entry.Player.Balance,
		ResultText: outcome.Description,
		Advisory:   entry.Player.Advisory(),
		MatchID:    entry.Match.ID,
		Board:      board.View(),
	}, nil
}
