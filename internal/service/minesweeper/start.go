package minesweeper

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Start раскладывает новое поле. Старое поле, если было, молча заменяется
func (s *serv) Start(ctx context.Context, bet decimal.Decimal) (*model.BoardView, error) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	if err := model.ValidateBet(bet); err != nil {
		return nil, err
	}

	unlock := s.lock(identity.PlayerID)
	defer unlock()

	player, err := s.playerRepo.GetPlayer(ctx, identity.PlayerID)
	if err != nil {
		return nil, err
	}
	if bet.GreaterThan(player.Balance) {
		return nil, fmt.Errorf("%w: balance %s, bet %s", model.ErrInsufficientFunds, player.Balance, bet)
	}

	positions, err := s.random.MinePositions(s.size*s.size, s.mines)
	if err != nil {
		return nil, err
	}

	board, err := model.NewBoard(player.ID, s.size, positions, bet, s.now())
	if err != nil {
		return nil, err
	}

	old, err := s.boardRepo.GetBoard(ctx, player.ID)
	switch {
	case err == nil:
		logger.Log.Info("minesweeper board replaced",
			zap.Int64("player_id", player.ID),
			zap.String("old_state", string(old.State())),
			zap.Int("old_revealed", len(old.RevealedCells())),
		)
	case !errors.Is(err, model.ErrNoActiveSession):
		return nil, err
	}

	if err := s.boardRepo.SaveBoard(ctx, board); err != nil {
		return nil, err
	}

	return board.View(), nil
}
