package minesweeper

import (
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Board - текущее поле игрока. Без поля возвращается вид not_started
func (s *serv) Board(ctx context.Context) (*model.BoardView, error) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	board, err := s.boardRepo.GetBoard(ctx, identity.PlayerID)
	if err != nil {
		if errors.Is(err, model.ErrNoActiveSession) {
			return &model.BoardView{
				Size:     s.size,
				Mines:    s.mines,
				Bet:      decimal.Zero,
				State:    model.BoardNotStarted,
				Revealed: []model.Cell{},
			}, nil
		}
		return nil, err
	}

	return board.View(), nil
}

// Discard убирает поле игрока (выход из игры)
func (s *serv) Discard(ctx context.Context, playerID int64) error {
	unlock := s.lock(playerID)
	defer unlock()

	return s.boardRepo.DeleteBoard(ctx, playerID)
}
