package account

import (
	"casino_simulator/internal/model"
	"context"
)

func (s *serv) Balance(ctx context.Context, playerID int64) (*model.Player, error) {
	return s.playerRepo.GetPlayer(ctx, playerID)
}

// History - последние матчи игрока, новые первыми
func (s *serv) History(ctx context.Context, playerID int64, limit int) ([]model.Match, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	// Игрок должен существовать, иначе пустая история скрыла бы ошибку
	if _, err := s.playerRepo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	return s.matchRepo.ListMatches(ctx, playerID, limit)
}
