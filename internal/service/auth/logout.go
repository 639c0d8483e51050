package auth

import (
	"casino_simulator/internal/logger"
	"context"

	"go.uber.org/zap"
)

// Logout убирает поле сапёра. Токен живёт до истечения, клиент удаляет cookie
func (s *serv) Logout(ctx context.Context, playerID int64) error {
	if err := s.minesweeper.Discard(ctx, playerID); err != nil {
		return err
	}

	logger.Log.Info("logout", zap.Int64("player_id", playerID))
	return nil
}
