package account

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/model"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Deposit пополняет баланс. Первый депозит не меньше минимума и запоминается как initial_deposit
func (s *serv) Deposit(ctx context.Context, playerID int64, amount decimal.Decimal) (*model.Player, error) {
	if err := model.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var player *model.Player

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		player, err = s.playerRepo.GetPlayerForUpdate(txCtx, playerID)
		if err != nil {
			return err
		}

		if player.InitialDeposit.IsZero() {
			if amount.LessThan(s.minFirstDeposit) {
				return fmt.Errorf("%w: minimum is %s", model.ErrMinimumDeposit, s.minFirstDeposit.StringFixed(2))
			}
			if err := s.playerRepo.SetInitialDeposit(txCtx, playerID, amount); err != nil {
				return fmt.Errorf("failed to set initial deposit: %w", err)
			}
			player.InitialDeposit = amount
		}

		player.Balance = model.RoundMoney(player.Balance.Add(amount))
		if err := s.playerRepo.UpdateBalance(txCtx, playerID, player.Balance); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("deposit",
		zap.Int64("player_id", playerID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", player.Balance.StringFixed(2)),
	)

	return player, nil
}
