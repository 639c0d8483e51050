package account

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/model"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ApplyOutcome списывает/начисляет payout и записывает матч в одной транзакции.
// Если хоть одна запись не удалась, не меняется ничего
func (s *serv) ApplyOutcome(ctx context.Context, wager model.Wager) (*model.LedgerEntry, error) {
	if err := model.ValidateBet(wager.Bet); err != nil {
		return nil, err
	}

	var entry model.LedgerEntry

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем игрока до конца транзакции
		player, err := s.playerRepo.GetPlayerForUpdate(txCtx, wager.PlayerID)
		if err != nil {
			return err
		}

		// Баланс мог измениться с момента проверки в игре
		if wager.Bet.GreaterThan(player.Balance) {
			return fmt.Errorf("%w: balance %s, bet %s", model.ErrInsufficientFunds, player.Balance, wager.Bet)
		}

		payout := model.RoundMoney(wager.Payout)
		player.Balance = model.RoundMoney(player.Balance.Add(payout))
		if err := s.playerRepo.UpdateBalance(txCtx, player.ID, player.Balance); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}

		match := model.Match{
			PlayerID:     player.ID,
			Game:         wager.Game,
			Bet:          wager.Bet,
			Payout:       payout,
			BalanceAfter: player.Balance,
			PlayedAt:     s.now(),
		}
		match.ID, err = s.matchRepo.AppendMatch(txCtx, &match)
		if err != nil {
			return fmt.Errorf("failed to append match: %w", err)
		}

		entry = model.LedgerEntry{Match: match, Player: *player}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("wager applied",
		zap.Int64("player_id", entry.Player.ID),
		zap.String("game", string(entry.Match.Game)),
		zap.String("bet", entry.Match.Bet.StringFixed(2)),
		zap.String("payout", entry.Match.Payout.StringFixed(2)),
		zap.String("balance", entry.Player.Balance.StringFixed(2)),
	)

	return &entry, nil
}
