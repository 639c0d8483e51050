package game

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Play выполняет одну ставку: проверка, случайный исход, расчёт, запись в леджер
func (s *serv) Play(ctx context.Context, req model.PlayRequest) (*model.PlayResult, error) {
	// Игрок из access токена
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	game, err := model.ParseGame(req.Game)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.Game)
	}
	// Сапёр живёт по своим правилам: старт и открытие клеток
	if game == model.GameMinesweeper {
		return nil, fmt.Errorf("%w: minesweeper is played via /minesweeper", model.ErrUnknownGame)
	}

	if err := model.ValidateBet(req.Bet); err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayer(ctx, identity.PlayerID)
	if err != nil {
		return nil, err
	}
	if req.Bet.GreaterThan(player.Balance) {
		return nil, fmt.Errorf("%w: balance %s, bet %s", model.ErrInsufficientFunds, player.Balance, req.Bet)
	}

	draw, err := s.random.Draw(game)
	if err != nil {
		return nil, err
	}

	outcome, err := s.engine.Resolve(game, req.Bet, req.Input, draw)
	if err != nil {
		return nil, err
	}

	entry, err := s.account.ApplyOutcome(ctx, model.Wager{
		PlayerID: player.ID,
		Game:     game,
		Bet:      req.Bet,
		Payout:   outcome.Payout,
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(game, req.Bet, entry.Match.Payout, outcome.Win)

	logger.Log.Info("play",
		zap.Int64("player_id", player.ID),
		zap.String("game", string(game)),
		zap.Bool("win", outcome.Win),
		zap.String("payout", entry.Match.Payout.StringFixed(2)),
	)

	return &model.PlayResult{
		Game:       game,
		Win:        outcome.Win,
		Bet:        req.Bet,
		Payout:     entry.Match.Payout,
		NewBalance: entry.Player.Balance,
		ResultText: outcome.Description,
		Advisory:   entry.Player.Advisory(),
		Duration:   sessionSeconds(identity.ConnectedAt, s.now()),
		MatchID:    entry.Match.ID,
		Extra:      outcome.Extra,
	}, nil
}

// sessionSeconds - сколько целых секунд прошло с момента входа
func sessionSeconds(connectedAt, now time.Time) int64 {
	if connectedAt.IsZero() || now.Before(connectedAt) {
		return 0
	}
	return int64(now.Sub(connectedAt) / time.Second)
}
