package memory

import (
	"casino_simulator/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEnsurePlayer(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, created, err := s.EnsurePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("EnsurePlayer: %v", err)
	}
	if !created || !p.Balance.IsZero() {
		t.Errorf("expected a new player with zero balance, got created=%v balance=%s", created, p.Balance)
	}

	again, created, err := s.EnsurePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("EnsurePlayer: %v", err)
	}
	if created || again.ID != p.ID {
		t.Errorf("expected the existing player %d, got %d (created=%v)", p.ID, again.ID, created)
	}

	if _, err := s.GetPlayer(ctx, 42); !errors.Is(err, model.ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestTxRollback(t *testing.T) {
	s := NewStore()
	tm := s.TxManager()
	ctx := context.Background()

	p, _, _ := s.EnsurePlayer(ctx, "bob")
	boom := errors.New("boom")

	err := tm.Do(ctx, func(txCtx context.Context) error {
		if err := s.UpdateBalance(txCtx, p.ID, decimal.NewFromInt(100)); err != nil {
			return err
		}
		if _, err := s.AppendMatch(txCtx, &model.Match{PlayerID: p.ID, Game: model.GameDice}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, _ := s.GetPlayer(ctx, p.ID)
	if !got.Balance.IsZero() {
		t.Errorf("expected balance rolled back to 0, got %s", got.Balance)
	}
	matches, _ := s.ListMatches(ctx, p.ID, 10)
	if len(matches) != 0 {
		t.Errorf("expected no matches after rollback, got %d", len(matches))
	}
}

func TestTxCommitAndNested(t *testing.T) {
	s := NewStore()
	tm := s.TxManager()
	ctx := context.Background()

	p, _, _ := s.EnsurePlayer(ctx, "carol")

	err := tm.Do(ctx, func(txCtx context.Context) error {
		return tm.Do(txCtx, func(inner context.Context) error {
			return s.UpdateBalance(inner, p.ID, decimal.NewFromInt(7))
		})
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got, _ := s.GetPlayer(ctx, p.ID)
	if !got.Balance.Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected balance 7, got %s", got.Balance)
	}
}

func TestListMatchesNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p, _, _ := s.EnsurePlayer(ctx, "dave")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.AppendMatch(ctx, &model.Match{
			PlayerID: p.ID,
			Game:     model.GameRocket,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("AppendMatch: %v", err)
		}
	}

	matches, err := s.ListMatches(ctx, p.ID, 3)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].PlayedAt.After(matches[i-1].PlayedAt) {
			t.Errorf("matches are not ordered newest first")
		}
	}
	if matches[0].ID != 5 {
		t.Errorf("expected newest match id 5, got %d", matches[0].ID)
	}
}

func TestBoardsExpiry(t *testing.T) {
	b := NewBoards(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()

	board, err := model.NewBoard(1, 5, []int{0, 1, 2, 3, 4}, decimal.NewFromInt(10), now)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.SaveBoard(ctx, board); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	// Изменения вызывающего кода не попадают в хранилище без SaveBoard
	board.Revealed[10] = true
	got, err := b.GetBoard(ctx, 1)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if got.Revealed[10] {
		t.Errorf("stored board shares memory with the caller")
	}

	now = now.Add(2 * time.Minute)
	if _, err := b.GetBoard(ctx, 1); !errors.Is(err, model.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession for an expired board, got %v", err)
	}
	if n := b.Sweep(); n != 1 {
		t.Errorf("expected 1 swept board, got %d", n)
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow(ctx, 1, "play", 3, time.Minute)
		if !ok {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow(ctx, 1, "play", 3, time.Minute); ok {
		t.Errorf("4th call should be limited")
	}
	if ok, _ := l.Allow(ctx, 2, "play", 3, time.Minute); !ok {
		t.Errorf("other player should not be limited")
	}

	now = now.Add(time.Minute)
	if ok, _ := l.Allow(ctx, 1, "play", 3, time.Minute); !ok {
		t.Errorf("new window should allow the call")
	}
}
