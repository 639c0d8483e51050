package board_repo

import (
	"casino_simulator/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestBoardRoundTrip(t *testing.T) {
	client := newTestClient(t)
	repo := NewBoardRepository(client, time.Minute)
	ctx := context.Background()

	const playerID = int64(987654321)
	t.Cleanup(func() { _ = repo.DeleteBoard(ctx, playerID) })

	board, err := model.NewBoard(playerID, 5, []int{0, 6, 12, 18, 24}, decimal.RequireFromString("10.50"), time.Now().UTC())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if _, err := board.Reveal(0, 1); err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	if err := repo.SaveBoard(ctx, board); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	got, err := repo.GetBoard(ctx, playerID)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if got.MineCount() != 5 {
		t.Errorf("expected 5 mines, got %d", got.MineCount())
	}
	if !got.Bet.Equal(board.Bet) {
		t.Errorf("expected bet %s, got %s", board.Bet, got.Bet)
	}
	if len(got.RevealedCells()) != 1 {
		t.Errorf("expected 1 revealed cell, got %d", len(got.RevealedCells()))
	}

	ttl, err := client.TTL(ctx, boardKey(playerID)).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("unexpected ttl %v", ttl)
	}

	if err := repo.DeleteBoard(ctx, playerID); err != nil {
		t.Fatalf("DeleteBoard: %v", err)
	}
	if _, err := repo.GetBoard(ctx, playerID); !errors.Is(err, model.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession after delete, got %v", err)
	}
}
