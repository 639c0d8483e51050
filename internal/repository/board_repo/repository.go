package board_repo

import (
	"casino_simulator/internal/model"
	"casino_simulator/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyBoard Поле сапёра игрока
const keyBoard = "minesweeper:board:%d"

type repo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBoardRepository - поля хранятся в Redis JSON-строками. Каждое сохранение продлевает TTL
func NewBoardRepository(client *redis.Client, ttl time.Duration) repository.BoardRepository {
	return &repo{
		client: client,
		ttl:    ttl,
	}
}

func boardKey(playerID int64) string {
	return fmt.Sprintf(keyBoard, playerID)
}

func (r *repo) GetBoard(ctx context.Context, playerID int64) (*model.Board, error) {
	data, err := r.client.Get(ctx, boardKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	var board model.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}
	return &board, nil
}

func (r *repo) SaveBoard(ctx context.Context, board *model.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}

	if err := r.client.Set(ctx, boardKey(board.PlayerID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

func (r *repo) DeleteBoard(ctx context.Context, playerID int64) error {
	if err := r.client.Del(ctx, boardKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
