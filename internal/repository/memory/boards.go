package memory

import (
	"casino_simulator/internal/model"
	"context"
	"sync"
	"time"
)

type boardEntry struct {
	board     *model.Board
	expiresAt time.Time
}

// Boards - поля сапёра в памяти с временем жизни. Просроченные поля убирает Sweep
type Boards struct {
	mtx    sync.Mutex
	ttl    time.Duration
	boards map[int64]boardEntry
	now    func() time.Time
}

func NewBoards(ttl time.Duration) *Boards {
	return &Boards{
		ttl:    ttl,
		boards: make(map[int64]boardEntry),
		now:    time.Now,
	}
}

func (b *Boards) GetBoard(_ context.Context, playerID int64) (*model.Board, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	e, ok := b.boards[playerID]
	if !ok || !b.now().Before(e.expiresAt) {
		return nil, model.ErrNoActiveSession
	}
	return e.board.Clone(), nil
}

// SaveBoard сохраняет поле и продлевает его жизнь
func (b *Boards) SaveBoard(_ context.Context, board *model.Board) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.boards[board.PlayerID] = boardEntry{
		board:     board.Clone(),
		expiresAt: b.now().Add(b.ttl),
	}
	return nil
}

func (b *Boards) DeleteBoard(_ context.Context, playerID int64) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	delete(b.boards, playerID)
	return nil
}

// Sweep удаляет просроченные поля и возвращает их количество
func (b *Boards) Sweep() int {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	now := b.now()
	removed := 0
	for id, e := range b.boards {
		if !now.Before(e.expiresAt) {
			delete(b.boards, id)
			removed++
		}
	}
	return removed
}
