// Package memory - хранилище в памяти процесса. Используется, когда PG_DSN не задан, и в тестах.
// Store реализует PlayerRepository, MatchRepository и trm.Manager: транзакции
// выполняются по одной, при ошибке состояние откатывается к снимку.
package memory

import (
	"casino_simulator/internal/model"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type txKey struct{}

type Store struct {
	mtx sync.Mutex

	players      map[int64]model.Player
	names        map[string]int64
	matches      []model.Match
	nextPlayerID int64
	nextMatchID  int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		players: make(map[int64]model.Player),
		names:   make(map[string]int64),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// snapshot - состояние для отката. Матчи только дописываются, поэтому хватает длины
type snapshot struct {
	players      map[int64]model.Player
	names        map[string]int64
	matches      int
	nextPlayerID int64
	nextMatchID  int64
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		players:      make(map[int64]model.Player, len(s.players)),
		names:        make(map[string]int64, len(s.names)),
		matches:      len(s.matches),
		nextPlayerID: s.nextPlayerID,
		nextMatchID:  s.nextMatchID,
	}
	for k, v := range s.players {
		snap.players[k] = v
	}
	for k, v := range s.names {
		snap.names[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.players = snap.players
	s.names = snap.names
	s.matches = s.matches[:snap.matches]
	s.nextPlayerID = snap.nextPlayerID
	s.nextMatchID = snap.nextMatchID
}

func (s *Store) inTx(ctx context.Context) bool {
	st, ok := ctx.Value(txKey{}).(*Store)
	return ok && st == s
}

// run выполняет fn под блокировкой хранилища. Внутри транзакции блокировка уже взята
func (s *Store) run(ctx context.Context, fn func() error) error {
	if s.inTx(ctx) {
		return fn()
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return fn()
}

// TxManager возвращает менеджер транзакций для этого хранилища
func (s *Store) TxManager() trm.Manager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	// Вложенная транзакция присоединяется к внешней
	if m.store.inTx(ctx) {
		return fn(ctx)
	}

	m.store.mtx.Lock()
	defer m.store.mtx.Unlock()

	snap := m.store.snapshot()
	defer func() {
		if p := recover(); p != nil {
			m.store.restore(snap)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, m.store)); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

func (m *txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (s *Store) EnsurePlayer(ctx context.Context, name string) (*model.Player, bool, error) {
	var (
		player  model.Player
		created bool
	)
	err := s.run(ctx, func() error {
		if id, ok := s.names[name]; ok {
			player = s.players[id]
			return nil
		}
		s.nextPlayerID++
		player = model.Player{
			ID:             s.nextPlayerID,
			Name:           name,
			Balance:        decimal.Zero,
			InitialDeposit: decimal.Zero,
			CreatedAt:      s.now(),
		}
		s.players[player.ID] = player
		s.names[name] = player.ID
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &player, created, nil
}

func (s *Store) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	var player model.Player
	err := s.run(ctx, func() error {
		p, ok := s.players[id]
		if !ok {
			return model.ErrPlayerNotFound
		}
		player = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetPlayerForUpdate - транзакции и так выполняются по одной
func (s *Store) GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error) {
	return s.GetPlayer(ctx, id)
}

func (s *Store) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	return s.update(ctx, id, func(p *model.Player) { p.Balance = balance })
}

func (s *Store) SetInitialDeposit(ctx context.Context, id int64, amount decimal.Decimal) error {
	return s.update(ctx, id, func(p *model.Player) { p.InitialDeposit = amount })
}

func (s *Store) update(ctx context.Context, id int64, fn func(p *model.Player)) error {
	return s.run(ctx, func() error {
		p, ok := s.players[id]
		if !ok {
			return model.ErrPlayerNotFound
		}
		fn(&p)
		s.players[id] = p
		return nil
	})
}

func (s *Store) AppendMatch(ctx context.Context, match *model.Match) (int64, error) {
	var id int64
	err := s.run(ctx, func() error {
		if _, ok := s.players[match.PlayerID]; !ok {
			return fmt.Errorf("append match: %w", model.ErrPlayerNotFound)
		}
		s.nextMatchID++
		id = s.nextMatchID
		m := *match
		m.ID = id
		s.matches = append(s.matches, m)
		return nil
	})
	return id, err
}

func (s *Store) ListMatches(ctx context.Context, playerID int64, limit int) ([]model.Match, error) {
	res := make([]model.Match, 0)
	err := s.run(ctx, func() error {
		for _, m := range s.matches {
			if m.PlayerID == playerID {
				res = append(res, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].PlayedAt.Equal(res[j].PlayedAt) {
			return res[i].PlayedAt.After(res[j].PlayedAt)
		}
		return res[i].ID > res[j].ID
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
