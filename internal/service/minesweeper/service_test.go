package minesweeper

import (
	"casino_simulator/internal/config/env"
	"casino_simulator/internal/middleware"
	"casino_simulator/internal/model"
	"casino_simulator/internal/payout"
	"casino_simulator/internal/random"
	"casino_simulator/internal/repository"
	"casino_simulator/internal/repository/memory"
	"casino_simulator/internal/repository/stats_repo"
	"casino_simulator/internal/service/account"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var d = decimal.RequireFromString

// Мины на диагонали 5x5
var diagonal = []int{0, 6, 12, 18, 24}

type fixture struct {
	serv  *serv
	store *memory.Store
	ctx   context.Context
	id    int64
}

func newFixture(t *testing.T, balance string) *fixture {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()
	p, _, err := store.EnsurePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("EnsurePlayer: %v", err)
	}
	_ = store.UpdateBalance(ctx, p.ID, d(balance))
	_ = store.SetInitialDeposit(ctx, p.ID, d(balance))

	rules := env.DefaultGamesConfig()
	acc := account.NewAccountService(store.TxManager(), store, store, rules.MinFirstDeposit())
	s := NewMinesweeperService(
		payout.NewEngine(rules),
		&random.Fixed{Mines: diagonal},
		acc,
		store,
		memory.NewBoards(time.Hour),
		stats_repo.NewStatsRepository(),
		5, 5,
	).(*serv)

	return &fixture{
		serv:  s,
		store: store,
		ctx:   middleware.WithIdentity(ctx, model.Identity{PlayerID: p.ID, Name: p.Name, ConnectedAt: time.Now()}),
		id:    p.ID,
	}
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	p, err := f.store.GetPlayer(context.Background(), f.id)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	return p.Balance
}

func TestStart(t *testing.T) {
	f := newFixture(t, "100")

	view, err := f.serv.Start(f.ctx, d("10"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.State != model.BoardActive || view.Mines != 5 || view.Size != 5 || view.SafeRemaining != 20 {
		t.Errorf("unexpected board %+v", view)
	}
	if len(view.MineCells) != 0 {
		t.Errorf("mines must stay hidden on an active board")
	}
	// Старт ничего не списывает
	if !f.balance(t).Equal(d("100")) {
		t.Errorf("start changed balance to %s", f.balance(t))
	}

	if _, err := f.serv.Start(f.ctx, d("100.01")); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := f.serv.Start(context.Background(), d("1")); !errors.Is(err, model.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRevealSafeThenRepeat(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := f.serv.Reveal(f.ctx, 0, 1)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res.Mine || res.Payout.StringFixed(2) != "2.00" || res.NewBalance.StringFixed(2) != "102.00" {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Board.State != model.BoardActive || len(res.Board.Revealed) != 1 {
		t.Errorf("unexpected board %+v", res.Board)
	}

	if _, err := f.serv.Reveal(f.ctx, 0, 1); !errors.Is(err, model.ErrAlreadyRevealed) {
		t.Fatalf("expected ErrAlreadyRevealed, got %v", err)
	}
	if _, err := f.serv.Reveal(f.ctx, 5, 0); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if !f.balance(t).Equal(d("102")) {
		t.Errorf("failed reveals changed balance to %s", f.balance(t))
	}

	view, _ := f.serv.Board(f.ctx)
	if len(view.Revealed) != 1 {
		t.Errorf("failed reveals changed the board: %+v", view.Revealed)
	}
}

func TestRevealMineEndsSession(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := f.serv.Reveal(f.ctx, 2, 2)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if !res.Mine || res.Payout.StringFixed(2) != "-10.00" || res.NewBalance.StringFixed(2) != "90.00" {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Board.State != model.BoardLost || len(res.Board.MineCells) != 5 {
		t.Errorf("expected a lost board with mines shown, got %+v", res.Board)
	}

	if _, err := f.serv.Reveal(f.ctx, 0, 1); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestRevealWithoutBoard(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Reveal(f.ctx, 0, 0); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestExhaustedBoardStaysActive(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Start(f.ctx, d("1")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	mined := map[int]bool{}
	for _, m := range diagonal {
		mined[m] = true
	}

	var last *model.RevealResult
	for i := 0; i < 25; i++ {
		if mined[i] {
			continue
		}
		res, err := f.serv.Reveal(f.ctx, i/5, i%5)
		if err != nil {
			t.Fatalf("Reveal %d: %v", i, err)
		}
		last = res
	}

	if last.Board.State != model.BoardExhausted || last.Board.SafeRemaining != 0 {
		t.Fatalf("expected an exhausted board, got %+v", last.Board)
	}
	// 100 + 20 * 0.20
	if !f.balance(t).Equal(d("104")) {
		t.Errorf("expected balance 104, got %s", f.balance(t))
	}

	// Поле всё ещё принимает ходы, остались только мины
	res, err := f.serv.Reveal(f.ctx, 0, 0)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if !res.Mine || res.Board.State != model.BoardLost {
		t.Errorf("expected a mine on an exhausted board, got %+v", res)
	}
}

func TestLedgerErrorLeavesBoard(t *testing.T) {
	f := newFixture(t, "10")
	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	_ = f.store.UpdateBalance(context.Background(), f.id, d("5"))

	if _, err := f.serv.Reveal(f.ctx, 0, 1); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	view, err := f.serv.Board(f.ctx)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if view.State != model.BoardActive || len(view.Revealed) != 0 {
		t.Errorf("board changed after a ledger error: %+v", view)
	}
}

func TestRestartAndDiscard(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.serv.Reveal(f.ctx, 0, 1); err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	view, err := f.serv.Start(f.ctx, d("20"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(view.Revealed) != 0 || !view.Bet.Equal(d("20")) {
		t.Errorf("expected a fresh board, got %+v", view)
	}

	if err := f.serv.Discard(f.ctx, f.id); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	view, err = f.serv.Board(f.ctx)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if view.State != model.BoardNotStarted {
		t.Errorf("expected not_started after discard, got %s", view.State)
	}
}

var errBoardStore = errors.New("board store unavailable")

// flakyBoards ломает SaveBoard, пока failSave = true
type flakyBoards struct {
	repository.BoardRepository
	failSave bool
}

func (b *flakyBoards) SaveBoard(ctx context.Context, board *model.Board) error {
	if b.failSave {
		return errBoardStore
	}
	return b.BoardRepository.SaveBoard(ctx, board)
}

func TestBoardSaveFailureDoesNotPay(t *testing.T) {
	f := newFixture(t, "100")
	boards := &flakyBoards{BoardRepository: f.serv.boardRepo}
	f.serv.boardRepo = boards

	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	boards.failSave = true
	if _, err := f.serv.Reveal(f.ctx, 0, 1); !errors.Is(err, errBoardStore) {
		t.Fatalf("expected board store error, got %v", err)
	}
	if !f.balance(t).Equal(d("100")) {
		t.Errorf("balance changed to %s without a saved board", f.balance(t))
	}
	matches, _ := f.store.ListMatches(context.Background(), f.id, 10)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}

	boards.failSave = false
	if _, err := f.serv.Reveal(f.ctx, 0, 1); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if _, err := f.serv.Reveal(f.ctx, 0, 1); !errors.Is(err, model.ErrAlreadyRevealed) {
		t.Fatalf("expected ErrAlreadyRevealed, got %v", err)
	}
	if !f.balance(t).Equal(d("102")) {
		t.Errorf("expected a single payout to 102, got %s", f.balance(t))
	}
	matches, _ = f.store.ListMatches(context.Background(), f.id, 10)
	if len(matches) != 1 {
		t.Errorf("expected exactly one match for the cell, got %d", len(matches))
	}
}

func TestMineSaveFailureKeepsBalance(t *testing.T) {
	f := newFixture(t, "100")
	boards := &flakyBoards{BoardRepository: f.serv.boardRepo}
	f.serv.boardRepo = boards

	if _, err := f.serv.Start(f.ctx, d("10")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	boards.failSave = true
	if _, err := f.serv.Reveal(f.ctx, 0, 0); !errors.Is(err, errBoardStore) {
		t.Fatalf("expected board store error, got %v", err)
	}
	if !f.balance(t).Equal(d("100")) {
		t.Errorf("mine was charged without a saved board: %s", f.balance(t))
	}

	boards.failSave = false
	res, err := f.serv.Reveal(f.ctx, 0, 0)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res.Board.State != model.BoardLost || !f.balance(t).Equal(d("90")) {
		t.Errorf("expected a lost board and balance 90, got %s and %s", res.Board.State, f.balance(t))
	}
}

func TestPlayerLocksReleased(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.serv.Start(f.ctx, d("1")); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var wg sync.WaitGroup
	for _, cell := range []int{1, 2, 3, 4, 5} {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			_, _ = f.serv.Reveal(f.ctx, cell/5, cell%5)
		}(cell)
	}
	wg.Wait()

	if err := f.serv.Discard(f.ctx, f.id); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	f.serv.locksMtx.Lock()
	n := len(f.serv.locks)
	f.serv.locksMtx.Unlock()
	if n != 0 {
		t.Errorf("expected no player locks left, got %d", n)
	}

	// 5 безопасных клеток по 0.20
	if !f.balance(t).Equal(d("101")) {
		t.Errorf("expected balance 101 after concurrent reveals, got %s", f.balance(t))
	}
}
