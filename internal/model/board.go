package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BoardState string

const (
	BoardNotStarted BoardState = "not_started"
	BoardActive     BoardState = "active"
	// BoardExhausted - поле активно, но безопасных клеток не осталось.
	// Отдельного выигрышного состояния у игры нет.
	BoardExhausted BoardState = "exhausted"
	BoardLost      BoardState = "lost"
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - поле сапёра одного игрока. Маски хранятся построчно в одномерных слайсах
type Board struct {
	PlayerID  int64           `json:"player_id"`
	Size      int             `json:"size"`
	Mined     []bool          `json:"mined"`
	Revealed  []bool          `json:"revealed"`
	Bet       decimal.Decimal `json:"bet"`
	Active    bool            `json:"active"`
	StartedAt time.Time       `json:"started_at"`
}

// NewBoard создаёт активное поле size x size с минами в позициях minePositions (индексы row*size+col)
func NewBoard(playerID int64, size int, minePositions []int, bet decimal.Decimal, now time.Time) (*Board, error) {
	cells := size * size
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidInput, size)
	}
	if len(minePositions) == 0 || len(minePositions) >= cells {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrInvalidInput, len(minePositions), cells)
	}

	mined := make([]bool, cells)
	for _, pos := range minePositions {
		if pos < 0 || pos >= cells {
			return nil, fmt.Errorf("%w: mine position %d", ErrInvalidInput, pos)
		}
		if mined[pos] {
			return nil, fmt.Errorf("%w: duplicate mine position %d", ErrInvalidInput, pos)
		}
		mined[pos] = true
	}

	return &Board{
		PlayerID:  playerID,
		Size:      size,
		Mined:     mined,
		Revealed:  make([]bool, cells),
		Bet:       bet,
		Active:    true,
		StartedAt: now,
	}, nil
}

func (b *Board) index(row, col int) (int, error) {
	if row < 0 || col < 0 || row >= b.Size || col >= b.Size {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, row, col, b.Size, b.Size)
	}
	return row*b.Size + col, nil
}

// Check проверяет, можно ли открыть клетку, и говорит, мина ли там. Поле не меняется
func (b *Board) Check(row, col int) (mine bool, err error) {
	if !b.Active {
		return false, ErrNoActiveSession
	}
	idx, err := b.index(row, col)
	if err != nil {
		return false, err
	}
	if b.Revealed[idx] {
		return false, fmt.Errorf("%w: (%d, %d)", ErrAlreadyRevealed, row, col)
	}
	return b.Mined[idx], nil
}

// Reveal открывает клетку. Попадание в мину деактивирует поле
func (b *Board) Reveal(row, col int) (mine bool, err error) {
	mine, err = b.Check(row, col)
	if err != nil {
		return false, err
	}
	idx, _ := b.index(row, col)
	b.Revealed[idx] = true
	if mine {
		b.Active = false
	}
	return mine, nil
}

func (b *Board) State() BoardState {
	switch {
	case !b.Active:
		return BoardLost
	case b.SafeRemaining() == 0:
		return BoardExhausted
	default:
		return BoardActive
	}
}

func (b *Board) MineCount() int {
	n := 0
	for _, m := range b.Mined {
		if m {
			n++
		}
	}
	return n
}

// SafeRemaining - сколько безопасных клеток ещё закрыто
func (b *Board) SafeRemaining() int {
	n := 0
	for i, m := range b.Mined {
		if !m && !b.Revealed[i] {
			n++
		}
	}
	return n
}

func (b *Board) RevealedCells() []Cell {
	return b.cells(func(i int) bool { return b.Revealed[i] })
}

func (b *Board) MineCells() []Cell {
	return b.cells(func(i int) bool { return b.Mined[i] })
}

func (b *Board) cells(match func(i int) bool) []Cell {
	res := make([]Cell, 0)
	for i := range b.Mined {
		if match(i) {
			res = append(res, Cell{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return res
}

// Clone - глубокая копия, чтобы хранилища не делили слайсы с вызывающим кодом
func (b *Board) Clone() *Board {
	c := *b
	c.Mined = append([]bool(nil), b.Mined...)
	c.Revealed = append([]bool(nil), b.Revealed...)
	return &c
}

// BoardView - то, что видит игрок (без расположения мин, пока игра не проиграна)
type BoardView struct {
	Size          int
	Mines         int
	Bet           decimal.Decimal
	State         BoardState
	Revealed      []Cell
	MineCells     []Cell // заполняется только после проигрыша
	SafeRemaining int
}

func (b *Board) View() *BoardView {
	v := &BoardView{
		Size:          b.Size,
		Mines:         b.MineCount(),
		Bet:           b.Bet,
		State:         b.State(),
		Revealed:      b.RevealedCells(),
		SafeRemaining: b.SafeRemaining(),
	}
	if v.State == BoardLost {
		v.MineCells = b.MineCells()
	}
	return v
}

// RevealResult - ответ на открытие клетки
type RevealResult struct {
	Row        int
	Col        int
	Mine       bool
	Payout     decimal.Decimal
	NewBalance decimal.Decimal
	ResultText string
	Advisory   string
	MatchID    int64
	Board      *BoardView
}
