// Package random выдаёт случайные исходы для игр.
// Движок выплат сам ничего не генерирует: исход приходит снаружи, поэтому в тестах его можно подменить.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"

	"casino_simulator/internal/model"
)

type Provider interface {
	// Draw выдаёт исход для одной ставки в игре game
	Draw(game model.Game) (model.Draw, error)
	// MinePositions выбирает mines разных клеток из cells без повторений
	MinePositions(cells, mines int) ([]int, error)
}

// DefaultSymbols - символы барабанов слотов
var DefaultSymbols = []string{"🍒", "🍋", "🍇", "🍉", "⭐", "🔔"}

// DefaultDiceCount - сколько костей бросается в игре dice
const DefaultDiceCount = 5

type provider struct {
	mtx       sync.Mutex
	rnd       *rand.Rand
	symbols   []string
	diceCount int
}

// New создаёт провайдер на ChaCha8 с сидом из crypto/rand
func New(symbols []string, diceCount int) Provider {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("failed to seed random provider: " + err.Error())
	}
	return newProvider(rand.New(rand.NewChaCha8(seed)), symbols, diceCount)
}

// NewSeeded - воспроизводимый провайдер для тестов и симуляций
func NewSeeded(seed uint64, symbols []string, diceCount int) Provider {
	return newProvider(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), symbols, diceCount)
}

func newProvider(rnd *rand.Rand, symbols []string, diceCount int) *provider {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	if diceCount <= 0 {
		diceCount = DefaultDiceCount
	}
	return &provider{
		rnd:       rnd,
		symbols:   append([]string(nil), symbols...),
		diceCount: diceCount,
	}
}

func (p *provider) Draw(game model.Game) (model.Draw, error) {
	// *rand.Rand не потокобезопасен
	p.mtx.Lock()
	defer p.mtx.Unlock()

	switch game {
	case model.GameRocket:
		if p.rnd.IntN(2) == 0 {
			return model.Draw{Direction: model.DirectionUp}, nil
		}
		return model.Draw{Direction: model.DirectionDown}, nil
	case model.GameSlots:
		reels := make([]string, 3)
		for i := range reels {
			reels[i] = p.symbols[p.rnd.IntN(len(p.symbols))]
		}
		return model.Draw{Reels: reels}, nil
	case model.GameRoulette:
		return model.Draw{Spin: p.rnd.Float64()}, nil
	case model.GameDice:
		dice := make([]int, p.diceCount)
		for i := range dice {
			dice[i] = p.rnd.IntN(6) + 1
		}
		return model.Draw{Dice: dice}, nil
	default:
		return model.Draw{}, fmt.Errorf("%w: no single draw for %q", model.ErrUnknownGame, game)
	}
}

func (p *provider) MinePositions(cells, mines int) ([]int, error) {
	if mines <= 0 || mines >= cells {
		return nil, fmt.Errorf("%w: %d mines on %d cells", model.ErrInvalidInput, mines, cells)
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.rnd.Perm(cells)[:mines], nil
}
