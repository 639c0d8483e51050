// Package payout разрешает ставку: по игре, ставке, выбору игрока и случайному исходу
// считает выигрыш или проигрыш. Пакет ничего не хранит и не генерирует случайность.
package payout

import (
	"fmt"
	"strconv"
	"strings"

	"casino_simulator/internal/model"

	"github.com/shopspring/decimal"
)

// Rules - множители и вероятности, которыми параметризован движок
type Rules interface {
	Multiplier(game model.Game) decimal.Decimal
	RouletteWinChance() float64
}

type Engine struct {
	rules Rules
}

func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Resolve разрешает одну ставку.
// Выигрыш = множитель игры * ставка, проигрыш = -ставка, обе суммы округлены до копеек.
func (e *Engine) Resolve(game model.Game, bet decimal.Decimal, input model.PlayInput, draw model.Draw) (*model.Outcome, error) {
	if err := model.ValidateBet(bet); err != nil {
		return nil, err
	}

	switch game {
	case model.GameRocket:
		return e.rocket(bet, input, draw)
	case model.GameSlots:
		return e.slots(bet, draw)
	case model.GameRoulette:
		return e.roulette(bet, input, draw)
	case model.GameDice:
		return e.dice(bet, input, draw)
	case model.GameMinesweeper:
		return e.minesweeper(bet, input, draw)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownGame, game)
	}
}

// Win - сумма выигрыша по ставке bet в игре game
func (e *Engine) Win(game model.Game, bet decimal.Decimal) decimal.Decimal {
	return model.RoundMoney(bet.Mul(e.rules.Multiplier(game)))
}

func loss(bet decimal.Decimal) decimal.Decimal {
	return model.RoundMoney(bet).Neg()
}

func (e *Engine) rocket(bet decimal.Decimal, input model.PlayInput, draw model.Draw) (*model.Outcome, error) {
	predict := strings.ToLower(strings.TrimSpace(input.Predict))
	if predict != model.DirectionUp && predict != model.DirectionDown {
		return nil, fmt.Errorf("%w: prediction must be %q or %q", model.ErrInvalidInput, model.DirectionUp, model.DirectionDown)
	}
	if draw.Direction != model.DirectionUp && draw.Direction != model.DirectionDown {
		return nil, fmt.Errorf("%w: rocket draw %q", model.ErrInvalidInput, draw.Direction)
	}

	extra := map[string]any{"outcome": draw.Direction}
	if predict == draw.Direction {
		return &model.Outcome{Win: true, Payout: e.Win(model.GameRocket, bet), Description: "You won!", Extra: extra}, nil
	}
	return &model.Outcome{Payout: loss(bet), Description: "You lost.", Extra: extra}, nil
}

func (e *Engine) slots(bet decimal.Decimal, draw model.Draw) (*model.Outcome, error) {
	if len(draw.Reels) != 3 {
		return nil, fmt.Errorf("%w: slots need 3 reels, got %d", model.ErrInvalidInput, len(draw.Reels))
	}

	reels := append([]string(nil), draw.Reels...)
	extra := map[string]any{"reels": reels}
	if reels[0] == reels[1] && reels[1] == reels[2] {
		return &model.Outcome{Win: true, Payout: e.Win(model.GameSlots, bet), Description: "🎉 Jackpot! Triple!", Extra: extra}, nil
	}
	return &model.Outcome{Payout: loss(bet), Description: "You lost.", Extra: extra}, nil
}

func (e *Engine) roulette(bet decimal.Decimal, input model.PlayInput, draw model.Draw) (*model.Outcome, error) {
	if draw.Spin < 0 || draw.Spin >= 1 {
		return nil, fmt.Errorf("%w: roulette draw %v", model.ErrInvalidInput, draw.Spin)
	}

	// Цвет ни на что не влияет, он только попадает в текст
	pick := strings.TrimSpace(input.Pick)
	extra := map[string]any{"pick": pick, "spin": draw.Spin}
	if draw.Spin < e.rules.RouletteWinChance() {
		return &model.Outcome{
			Win:         true,
			Payout:      e.Win(model.GameRoulette, bet),
			Description: fmt.Sprintf("You won on %s!", pick),
			Extra:       extra,
		}, nil
	}
	return &model.Outcome{Payout: loss(bet), Description: fmt.Sprintf("You lost on %s.", pick), Extra: extra}, nil
}

func (e *Engine) dice(bet decimal.Decimal, input model.PlayInput, draw model.Draw) (*model.Outcome, error) {
	guess, err := strconv.Atoi(strings.TrimSpace(input.Guess))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid guess %q", model.ErrInvalidInput, input.Guess)
	}
	if len(draw.Dice) == 0 {
		return nil, fmt.Errorf("%w: no dice rolled", model.ErrInvalidInput)
	}

	total := 0
	for _, d := range draw.Dice {
		if d < 1 || d > 6 {
			return nil, fmt.Errorf("%w: die value %d", model.ErrInvalidInput, d)
		}
		total += d
	}

	extra := map[string]any{"dice": append([]int(nil), draw.Dice...), "total": total}
	if guess == total {
		return &model.Outcome{
			Win:         true,
			Payout:      e.Win(model.GameDice, bet),
			Description: fmt.Sprintf("🎉 You guessed the dice sum! (%d)", total),
			Extra:       extra,
		}, nil
	}
	return &model.Outcome{Payout: loss(bet), Description: fmt.Sprintf("You lost, the dice sum was %d.", total), Extra: extra}, nil
}

// minesweeper разрешает открытие одной клетки. Draw.Mine говорит, была ли там мина
func (e *Engine) minesweeper(bet decimal.Decimal, input model.PlayInput, draw model.Draw) (*model.Outcome, error) {
	extra := map[string]any{"row": input.Row, "col": input.Col, "mine": draw.Mine}
	if draw.Mine {
		return &model.Outcome{Payout: loss(bet), Description: "💥 Mine! You lost.", Extra: extra}, nil
	}
	return &model.Outcome{Win: true, Payout: e.Win(model.GameMinesweeper, bet), Description: "Safe cell!", Extra: extra}, nil
}
