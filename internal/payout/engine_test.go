package payout

import (
	"errors"
	"testing"

	"casino_simulator/internal/model"

	"github.com/shopspring/decimal"
)

type rules struct{}

func (rules) Multiplier(game model.Game) decimal.Decimal {
	switch game {
	case model.GameRocket:
		return decimal.RequireFromString("0.25")
	case model.GameSlots, model.GameDice:
		return decimal.NewFromInt(5)
	case model.GameRoulette:
		return decimal.NewFromInt(3)
	case model.GameMinesweeper:
		return decimal.RequireFromString("0.20")
	}
	return decimal.Zero
}

func (rules) RouletteWinChance() float64 { return 0.15 }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestResolve(t *testing.T) {
	engine := NewEngine(rules{})

	tests := []struct {
		name       string
		game       model.Game
		bet        string
		input      model.PlayInput
		draw       model.Draw
		wantWin    bool
		wantPayout string
		wantText   string
	}{
		{"rocket win", model.GameRocket, "20", model.PlayInput{Predict: "up"}, model.Draw{Direction: "up"}, true, "5.00", "You won!"},
		{"rocket prediction is case insensitive", model.GameRocket, "20", model.PlayInput{Predict: " DOWN "}, model.Draw{Direction: "down"}, true, "5.00", "You won!"},
		{"rocket loss", model.GameRocket, "20", model.PlayInput{Predict: "up"}, model.Draw{Direction: "down"}, false, "-20.00", "You lost."},
		{"rocket rounds half even", model.GameRocket, "0.10", model.PlayInput{Predict: "up"}, model.Draw{Direction: "up"}, true, "0.02", "You won!"},
		{"rocket rounds half even up", model.GameRocket, "0.30", model.PlayInput{Predict: "up"}, model.Draw{Direction: "up"}, true, "0.08", "You won!"},
		{"slots triple", model.GameSlots, "50", model.PlayInput{}, model.Draw{Reels: []string{"🍒", "🍒", "🍒"}}, true, "250.00", "🎉 Jackpot! Triple!"},
		{"slots mixed", model.GameSlots, "50", model.PlayInput{}, model.Draw{Reels: []string{"🍒", "🍒", "🔔"}}, false, "-50.00", "You lost."},
		{"roulette win below threshold", model.GameRoulette, "10", model.PlayInput{Pick: "red"}, model.Draw{Spin: 0.149}, true, "30.00", "You won on red!"},
		{"roulette threshold is exclusive", model.GameRoulette, "10", model.PlayInput{Pick: "black"}, model.Draw{Spin: 0.15}, false, "-10.00", "You lost on black."},
		{"dice exact sum", model.GameDice, "10", model.PlayInput{Guess: "17"}, model.Draw{Dice: []int{1, 2, 3, 5, 6}}, true, "50.00", "🎉 You guessed the dice sum! (17)"},
		{"dice wrong sum", model.GameDice, "10", model.PlayInput{Guess: "18"}, model.Draw{Dice: []int{1, 2, 3, 5, 6}}, false, "-10.00", "You lost, the dice sum was 17."},
		{"minesweeper safe cell", model.GameMinesweeper, "10", model.PlayInput{Row: 1, Col: 2}, model.Draw{}, true, "2.00", "Safe cell!"},
		{"minesweeper mine", model.GameMinesweeper, "10", model.PlayInput{Row: 1, Col: 2}, model.Draw{Mine: true}, false, "-10.00", "💥 Mine! You lost."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Resolve(tt.game, dec(tt.bet), tt.input, tt.draw)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if out.Win != tt.wantWin {
				t.Errorf("win = %v, want %v", out.Win, tt.wantWin)
			}
			if !out.Payout.Equal(dec(tt.wantPayout)) {
				t.Errorf("payout = %s, want %s", out.Payout, tt.wantPayout)
			}
			if out.Description != tt.wantText {
				t.Errorf("description = %q, want %q", out.Description, tt.wantText)
			}
		})
	}
}

func TestResolveExtras(t *testing.T) {
	engine := NewEngine(rules{})

	out, err := engine.Resolve(model.GameDice, dec("1"), model.PlayInput{Guess: "5"}, model.Draw{Dice: []int{1, 1, 1, 1, 1}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Extra["total"] != 5 {
		t.Errorf("total = %v, want 5", out.Extra["total"])
	}

	out, err = engine.Resolve(model.GameSlots, dec("1"), model.PlayInput{}, model.Draw{Reels: []string{"⭐", "🍋", "🍇"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	reels, ok := out.Extra["reels"].([]string)
	if !ok || len(reels) != 3 || reels[1] != "🍋" {
		t.Errorf("reels = %v", out.Extra["reels"])
	}
}

func TestResolveErrors(t *testing.T) {
	engine := NewEngine(rules{})

	tests := []struct {
		name  string
		game  model.Game
		bet   string
		input model.PlayInput
		draw  model.Draw
		want  error
	}{
		{"unknown game", model.Game("poker"), "10", model.PlayInput{}, model.Draw{}, model.ErrUnknownGame},
		{"zero bet", model.GameRocket, "0", model.PlayInput{Predict: "up"}, model.Draw{Direction: "up"}, model.ErrInvalidBet},
		{"negative bet", model.GameSlots, "-5", model.PlayInput{}, model.Draw{Reels: []string{"a", "a", "a"}}, model.ErrInvalidInput},
		{"fractional cents", model.GameSlots, "1.005", model.PlayInput{}, model.Draw{Reels: []string{"a", "a", "a"}}, model.ErrInvalidInput},
		{"bad prediction", model.GameRocket, "10", model.PlayInput{Predict: "sideways"}, model.Draw{Direction: "up"}, model.ErrInvalidInput},
		{"malformed guess", model.GameDice, "10", model.PlayInput{Guess: "seven"}, model.Draw{Dice: []int{1, 1, 1, 1, 1}}, model.ErrInvalidInput},
		{"empty guess", model.GameDice, "10", model.PlayInput{}, model.Draw{Dice: []int{1, 1, 1, 1, 1}}, model.ErrInvalidInput},
		{"impossible die", model.GameDice, "10", model.PlayInput{Guess: "5"}, model.Draw{Dice: []int{0, 1, 1, 1, 1}}, model.ErrInvalidInput},
		{"two reels", model.GameSlots, "10", model.PlayInput{}, model.Draw{Reels: []string{"a", "a"}}, model.ErrInvalidInput},
		{"spin out of range", model.GameRoulette, "10", model.PlayInput{}, model.Draw{Spin: 1}, model.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Resolve(tt.game, dec(tt.bet), tt.input, tt.draw)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

// Десять тысяч ставок подряд: баланс в decimal совпадает с расчётом в целых копейках
func TestResolveNoDrift(t *testing.T) {
	engine := NewEngine(rules{})

	balance := dec("1000.00")
	cents := int64(100000)
	bet := dec("0.30")

	for i := 0; i < 10000; i++ {
		draw := model.Draw{Direction: model.DirectionUp}
		if i%3 == 0 {
			draw.Direction = model.DirectionDown
		}
		out, err := engine.Resolve(model.GameRocket, bet, model.PlayInput{Predict: "up"}, draw)
		if err != nil {
			t.Fatalf("play %d: %v", i, err)
		}
		balance = balance.Add(out.Payout)

		if out.Win {
			cents += 8 // 0.25 * 30 = 7.5 -> 8 (half even)
		} else {
			cents -= 30
		}
	}

	if want := decimal.New(cents, -2); !balance.Equal(want) {
		t.Fatalf("balance = %s, want %s", balance, want)
	}
	if balance.Exponent() < -2 {
		t.Fatalf("balance %s has more than 2 decimal places", balance.String())
	}
}
