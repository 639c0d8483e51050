package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"casino_simulator/internal/model"

	"github.com/shopspring/decimal"
)

func TestParseGamesConfig(t *testing.T) {
	data := []byte(`
games:
  rocket:
    multiplier: "0.5"
  minesweeper:
    size: 4
    mines: 3
    ttl: 10m
deposit:
  min_first: "20"
`)

	cfg, err := parseGamesConfig(data)
	if err != nil {
		t.Fatalf("parseGamesConfig: %v", err)
	}

	if got := cfg.Multiplier(model.GameRocket); !got.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("rocket multiplier = %s, want 0.5", got)
	}
	if got := cfg.Multiplier(model.GameSlots); !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("slots multiplier = %s, want default 5", got)
	}
	if cfg.BoardSize() != 4 || cfg.BoardMines() != 3 {
		t.Errorf("board = %dx%d/%d, want 4x4/3", cfg.BoardSize(), cfg.BoardSize(), cfg.BoardMines())
	}
	if cfg.BoardTTL() != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", cfg.BoardTTL())
	}
	if !cfg.MinFirstDeposit().Equal(decimal.NewFromInt(20)) {
		t.Errorf("min first deposit = %s, want 20", cfg.MinFirstDeposit())
	}
	if cfg.RouletteWinChance() != 0.15 {
		t.Errorf("roulette chance = %v, want default 0.15", cfg.RouletteWinChance())
	}
}

func TestParseGamesConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative multiplier": "games:\n  dice:\n    multiplier: \"-1\"\n",
		"garbage multiplier":  "games:\n  dice:\n    multiplier: \"abc\"\n",
		"too many mines":      "games:\n  minesweeper:\n    size: 2\n    mines: 4\n",
		"chance out of range": "games:\n  roulette:\n    win_chance: 1.5\n",
		"bad ttl":             "games:\n  minesweeper:\n    ttl: soon\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parseGamesConfig([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewGamesConfigFromYAMLMissingFile(t *testing.T) {
	t.Setenv(gamesConfigEnvName, "")

	cfg, err := NewGamesConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.BoardSize() != 5 || cfg.BoardMines() != 5 {
		t.Errorf("default board = %d/%d, want 5/5", cfg.BoardSize(), cfg.BoardMines())
	}
}

func TestNewGamesConfigFromYAMLEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	if err := os.WriteFile(path, []byte("games:\n  dice:\n    count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(gamesConfigEnvName, path)

	cfg, err := NewGamesConfigFromYAML("config.yaml")
	if err != nil {
		t.Fatalf("NewGamesConfigFromYAML: %v", err)
	}
	if cfg.DiceCount() != 3 {
		t.Errorf("dice count = %d, want 3", cfg.DiceCount())
	}
}
