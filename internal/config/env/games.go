package env

import (
	"casino_simulator/internal/config"
	"casino_simulator/internal/model"
	"casino_simulator/internal/random"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const gamesConfigEnvName = "GAMES_CONFIG"

// gamesFile Структура config.yaml
type gamesFile struct {
	Games struct {
		Rocket struct {
			Multiplier string `yaml:"multiplier"`
		} `yaml:"rocket"`
		Slots struct {
			Multiplier string   `yaml:"multiplier"`
			Symbols    []string `yaml:"symbols"`
		} `yaml:"slots"`
		Roulette struct {
			Multiplier string  `yaml:"multiplier"`
			WinChance  float64 `yaml:"win_chance"`
		} `yaml:"roulette"`
		Dice struct {
			Multiplier string `yaml:"multiplier"`
			Count      int    `yaml:"count"`
		} `yaml:"dice"`
		Minesweeper struct {
			Multiplier string `yaml:"multiplier"`
			Size       int    `yaml:"size"`
			Mines      int    `yaml:"mines"`
			TTL        string `yaml:"ttl"`
		} `yaml:"minesweeper"`
	} `yaml:"games"`
	Deposit struct {
		MinFirst string `yaml:"min_first"`
	} `yaml:"deposit"`
	RateLimit struct {
		PlaysPerMinute int `yaml:"plays_per_minute"`
	} `yaml:"rate_limit"`
}

type gamesConfig struct {
	multipliers     map[model.Game]decimal.Decimal
	rouletteChance  float64
	symbols         []string
	diceCount       int
	boardSize       int
	boardMines      int
	boardTTL        time.Duration
	minFirstDeposit decimal.Decimal
	playsPerMinute  int
}

// DefaultGamesConfig - настройки по умолчанию, если config.yaml нет
func DefaultGamesConfig() config.GamesConfig {
	return defaultGamesConfig()
}

func defaultGamesConfig() *gamesConfig {
	return &gamesConfig{
		multipliers: map[model.Game]decimal.Decimal{
			model.GameRocket:      decimal.RequireFromString("0.25"),
			model.GameSlots:       decimal.RequireFromString("5.0"),
			model.GameRoulette:    decimal.RequireFromString("3.0"),
			model.GameDice:        decimal.RequireFromString("5.0"),
			model.GameMinesweeper: decimal.RequireFromString("0.20"),
		},
		rouletteChance:  0.15,
		symbols:         random.DefaultSymbols,
		diceCount:       random.DefaultDiceCount,
		boardSize:       5,
		boardMines:      5,
		boardTTL:        30 * time.Minute,
		minFirstDeposit: decimal.NewFromInt(50),
		playsPerMinute:  120,
	}
}

// NewGamesConfigFromYAML читает настройки игр. Путь можно переопределить через GAMES_CONFIG.
// Отсутствующий файл - не ошибка, берутся значения по умолчанию
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	if p := os.Getenv(gamesConfigEnvName); len(p) > 0 {
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultGamesConfig(), nil
		}
		return nil, fmt.Errorf("read games config: %w", err)
	}

	return parseGamesConfig(data)
}

func parseGamesConfig(data []byte) (*gamesConfig, error) {
	var file gamesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse games config: %w", err)
	}

	cfg := defaultGamesConfig()

	multipliers := map[model.Game]string{
		model.GameRocket:      file.Games.Rocket.Multiplier,
		model.GameSlots:       file.Games.Slots.Multiplier,
		model.GameRoulette:    file.Games.Roulette.Multiplier,
		model.GameDice:        file.Games.Dice.Multiplier,
		model.GameMinesweeper: file.Games.Minesweeper.Multiplier,
	}
	for game, raw := range multipliers {
		if raw == "" {
			continue
		}
		m, err := decimal.NewFromString(raw)
		if err != nil || !m.IsPositive() {
			return nil, fmt.Errorf("invalid %s multiplier %q", game, raw)
		}
		cfg.multipliers[game] = m
	}

	if c := file.Games.Roulette.WinChance; c != 0 {
		if c < 0 || c >= 1 {
			return nil, fmt.Errorf("invalid roulette win chance %v", c)
		}
		cfg.rouletteChance = c
	}

	if s := file.Games.Slots.Symbols; len(s) > 0 {
		if len(s) < 2 {
			return nil, errors.New("slots need at least two symbols")
		}
		cfg.symbols = s
	}

	if n := file.Games.Dice.Count; n != 0 {
		if n < 0 {
			return nil, fmt.Errorf("invalid dice count %d", n)
		}
		cfg.diceCount = n
	}

	if n := file.Games.Minesweeper.Size; n != 0 {
		cfg.boardSize = n
	}
	if n := file.Games.Minesweeper.Mines; n != 0 {
		cfg.boardMines = n
	}
	if cfg.boardSize < 2 || cfg.boardMines <= 0 || cfg.boardMines >= cfg.boardSize*cfg.boardSize {
		return nil, fmt.Errorf("invalid minesweeper board %dx%d with %d mines", cfg.boardSize, cfg.boardSize, cfg.boardMines)
	}

	if raw := file.Games.Minesweeper.TTL; raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid minesweeper ttl %q", raw)
		}
		cfg.boardTTL = ttl
	}

	if raw := file.Deposit.MinFirst; raw != "" {
		m, err := decimal.NewFromString(raw)
		if err != nil || m.IsNegative() {
			return nil, fmt.Errorf("invalid minimum first deposit %q", raw)
		}
		cfg.minFirstDeposit = m
	}

	if n := file.RateLimit.PlaysPerMinute; n != 0 {
		cfg.playsPerMinute = n
	}

	return cfg, nil
}

func (c *gamesConfig) Multiplier(game model.Game) decimal.Decimal {
	return c.multipliers[game]
}

func (c *gamesConfig) RouletteWinChance() float64 {
	return c.rouletteChance
}

func (c *gamesConfig) SlotSymbols() []string {
	return append([]string(nil), c.symbols...)
}

func (c *gamesConfig) DiceCount() int {
	return c.diceCount
}

func (c *gamesConfig) BoardSize() int {
	return c.boardSize
}

func (c *gamesConfig) BoardMines() int {
	return c.boardMines
}

func (c *gamesConfig) BoardTTL() time.Duration {
	return c.boardTTL
}

func (c *gamesConfig) MinFirstDeposit() decimal.Decimal {
	return c.minFirstDeposit
}

// PlaysPerMinute - лимит ставок в минуту на игрока, < 0 - без лимита
func (c *gamesConfig) PlaysPerMinute() int {
	return c.playsPerMinute
}
