package config

import (
	"time"

	"casino_simulator/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LoggerConfig interface {
	Development() bool
}

// GamesConfig Настройки игр из config.yaml
type GamesConfig interface {
	Multiplier(game model.Game) decimal.Decimal
	RouletteWinChance() float64
	SlotSymbols() []string
	DiceCount() int

	BoardSize() int
	BoardMines() int
	BoardTTL() time.Duration

	MinFirstDeposit() decimal.Decimal
	PlaysPerMinute() int
}
