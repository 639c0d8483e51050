package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Game string

const (
	GameRocket      Game = "rocket"
	GameSlots       Game = "slots"
	GameRoulette    Game = "roulette"
	GameDice        Game = "dice"
	GameMinesweeper Game = "minesweeper"
)

// Направления ракеты
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// gameAliases Старые (португальские) названия игр, которые всё ещё приходят от клиента
var gameAliases = map[string]Game{
	"rocket":       GameRocket,
	"foguete":      GameRocket,
	"slots":        GameSlots,
	"caca_niqueis": GameSlots,
	"roulette":     GameRoulette,
	"roleta":       GameRoulette,
	"dice":         GameDice,
	"dados":        GameDice,
	"minesweeper":  GameMinesweeper,
	"campo_minado": GameMinesweeper,
}

// ParseGame возвращает каноническое название игры
func ParseGame(name string) (Game, error) {
	g, ok := gameAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", ErrUnknownGame
	}
	return g, nil
}

// Games - все игры в порядке вывода статистики
func Games() []Game {
	return []Game{GameRocket, GameMinesweeper, GameSlots, GameRoulette, GameDice}
}

// PlayInput - выбор игрока. Какие поля нужны, зависит от игры
type PlayInput struct {
	Predict string // rocket: up/down
	Pick    string // roulette: цвет, только для текста
	Guess   string // dice: сумма костей, как пришла от клиента
	Row     int    // minesweeper
	Col     int    // minesweeper
}

// Draw - случайный исход, нужный конкретной игре
type Draw struct {
	Direction string   // rocket
	Reels     []string // slots
	Spin      float64  // roulette, [0, 1)
	Dice      []int    // dice
	Mine      bool     // minesweeper: открытая клетка - мина
}

// Outcome - результат разрешения ставки движком выплат
type Outcome struct {
	Win         bool
	Payout      decimal.Decimal
	Description string
	Extra       map[string]any
}

type PlayRequest struct {
	Game  string
	Bet   decimal.Decimal
	Input PlayInput
}

type PlayResult struct {
	Game       Game
	Win        bool
	Bet        decimal.Decimal
	Payout     decimal.Decimal
	NewBalance decimal.Decimal
	ResultText string
	Advisory   string
	Duration   int64 // секунды с момента входа
	MatchID    int64
	Extra      map[string]any
}

// GameStats - статистика заведения по одной игре
type GameStats struct {
	Game        Game
	Plays       int64
	Wins        int64
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal // сумма выплат со знаком (с точки зрения игрока)
	WindowRTP   decimal.Decimal // RTP по последним ставкам
}

// RTP - сколько процентов от поставленного вернулось игрокам
func (s GameStats) RTP() decimal.Decimal {
	if s.TotalBet.IsZero() {
		return decimal.Zero
	}
	return ReturnToPlayer(s.TotalBet, s.TotalPayout)
}

// ReturnToPlayer - (ставки + выплаты) / ставки * 100. Выплата проигрыша равна -bet
func ReturnToPlayer(bet, payout decimal.Decimal) decimal.Decimal {
	if bet.IsZero() {
		return decimal.Zero
	}
	returned := bet.Add(payout)
	return returned.Div(bet).Mul(decimal.NewFromInt(100)).Round(2)
}
