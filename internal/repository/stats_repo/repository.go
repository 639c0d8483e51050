package stats_repo

import (
	"casino_simulator/internal/model"
	"casino_simulator/internal/repository"
	"sync"

	"github.com/shopspring/decimal"
)

// defaultWindowSize Размер окна последних ставок для RTP окна
const defaultWindowSize = 500

// play Результат одной ставки для окна
type play struct {
	bet    decimal.Decimal
	payout decimal.Decimal
}

// gameState Накопленная статистика по одной игре
type gameState struct {
	plays       int64
	wins        int64
	totalBet    decimal.Decimal
	totalPayout decimal.Decimal

	window []play
}

// Реализация репозитория статистики заведения. Живёт в памяти процесса
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[model.Game]*gameState
}

// NewStatsRepository Конструктор с пустой статистикой по всем играм
func NewStatsRepository() repository.StatsRepository {
	return newStatsRepo(defaultWindowSize)
}

func newStatsRepo(windowSize int) *StatsRepo {
	games := make(map[model.Game]*gameState, len(model.Games()))
	for _, g := range model.Games() {
		games[g] = &gameState{
			totalBet:    decimal.Zero,
			totalPayout: decimal.Zero,
			window:      make([]play, 0, windowSize),
		}
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      games,
	}
}

// Record Обновление статистики после применённой ставки
func (r *StatsRepo) Record(game model.Game, bet, payout decimal.Decimal, win bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		return
	}

	st.plays++
	if win {
		st.wins++
	}
	st.totalBet = st.totalBet.Add(bet)
	st.totalPayout = st.totalPayout.Add(payout)

	// Поддерживаем размер окна
	st.window = append(st.window, play{bet: bet, payout: payout})
	if len(st.window) > r.windowSize {
		st.window = st.window[1:]
	}
}

// Snapshot Копия статистики в порядке model.Games()
func (r *StatsRepo) Snapshot() []model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.GameStats, 0, len(r.games))
	for _, g := range model.Games() {
		st := r.games[g]

		windowBet, windowPayout := decimal.Zero, decimal.Zero
		for _, p := range st.window {
			windowBet = windowBet.Add(p.bet)
			windowPayout = windowPayout.Add(p.payout)
		}

		res = append(res, model.GameStats{
			Game:        g,
			Plays:       st.plays,
			Wins:        st.wins,
			TotalBet:    st.totalBet,
			TotalPayout: st.totalPayout,
			WindowRTP:   model.ReturnToPlayer(windowBet, windowPayout),
		})
	}
	return res
}
