package random

import "casino_simulator/internal/model"

// Fixed всегда возвращает один и тот же исход и одну и ту же расстановку мин
type Fixed struct {
	Outcome model.Draw
	Mines   []int
}

func (f *Fixed) Draw(model.Game) (model.Draw, error) {
	return f.Outcome, nil
}

func (f *Fixed) MinePositions(int, int) ([]int, error) {
	return append([]int(nil), f.Mines...), nil
}
