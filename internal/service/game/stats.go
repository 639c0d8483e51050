package game

import "casino_simulator/internal/model"

func (s *serv) Stats() []model.GameStats {
	return s.statsRepo.Snapshot()
}
