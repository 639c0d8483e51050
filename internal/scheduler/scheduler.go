// Package scheduler - периодические задачи сервера
package scheduler

import (
	"casino_simulator/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// boardSweepSpec Как часто убираем просроченные поля сапёра
const boardSweepSpec = "@every 1m"

// BoardSweeper - хранилище полей, которое само не умеет истекать по TTL
type BoardSweeper interface {
	Sweep() int
}

type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddBoardSweep регистрирует уборку просроченных полей
func (s *Scheduler) AddBoardSweep(boards BoardSweeper) error {
	_, err := s.cron.AddFunc(boardSweepSpec, func() {
		if n := boards.Sweep(); n > 0 {
			logger.Log.Info("expired minesweeper boards removed", zap.Int("count", n))
		}
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Log.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop останавливает планировщик и ждёт завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Log.Info("scheduler stopped")
}
