package app

import (
	"casino_simulator/internal/config"
	"casino_simulator/internal/config/env"
	"casino_simulator/internal/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	if err := logger.Init(env.NewLoggerConfig().Development()); err != nil {
		return err
	}
	defer logger.Sync()

	s.initServiceProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)

	sched := s.ServiceProvider.Scheduler()
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting server", zap.String("address", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.ServiceProvider.Close()
	return nil
}
