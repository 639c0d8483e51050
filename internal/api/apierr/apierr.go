// Package apierr переводит ошибки сервисов в HTTP статусы
package apierr

import (
	"casino_simulator/internal/logger"
	"casino_simulator/internal/model"
	"casino_simulator/pkg/resp"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ErrRateLimited - слишком много ставок за окно
var ErrRateLimited = errors.New("too many requests")

// Status возвращает HTTP статус для ошибки
func Status(err error) int {
	switch {
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrUnknownGame),
		errors.Is(err, model.ErrMinimumDeposit),
		errors.Is(err, model.ErrNoActiveSession),
		errors.Is(err, model.ErrAlreadyRevealed),
		errors.Is(err, model.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку клиенту. Внутренние ошибки логируются и не раскрываются
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
