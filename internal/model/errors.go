package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidBet        = fmt.Errorf("%w: invalid bet", ErrInvalidInput)
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrUnknownGame       = errors.New("unknown game")
	ErrMinimumDeposit    = errors.New("initial deposit is below the minimum")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUnauthenticated   = errors.New("not logged in")

	// Ошибки сапёра
	ErrNoActiveSession = errors.New("no active game")
	ErrAlreadyRevealed = errors.New("cell already revealed")
	ErrOutOfRange      = errors.New("cell out of range")
)
