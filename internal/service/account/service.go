package account

import (
	"casino_simulator/internal/repository"
	"casino_simulator/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

const (
	// defaultHistoryLimit Сколько матчей отдаём, если лимит не указан
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

type serv struct {
	txManager       trm.Manager
	playerRepo      repository.PlayerRepository
	matchRepo       repository.MatchRepository
	minFirstDeposit decimal.Decimal
	now             func() time.Time
}

// NewAccountService Леджер игрока: баланс, депозиты и история матчей
func NewAccountService(
	txManager trm.Manager,
	playerRepo repository.PlayerRepository,
	matchRepo repository.MatchRepository,
	minFirstDeposit decimal.Decimal,
) service.AccountService {
	return &serv{
		txManager:       txManager,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		minFirstDeposit: minFirstDeposit,
		now:             func() time.Time { return time.Now().UTC() },
	}
}
