package player_repo

import (
	"casino_simulator/internal/model"
	"casino_simulator/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table             = "players"
	colID             = "id"
	colName           = "name"
	colBalance        = "balance"
	colInitialDeposit = "initial_deposit"
	colCreatedAt      = "created_at"
)

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{colID, colName, colBalance, colInitialDeposit, colCreatedAt}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - транзакция из контекста, если она открыта менеджером, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// EnsurePlayer - создаёт игрока, если его нет, и возвращает его.
// created = true, если игрок был создан этим вызовом
func (r *repo) EnsurePlayer(ctx context.Context, name string) (*model.Player, bool, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colName).
		Values(name).
		Suffix("ON CONFLICT (" + colName + ") DO NOTHING RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, false, err
	}

	created := true
	var id int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, err
		}
		// Игрок уже есть
		created = false
	}

	player, err := r.getBy(ctx, sq.Eq{colName: name}, false)
	if err != nil {
		return nil, false, err
	}
	return player, created, nil
}

// GetPlayer - возвращает игрока по ID
func (r *repo) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	return r.getBy(ctx, sq.Eq{colID: id}, false)
}

// GetPlayerForUpdate - то же, что GetPlayer, но с SELECT ... FOR UPDATE
func (r *repo) GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error) {
	return r.getBy(ctx, sq.Eq{colID: id}, true)
}

func (r *repo) getBy(ctx context.Context, where sq.Eq, forUpdate bool) (*model.Player, error) {
	query := psql.Select(columns...).
		From(table).
		Where(where)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Player
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.Name, &p.Balance, &p.InitialDeposit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return &p, nil
}

// UpdateBalance - записывает новый баланс игрока
func (r *repo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	return r.update(ctx, id, colBalance, balance)
}

// SetInitialDeposit - записывает сумму первого депозита
func (r *repo) SetInitialDeposit(ctx context.Context, id int64, amount decimal.Decimal) error {
	return r.update(ctx, id, colInitialDeposit, amount)
}

func (r *repo) update(ctx context.Context, id int64, col string, value decimal.Decimal) error {
	query := psql.Update(table).
		Set(col, value).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrPlayerNotFound
	}

	return nil
}
