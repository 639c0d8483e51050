package match_repo

import (
	"casino_simulator/internal/model"
	"casino_simulator/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "matches"
	colID           = "id"
	colPlayerID     = "player_id"
	colGame         = "game"
	colBet          = "bet"
	colPayout       = "payout"
	colBalanceAfter = "balance_after"
	colPlayedAt     = "played_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewMatchRepository(dbc *pgxpool.Pool) repository.MatchRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AppendMatch - добавляет запись о матче. Возвращает ID записи
func (r *repo) AppendMatch(ctx context.Context, match *model.Match) (int64, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colPlayerID, colGame, colBet, colPayout, colBalanceAfter, colPlayedAt).
		Values(match.PlayerID, string(match.Game), match.Bet, match.Payout, match.BalanceAfter, match.PlayedAt).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListMatches - последние limit матчей игрока, от новых к старым
func (r *repo) ListMatches(ctx context.Context, playerID int64, limit int) ([]model.Match, error) {
	query := psql.Select(colID, colPlayerID, colGame, colBet, colPayout, colBalanceAfter, colPlayedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colPlayedAt+" DESC", colID+" DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]model.Match, 0, limit)
	for rows.Next() {
		var (
			m    model.Match
			game string
		)
		if err := rows.Scan(&m.ID, &m.PlayerID, &game, &m.Bet, &m.Payout, &m.BalanceAfter, &m.PlayedAt); err != nil {
			return nil, err
		}
		m.Game = model.Game(game)
		matches = append(matches, m)
	}

	return matches, rows.Err()
}
