package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var ddl string

// Apply создаёт таблицы, если их ещё нет
func Apply(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
