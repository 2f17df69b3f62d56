package postgres

import (
	"context"
	"database/sql"
)

// Executor é o subconjunto de *sql.Tx usado pelos repositórios
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
