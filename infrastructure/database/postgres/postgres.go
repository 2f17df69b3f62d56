package postgres

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
)

// Conn é a conexão usada pela aplicação: transações para o seed e ping para o healthcheck
type Conn interface {
	Transactor
	Close() error
	Ping(context.Context) error
}

// Transactor executa uma função dentro de uma transação com commit ou rollback garantidos
type Transactor interface {
	RunInTransaction(context.Context, func(Executor) error) error
}

type Connection struct {
	*sql.DB
}

var _ Conn = (*Connection)(nil)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewConnectionFromDB(db), nil
}

// NewConnectionFromDB envolve um *sql.DB já aberto
func NewConnectionFromDB(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn em uma transação.
// Faz commit se fn retornar nil e rollback em caso de erro ou panic.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(Executor) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
