package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewConnectionFromDB(db), mock
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO revenue").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(ex Executor) error {
		_, err := ex.ExecContext(context.Background(), "INSERT INTO revenue (month, revenue) VALUES ('Jan', 2000)")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newMockConnection(t)
	fnErr := errors.New("falha na inserção")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.RunInTransaction(context.Background(), func(Executor) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackFailureIsJoined(t *testing.T) {
	conn, mock := newMockConnection(t)
	fnErr := errors.New("falha na inserção")
	rbErr := errors.New("conexão perdida")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(rbErr)

	err := conn.RunInTransaction(context.Background(), func(Executor) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.ErrorIs(t, err, rbErr)
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = conn.RunInTransaction(context.Background(), func(Executor) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginError(t *testing.T) {
	conn, mock := newMockConnection(t)
	beginErr := errors.New("sem conexão")

	mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err := conn.RunInTransaction(context.Background(), func(Executor) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}

func TestConnection_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var conn Conn = NewConnectionFromDB(db)

	mock.ExpectPing()
	assert.NoError(t, conn.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.EqualError(t, conn.Ping(context.Background()), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}
