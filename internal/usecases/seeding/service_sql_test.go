package seeding

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
)

const (
	lockPattern      = `SELECT pg_try_advisory_xact_lock\(\$1\)`
	extensionPattern = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`
)

func countRows(total int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(total)
}

// Inserções concorrentes na mesma *sql.Tx, com o repositório real: uma fatura
// recusada pelo banco desfaz a transação inteira.
func TestService_Seed_RollsBackSQLTransactionOnInvoiceFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	dataset := &domain.Dataset{
		Users: []domain.User{
			{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com", Password: "123456"},
		},
		Customers: []domain.Customer{
			{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		},
		Invoices: []domain.Invoice{
			{ID: "5b0f6f8a-0c1e-4b7e-9a51-2f4c8d1e7a01", CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 15795, Status: domain.InvoiceStatusPending, Date: "2022-12-06"},
		},
		Revenue: []domain.Revenue{{Month: "Jan", Revenue: 2000}},
	}
	dbErr := errors.New(`value too long for type character varying(255)`)

	mock.ExpectBegin()
	mock.ExpectQuery(lockPattern).WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"pg_try_advisory_xact_lock"}).AddRow(true))

	mock.ExpectExec(regexp.QuoteMeta(extensionPattern)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(dataset.Users[0].ID, dataset.Users[0].Name, dataset.Users[0].Email, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnRows(countRows(1))

	mock.ExpectExec(regexp.QuoteMeta(extensionPattern)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS customers`).WillReturnResult(sqlmock.NewResult(0, 0))
	for _, customer := range dataset.Customers {
		mock.ExpectExec(`INSERT INTO customers`).
			WithArgs(customer.ID, customer.Name, customer.Email, customer.ImageURL).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM customers`).WillReturnRows(countRows(2))

	mock.ExpectExec(regexp.QuoteMeta(extensionPattern)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS invoices`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO invoices`).WillReturnError(dbErr)
	mock.ExpectRollback()

	service := NewService(postgres.NewConnectionFromDB(db), repository.NewSeedRepository(), dataset, testConfig())

	report, err := service.Seed(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, domain.SeedStageInvoices, StageOf(err))
	assert.Equal(t, domain.SeedStageRolledBack, report.Stage)
	require.Len(t, report.Entities, 2)
	assert.Equal(t, 2, report.Entities[1].Inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
