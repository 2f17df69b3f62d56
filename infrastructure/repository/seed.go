package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
)

//go:generate mockgen -source=seed.go -destination=mocks/seed.go -package=mocks

const (
	usersTable     = "users"
	customersTable = "customers"
	invoicesTable  = "invoices"
	revenueTable   = "revenue"
)

const (
	createUUIDExtensionSQL = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

	createUsersTableSQL = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`

	createCustomersTableSQL = `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`

	createInvoicesTableSQL = `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)`

	createRevenueTableSQL = `
		CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`

	tryAdvisoryLockSQL = `SELECT pg_try_advisory_xact_lock($1)`
)

// SeedRepository agrupa as operações de schema e inserção usadas pelo seed.
// Todas as operações recebem o Executor da transação corrente.
type SeedRepository interface {
	TryAdvisoryLock(ctx context.Context, ex postgres.Executor, key int64) (bool, error)
	EnsureUUIDExtension(ctx context.Context, ex postgres.Executor) error

	CreateUsersTable(ctx context.Context, ex postgres.Executor) error
	CreateCustomersTable(ctx context.Context, ex postgres.Executor) error
	CreateInvoicesTable(ctx context.Context, ex postgres.Executor) error
	CreateRevenueTable(ctx context.Context, ex postgres.Executor) error

	InsertUser(ctx context.Context, ex postgres.Executor, user *domain.User) (bool, error)
	InsertCustomer(ctx context.Context, ex postgres.Executor, customer *domain.Customer) (bool, error)
	InsertInvoice(ctx context.Context, ex postgres.Executor, invoice *domain.Invoice) (bool, error)
	InsertRevenue(ctx context.Context, ex postgres.Executor, revenue *domain.Revenue) (bool, error)

	CountRows(ctx context.Context, ex postgres.Executor, table string) (int, error)
}

type seedRepository struct{}

func NewSeedRepository() SeedRepository {
	return &seedRepository{}
}

// TryAdvisoryLock tenta obter um lock consultivo que é liberado no fim da transação
func (r *seedRepository) TryAdvisoryLock(ctx context.Context, ex postgres.Executor, key int64) (bool, error) {
	var acquired bool
	if err := ex.QueryRowContext(ctx, tryAdvisoryLockSQL, key).Scan(&acquired); err != nil {
		return false, errors.Wrap(err, "erro ao obter advisory lock")
	}
	return acquired, nil
}

func (r *seedRepository) EnsureUUIDExtension(ctx context.Context, ex postgres.Executor) error {
	_, err := ex.ExecContext(ctx, createUUIDExtensionSQL)
	return errors.Wrap(err, "erro ao criar extensão uuid-ossp")
}

func (r *seedRepository) CreateUsersTable(ctx context.Context, ex postgres.Executor) error {
	return r.createTable(ctx, ex, usersTable, createUsersTableSQL)
}

func (r *seedRepository) CreateCustomersTable(ctx context.Context, ex postgres.Executor) error {
	return r.createTable(ctx, ex, customersTable, createCustomersTableSQL)
}

func (r *seedRepository) CreateInvoicesTable(ctx context.Context, ex postgres.Executor) error {
	return r.createTable(ctx, ex, invoicesTable, createInvoicesTableSQL)
}

func (r *seedRepository) CreateRevenueTable(ctx context.Context, ex postgres.Executor) error {
	return r.createTable(ctx, ex, revenueTable, createRevenueTableSQL)
}

func (r *seedRepository) createTable(ctx context.Context, ex postgres.Executor, table, ddl string) error {
	_, err := ex.ExecContext(ctx, ddl)
	return errors.Wrapf(err, "erro ao criar tabela %s", table)
}

// InsertUser grava o usuário ignorando ids já existentes. Password deve chegar com hash.
func (r *seedRepository) InsertUser(ctx context.Context, ex postgres.Executor, user *domain.User) (bool, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("id", "name", "email", "password").
		Values(user.ID, user.Name, user.Email, user.Password).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	return r.insert(ctx, ex, usersTable, queryBuilder)
}

func (r *seedRepository) InsertCustomer(ctx context.Context, ex postgres.Executor, customer *domain.Customer) (bool, error) {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns("id", "name", "email", "image_url").
		Values(customer.ID, customer.Name, customer.Email, customer.ImageURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	return r.insert(ctx, ex, customersTable, queryBuilder)
}

func (r *seedRepository) InsertInvoice(ctx context.Context, ex postgres.Executor, invoice *domain.Invoice) (bool, error) {
	queryBuilder := squirrel.
		Insert(invoicesTable).
		Columns("id", "customer_id", "amount", "status", "date").
		Values(invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	return r.insert(ctx, ex, invoicesTable, queryBuilder)
}

func (r *seedRepository) InsertRevenue(ctx context.Context, ex postgres.Executor, revenue *domain.Revenue) (bool, error) {
	queryBuilder := squirrel.
		Insert(revenueTable).
		Columns("month", "revenue").
		Values(revenue.Month, revenue.Revenue).
		Suffix("ON CONFLICT (month) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	return r.insert(ctx, ex, revenueTable, queryBuilder)
}

// insert executa o INSERT e informa se uma linha foi de fato gravada
func (r *seedRepository) insert(ctx context.Context, ex postgres.Executor, table string, queryBuilder squirrel.InsertBuilder) (bool, error) {
	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, errors.Wrapf(err, "erro ao montar insert em %s", table)
	}

	result, err := ex.ExecContext(ctx, insertSQL, insertArgs...)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao inserir em %s", table)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrapf(err, "erro ao ler linhas afetadas em %s", table)
	}

	return affected > 0, nil
}

// CountRows retorna o total de linhas de uma das tabelas do seed
func (r *seedRepository) CountRows(ctx context.Context, ex postgres.Executor, table string) (int, error) {
	switch table {
	case usersTable, customersTable, invoicesTable, revenueTable:
	default:
		return 0, fmt.Errorf("tabela desconhecida: %s", table)
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := ex.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return 0, errors.Wrapf(err, "erro ao contar linhas de %s", table)
	}

	return total, nil
}
