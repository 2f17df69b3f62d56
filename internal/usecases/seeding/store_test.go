package seeding

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
)

// storeState é o conteúdo do banco em memória
type storeState struct {
	extension bool
	tables    map[string]bool
	users     map[string]domain.User
	customers map[string]domain.Customer
	invoices  map[string]domain.Invoice
	revenue   map[string]domain.Revenue
}

func newStoreState() *storeState {
	return &storeState{
		tables:    map[string]bool{},
		users:     map[string]domain.User{},
		customers: map[string]domain.Customer{},
		invoices:  map[string]domain.Invoice{},
		revenue:   map[string]domain.Revenue{},
	}
}

func (s *storeState) clone() *storeState {
	return &storeState{
		extension: s.extension,
		tables:    maps.Clone(s.tables),
		users:     maps.Clone(s.users),
		customers: maps.Clone(s.customers),
		invoices:  maps.Clone(s.invoices),
		revenue:   maps.Clone(s.revenue),
	}
}

// memoryStore simula o Postgres: transação com cópia do estado, conflito por chave
// e unicidade de email. Implementa postgres.Transactor e repository.SeedRepository.
type memoryStore struct {
	mu        sync.Mutex
	committed *storeState
	tx        *storeState

	lockHeld      bool
	failInvoiceID string
	failCreateOf  string
	commits       int
	rollbacks     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{committed: newStoreState()}
}

func (m *memoryStore) RunInTransaction(ctx context.Context, fn func(postgres.Executor) error) error {
	m.mu.Lock()
	m.tx = m.committed.clone()
	m.mu.Unlock()

	if err := fn(nil); err != nil {
		m.mu.Lock()
		m.tx = nil
		m.rollbacks++
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.committed = m.tx
	m.tx = nil
	m.commits++
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) TryAdvisoryLock(context.Context, postgres.Executor, int64) (bool, error) {
	return !m.lockHeld, nil
}

func (m *memoryStore) EnsureUUIDExtension(context.Context, postgres.Executor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tx.extension = true
	return nil
}

func (m *memoryStore) createTable(table string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreateOf == table {
		return fmt.Errorf("permission denied for table %s", table)
	}
	m.tx.tables[table] = true
	return nil
}

func (m *memoryStore) CreateUsersTable(context.Context, postgres.Executor) error {
	return m.createTable("users")
}

func (m *memoryStore) CreateCustomersTable(context.Context, postgres.Executor) error {
	return m.createTable("customers")
}

func (m *memoryStore) CreateInvoicesTable(context.Context, postgres.Executor) error {
	return m.createTable("invoices")
}

func (m *memoryStore) CreateRevenueTable(context.Context, postgres.Executor) error {
	return m.createTable("revenue")
}

func (m *memoryStore) InsertUser(_ context.Context, _ postgres.Executor, user *domain.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tx.users[user.ID]; exists {
		return false, nil
	}
	for _, existing := range m.tx.users {
		if existing.Email == user.Email {
			return false, fmt.Errorf(`duplicate key value violates unique constraint "users_email_key"`)
		}
	}
	m.tx.users[user.ID] = *user
	return true, nil
}

func (m *memoryStore) InsertCustomer(_ context.Context, _ postgres.Executor, customer *domain.Customer) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tx.customers[customer.ID]; exists {
		return false, nil
	}
	m.tx.customers[customer.ID] = *customer
	return true, nil
}

func (m *memoryStore) InsertInvoice(_ context.Context, _ postgres.Executor, invoice *domain.Invoice) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if invoice.ID == m.failInvoiceID {
		return false, fmt.Errorf("invalid input syntax for type date")
	}
	if _, exists := m.tx.invoices[invoice.ID]; exists {
		return false, nil
	}
	m.tx.invoices[invoice.ID] = *invoice
	return true, nil
}

func (m *memoryStore) InsertRevenue(_ context.Context, _ postgres.Executor, revenue *domain.Revenue) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tx.revenue[revenue.Month]; exists {
		return false, nil
	}
	m.tx.revenue[revenue.Month] = *revenue
	return true, nil
}

func (m *memoryStore) CountRows(_ context.Context, _ postgres.Executor, table string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch table {
	case "users":
		return len(m.tx.users), nil
	case "customers":
		return len(m.tx.customers), nil
	case "invoices":
		return len(m.tx.invoices), nil
	case "revenue":
		return len(m.tx.revenue), nil
	}
	return 0, fmt.Errorf("tabela desconhecida: %s", table)
}

// counts retorna o total de linhas confirmadas por tabela
func (m *memoryStore) counts() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]int{
		"users":     len(m.committed.users),
		"customers": len(m.committed.customers),
		"invoices":  len(m.committed.invoices),
		"revenue":   len(m.committed.revenue),
	}
}
