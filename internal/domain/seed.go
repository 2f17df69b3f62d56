package domain

import "time"

// SeedStage representa o estado de uma execução de seed
type SeedStage string

const (
	SeedStageNotStarted SeedStage = "not-started"
	SeedStageUsers      SeedStage = "users"
	SeedStageCustomers  SeedStage = "customers"
	SeedStageInvoices   SeedStage = "invoices"
	SeedStageRevenue    SeedStage = "revenue"
	SeedStageCommitted  SeedStage = "committed"
	SeedStageRolledBack SeedStage = "rolled-back"
)

// SeedStages é a ordem em que as entidades são populadas
var SeedStages = []SeedStage{
	SeedStageUsers,
	SeedStageCustomers,
	SeedStageInvoices,
	SeedStageRevenue,
}

// EntitySummary contabiliza o resultado das inserções de uma entidade
type EntitySummary struct {
	Entity   SeedStage `json:"entity"`
	Total    int       `json:"total"`
	Inserted int       `json:"inserted"`
	Skipped  int       `json:"skipped"`
	// TableRows é o total de linhas na tabela ao fim da etapa, dentro da transação
	TableRows int `json:"table_rows"`
}

// SeedReport é o resumo de uma execução de seed
type SeedReport struct {
	RunID      string          `json:"run_id"`
	Stage      SeedStage       `json:"stage"`
	Entities   []EntitySummary `json:"entities"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
}
