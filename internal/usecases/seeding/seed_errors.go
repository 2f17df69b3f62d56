package seeding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/dashboard-seed-api/internal/domain"
)

var (
	// ErrSeedInProgress indica que outra execução mantém o advisory lock do seed
	ErrSeedInProgress = errors.New("seed já em andamento")
)

// SeedError identifica a etapa em que o seed falhou
type SeedError struct {
	Stage domain.SeedStage
	Err   error
}

// Error implementa a interface error
func (e *SeedError) Error() string {
	return fmt.Sprintf("erro ao popular %s: %v", e.Stage, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *SeedError) Unwrap() error {
	return e.Err
}

// StageOf retorna a etapa associada ao erro, ou not-started quando não houver
func StageOf(err error) domain.SeedStage {
	var seedErr *SeedError
	if errors.As(err, &seedErr) {
		return seedErr.Stage
	}
	return domain.SeedStageNotStarted
}
