package seeding

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
	"github.com/vfg2006/dashboard-seed-api/pkg/log"
	"github.com/vfg2006/dashboard-seed-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Seeder popula o banco com o dataset fixo do dashboard
type Seeder interface {
	Seed(ctx context.Context) (*domain.SeedReport, error)
}

type Service struct {
	transactor postgres.Transactor
	repo       repository.SeedRepository
	dataset    *domain.Dataset
	cfg        config.Seed
}

func NewService(
	transactor postgres.Transactor,
	repo repository.SeedRepository,
	dataset *domain.Dataset,
	cfg *config.Config,
) *Service {
	return &Service{
		transactor: transactor,
		repo:       repo,
		dataset:    dataset,
		cfg:        cfg.Seed,
	}
}

// insertFunc grava um registro e informa se a linha foi de fato inserida
type insertFunc func(ctx context.Context) (bool, error)

// stagePlan descreve o que uma etapa executa, na ordem: extensão, tabela e inserções
type stagePlan struct {
	needsUUID   bool
	createTable func(ctx context.Context, ex postgres.Executor) error
	inserts     []insertFunc
}

// Seed cria as tabelas e insere o dataset em uma única transação.
// Qualquer erro desfaz todas as etapas já executadas.
func (s *Service) Seed(ctx context.Context) (*domain.SeedReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o id da execução de seed")
	}

	logger := log.ForContext(ctx).WithRun(runID)

	report := &domain.SeedReport{
		RunID:     runID,
		Stage:     domain.SeedStageNotStarted,
		StartedAt: time.Now(),
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	logger.Info("Iniciando seed do banco de dados")

	err = s.transactor.RunInTransaction(ctx, func(ex postgres.Executor) error {
		acquired, err := s.repo.TryAdvisoryLock(ctx, ex, s.cfg.LockKey)
		if err != nil {
			return &SeedError{Stage: domain.SeedStageNotStarted, Err: err}
		}
		if !acquired {
			return ErrSeedInProgress
		}

		for _, stage := range domain.SeedStages {
			report.Stage = stage

			summary, err := s.seedStage(ctx, ex, stage)
			if err != nil {
				return &SeedError{Stage: stage, Err: err}
			}

			logger.WithStage(string(stage)).WithFields(log.Fields{
				"seed_inserted": summary.Inserted,
				"seed_skipped":  summary.Skipped,
			}).Debugf("Etapa %s concluída", stage)

			report.Entities = append(report.Entities, *summary)
		}

		return nil
	})

	report.FinishedAt = time.Now()

	if err != nil {
		failedStage := report.Stage
		report.Stage = domain.SeedStageRolledBack
		logger.WithStage(string(failedStage)).WithError(err).Error("Seed desfeito")
		return report, err
	}

	report.Stage = domain.SeedStageCommitted
	logger.Infof("Seed concluído em %s", report.FinishedAt.Sub(report.StartedAt))

	return report, nil
}

func (s *Service) seedStage(ctx context.Context, ex postgres.Executor, stage domain.SeedStage) (*domain.EntitySummary, error) {
	plan, err := s.plan(ex, stage)
	if err != nil {
		return nil, err
	}

	if plan.needsUUID {
		if err := s.repo.EnsureUUIDExtension(ctx, ex); err != nil {
			return nil, err
		}
	}

	if err := plan.createTable(ctx, ex); err != nil {
		return nil, err
	}

	inserted, err := s.runInserts(ctx, plan.inserts)
	if err != nil {
		return nil, err
	}

	tableRows, err := s.repo.CountRows(ctx, ex, string(stage))
	if err != nil {
		return nil, err
	}

	return &domain.EntitySummary{
		Entity:    stage,
		Total:     len(plan.inserts),
		Inserted:  inserted,
		Skipped:   len(plan.inserts) - inserted,
		TableRows: tableRows,
	}, nil
}

// runInserts dispara as inserções em paralelo e aguarda todas antes de retornar.
// A primeira falha cancela as demais e é devolvida.
func (s *Service) runInserts(ctx context.Context, inserts []insertFunc) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.MaxConcurrentInserts, 1))

	var inserted atomic.Int64
	for _, insert := range inserts {
		g.Go(func() error {
			ok, err := insert(gctx)
			if err != nil {
				return err
			}
			if ok {
				inserted.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(inserted.Load()), nil
}

func (s *Service) plan(ex postgres.Executor, stage domain.SeedStage) (stagePlan, error) {
	switch stage {
	case domain.SeedStageUsers:
		inserts := make([]insertFunc, 0, len(s.dataset.Users))
		for _, user := range s.dataset.Users {
			inserts = append(inserts, func(ctx context.Context) (bool, error) {
				hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cfg.BcryptCost)
				if err != nil {
					return false, fmt.Errorf("erro ao gerar hash da senha de %s: %w", user.Email, err)
				}
				record := user
				record.Password = string(hashed)
				return s.repo.InsertUser(ctx, ex, &record)
			})
		}
		return stagePlan{needsUUID: true, createTable: s.repo.CreateUsersTable, inserts: inserts}, nil

	case domain.SeedStageCustomers:
		inserts := make([]insertFunc, 0, len(s.dataset.Customers))
		for _, customer := range s.dataset.Customers {
			inserts = append(inserts, func(ctx context.Context) (bool, error) {
				return s.repo.InsertCustomer(ctx, ex, &customer)
			})
		}
		return stagePlan{needsUUID: true, createTable: s.repo.CreateCustomersTable, inserts: inserts}, nil

	case domain.SeedStageInvoices:
		inserts := make([]insertFunc, 0, len(s.dataset.Invoices))
		for _, invoice := range s.dataset.Invoices {
			inserts = append(inserts, func(ctx context.Context) (bool, error) {
				return s.repo.InsertInvoice(ctx, ex, &invoice)
			})
		}
		return stagePlan{needsUUID: true, createTable: s.repo.CreateInvoicesTable, inserts: inserts}, nil

	case domain.SeedStageRevenue:
		inserts := make([]insertFunc, 0, len(s.dataset.Revenue))
		for _, rev := range s.dataset.Revenue {
			inserts = append(inserts, func(ctx context.Context) (bool, error) {
				return s.repo.InsertRevenue(ctx, ex, &rev)
			})
		}
		return stagePlan{createTable: s.repo.CreateRevenueTable, inserts: inserts}, nil
	}

	return stagePlan{}, fmt.Errorf("etapa de seed desconhecida: %s", stage)
}
