package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
	"github.com/vfg2006/dashboard-seed-api/internal/usecases/seeding"
)

// SeedSyncConfig representa a configuração do agendador de seed
type SeedSyncConfig struct {
	CronSchedule       string
	CronEnabled        bool
	OnStartup          bool
	ExposeErrorDetails bool
}

// SeedSyncService agenda execuções do seed e registra o resultado da última execução.
// Também implementa seeding.Seeder, para que execuções via HTTP apareçam no status.
type SeedSyncService struct {
	scheduler *gocron.Scheduler
	config    SeedSyncConfig
	seeder    seeding.Seeder

	syncMutex           sync.Mutex
	runningCount        int
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SeedReport
	lastError           error
}

// NewSeedSyncService cria uma nova instância do serviço de agendamento do seed
func NewSeedSyncService(seeder seeding.Seeder, appConfig *config.Config) *SeedSyncService {
	syncConfig := SeedSyncConfig{
		CronSchedule:       appConfig.Seed.CronSchedule,
		CronEnabled:        appConfig.Seed.CronEnabled,
		OnStartup:          appConfig.Seed.OnStartup,
		ExposeErrorDetails: appConfig.Seed.ExposeErrorDetails,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"cron_enabled":  syncConfig.CronEnabled,
		"on_startup":    syncConfig.OnStartup,
	}).Info("Configuração do agendador de seed carregada")

	return &SeedSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		seeder:    seeder,
	}
}

// Start agenda o seed por cron e dispara a execução inicial, conforme configuração
func (s *SeedSyncService) Start(ctx context.Context) error {
	if s.config.CronEnabled {
		logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de seed")

		_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
			s.runScheduled(ctx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar seed: %w", err)
		}

		s.scheduler.StartAsync()

		go func() {
			<-ctx.Done()
			logrus.Info("Parando agendador de seed")
			s.scheduler.Stop()
		}()
	} else {
		logrus.Info("Seed agendado desabilitado por configuração")
	}

	if s.config.OnStartup {
		go s.runScheduled(ctx)
	}

	return nil
}

// Seed executa o seed e registra o resultado. Execuções concorrentes são
// resolvidas pelo advisory lock no banco.
func (s *SeedSyncService) Seed(ctx context.Context) (*domain.SeedReport, error) {
	s.syncMutex.Lock()
	s.beginRunLocked()
	s.syncMutex.Unlock()

	return s.finishRun(s.seeder.Seed(ctx))
}

// runScheduled executa o seed a partir do agendador, ignorando se já houver uma execução local
func (s *SeedSyncService) runScheduled(ctx context.Context) {
	s.syncMutex.Lock()
	if s.runningCount > 0 {
		s.syncMutex.Unlock()
		logrus.Info("Seed já em andamento, ignorando execução agendada")
		return
	}
	s.beginRunLocked()
	s.syncMutex.Unlock()

	if _, err := s.finishRun(s.seeder.Seed(ctx)); err != nil {
		logrus.WithError(err).Error("Erro no seed agendado")
		return
	}

	logrus.Info("Seed agendado concluído com sucesso")
}

// beginRunLocked deve ser chamado com syncMutex travado
func (s *SeedSyncService) beginRunLocked() {
	if s.runningCount == 0 {
		s.lastSyncStartedAt = time.Now()
	}
	s.runningCount++
}

// finishRun encerra uma execução. Uma execução recusada pelo lock não substitui
// o resultado da execução que detém o lock.
func (s *SeedSyncService) finishRun(report *domain.SeedReport, err error) (*domain.SeedReport, error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.runningCount--
	if errors.Is(err, seeding.ErrSeedInProgress) {
		return report, err
	}

	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
	s.lastError = err

	return report, err
}

// GetStatus retorna o status atual do agendador e da última execução
func (s *SeedSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"cron_enabled":           s.config.CronEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"on_startup":             s.config.OnStartup,
		"sync_running":           s.runningCount > 0,
		"last_sync_started_at":   formatTime(s.lastSyncStartedAt),
		"last_sync_completed_at": formatTime(s.lastSyncCompletedAt),
		"last_report":            s.lastReport,
	}

	if s.lastError != nil {
		status["last_stage"] = seeding.StageOf(s.lastError)
		if s.config.ExposeErrorDetails {
			status["last_error"] = s.lastError.Error()
		}
	}

	if s.config.CronEnabled {
		_, next := s.scheduler.NextRun()
		status["next_run"] = formatTime(next)
	}

	return status
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
