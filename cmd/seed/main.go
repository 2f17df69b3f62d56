// Comando seed popula o banco do dashboard uma única vez, sem subir o servidor HTTP.
//
//	go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
	"github.com/vfg2006/dashboard-seed-api/internal/seeddata"
	"github.com/vfg2006/dashboard-seed-api/internal/usecases/seeding"
	"github.com/vfg2006/dashboard-seed-api/pkg/log"
	"github.com/vfg2006/dashboard-seed-api/pkg/utils"
)

func main() {
	log.Setup("info")
	logrus.Info("Iniciando script de seed...")

	if err := run(context.Background()); err != nil {
		if errors.Is(err, seeding.ErrSeedInProgress) {
			logrus.Warn("Outra execução do seed está em andamento")
		} else {
			logrus.WithField("stage", seeding.StageOf(err)).WithError(err).Error("Seed falhou, transação desfeita")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	if err := config.ApplySecrets(cfg, config.NewRenderClient(cfg)); err != nil {
		return err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	dataset, err := seeddata.Load()
	if err != nil {
		return err
	}

	report, err := seeding.NewService(conn, repository.NewSeedRepository(), dataset, cfg).Seed(ctx)
	if report != nil {
		out, jsonErr := utils.PrettyJson(report)
		if jsonErr != nil {
			logrus.WithError(jsonErr).Warn("Não foi possível formatar o relatório do seed")
		} else {
			fmt.Println(out)
		}
	}
	return err
}
