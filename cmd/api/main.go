package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-seed-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-seed-api/internal/api"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
	"github.com/vfg2006/dashboard-seed-api/internal/scheduler"
	"github.com/vfg2006/dashboard-seed-api/internal/seeddata"
	"github.com/vfg2006/dashboard-seed-api/internal/usecases/seeding"
	"github.com/vfg2006/dashboard-seed-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if err := config.ApplySecrets(cfg, config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar secrets do Render")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dataset, err := seeddata.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados do seed")
	}

	seedService := seeding.NewService(pgConn, repository.NewSeedRepository(), dataset, cfg)

	// O agendador envolve o serviço para que execuções via HTTP também apareçam no status
	seedSyncService := scheduler.NewSeedSyncService(seedService, cfg)
	if err := seedSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de seed")
	} else {
		logrus.Info("Agendador de seed iniciado com sucesso")
	}

	server, err := api.New(cfg, seedSyncService, seedSyncService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
