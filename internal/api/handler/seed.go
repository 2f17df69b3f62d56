package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-seed-api/internal/usecases/seeding"
	"github.com/vfg2006/dashboard-seed-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-seed-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const seedSuccessMessage = "Database seeded successfully"

type SeedResponse struct {
	Message string `json:"message"`
}

// SeedStatusProvider expõe o estado do agendador e da última execução de seed
type SeedStatusProvider interface {
	GetStatus() map[string]any
}

// SeedDatabase cria as tabelas e insere o dataset do dashboard.
// Com exposeDetails o texto original do erro é incluído em details.cause.
func SeedDatabase(seeder seeding.Seeder, exposeDetails bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := seeder.Seed(r.Context())
		if err != nil {
			if errors.Is(err, seeding.ErrSeedInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrSeedInProgress, "Seed já em andamento", nil)
				return
			}

			details := map[string]any{"stage": seeding.StageOf(err)}
			if exposeDetails {
				details["cause"] = err.Error()
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao popular o banco de dados", details)
			return
		}

		if report != nil {
			logger.WithRun(report.RunID).Info("Seed executado via HTTP")
		}

		writeJSON(w, http.StatusOK, SeedResponse{Message: seedSuccessMessage})
	}
}

// GetSeedStatus retorna a configuração do agendador e o resultado da última execução
func GetSeedStatus(provider SeedStatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, provider.GetStatus())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
