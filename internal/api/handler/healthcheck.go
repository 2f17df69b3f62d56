package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-seed-api/pkg/apiErrors"
)

const healthcheckPingTimeout = 2 * time.Second

// DatabasePinger é satisfeito por postgres.Conn
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual quando o banco responde ao ping.
// Sem db configurado, responde apenas à liveness do processo.
func HealthcheckHandler(db DatabasePinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckPingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseDown, "Banco de dados indisponível", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
