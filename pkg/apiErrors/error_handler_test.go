package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Erro de banco vira 500 com envelope",
			code:       ErrDatabaseOperation,
			details:    map[string]string{"stage": "invoices"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"SRV_002","message":"falhou","details":{"stage":"invoices"}}}`,
		},
		{
			name:       "Seed em andamento vira 409",
			code:       ErrSeedInProgress,
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"code":"SEED_001","message":"falhou"}}`,
		},
		{
			name:       "Código desconhecido vira 500",
			code:       "XYZ_999",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"XYZ_999","message":"falhou"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "falhou", tt.details)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
