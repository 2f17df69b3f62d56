package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-seed-api/internal/domain"
	"github.com/vfg2006/dashboard-seed-api/pkg/log"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func signToken(t *testing.T, secret, role string, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@nextmail.com",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_AdminOnly(t *testing.T) {
	protected := AuthMiddleware(testSecret)(AdminOnly()(okHandler()))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Sem header de autorização",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "Header sem prefixo Bearer",
			header:     signToken(t, testSecret, RoleAdmin, time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "Token assinado com outro segredo",
			header:     "Bearer " + signToken(t, "another-secret", RoleAdmin, time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "Token expirado",
			header:     "Bearer " + signToken(t, testSecret, RoleAdmin, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_007",
		},
		{
			name:       "Token válido sem role de administrador",
			header:     "Bearer " + signToken(t, testSecret, "viewer", time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
			wantCode:   "AUTH_008",
		},
		{
			name:       "Token de administrador",
			header:     "Bearer " + signToken(t, testSecret, RoleAdmin, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/seed", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()

	AdminOnly()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors()(okHandler())

	t.Run("Origem permitida recebe os headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/seed", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe os headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/seed", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		called := false
		preflight := Cors()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
		rec := httptest.NewRecorder()

		preflight.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/seed", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, called)
	})
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
