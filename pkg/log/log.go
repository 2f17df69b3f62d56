package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Campos de rastreabilidade mantidos mesmo nos logs enxutos de desenvolvimento
const (
	FieldCorrelationID = "correlation_id"
	FieldRunID         = "run_id"
	FieldStage         = "stage"
	FieldEntity        = "entity"
)

// seedFieldPrefix marca contadores do seed, como seed_inserted
const seedFieldPrefix = "seed_"

var traceFields = map[string]bool{
	FieldCorrelationID: true,
	FieldRunID:         true,
	FieldStage:         true,
	FieldEntity:        true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
}

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	// WithRun identifica a execução de seed nos logs seguintes
	WithRun(runID string) Logger
	// WithStage identifica a etapa (entidade) em andamento
	WithStage(stage string) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

const correlationIDKey contextKey = FieldCorrelationID

// logger reaproveita os métodos de nível do logrus.Entry e sobrescreve os que devolvem Logger
type logger struct {
	*logrus.Entry
}

var L Logger = newLogger()

func newLogger() Logger {
	return &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// Setup configura formato e nível do logger global. Níveis inválidos caem para info.
func Setup(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	L = newLogger()

	return parsed
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	switch strings.ToLower(os.Getenv("APP_ENV")) {
	case "", "development", "dev":
		return true
	}
	return false
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = newLogger()
}

// keepField decide se o campo entra no log. Em desenvolvimento só ficam os de rastreabilidade.
func keepField(key string) bool {
	return !IsDevelopment() || traceFields[key] || strings.HasPrefix(key, seedFieldPrefix)
}

func (l *logger) WithField(key string, value any) Logger {
	if !keepField(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

func (l *logger) WithRun(runID string) Logger {
	if runID == "" {
		return l
	}
	return l.WithField(FieldRunID, runID)
}

func (l *logger) WithStage(stage string) Logger {
	return l.WithFields(Fields{FieldStage: stage, FieldEntity: stage})
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(correlationIDKey).(string)
	return correlationID
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(FieldCorrelationID, correlationID)
	}
	return L
}
