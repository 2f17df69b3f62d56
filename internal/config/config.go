package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Seed     Seed     `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Render   Render   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Seed struct {
	BcryptCost           int           `mapstructure:"seed_bcrypt_cost"`
	MaxConcurrentInserts int           `mapstructure:"seed_max_concurrent_inserts"`
	LockKey              int64         `mapstructure:"seed_lock_key"`
	ExposeErrorDetails   bool          `mapstructure:"seed_expose_error_details"`
	Timeout              time.Duration `mapstructure:"seed_timeout"`
	OnStartup            bool          `mapstructure:"seed_on_startup"`
	CronEnabled          bool          `mapstructure:"seed_cron_enabled"`
	CronSchedule         string        `mapstructure:"seed_cron"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Render struct {
	APIKey                 string `mapstructure:"render_api_key"`
	ServiceID              string `mapstructure:"render_service_id"`
	DatabasePasswordSecret string `mapstructure:"render_database_password_secret"`
}

// IsDevelopment indica se o ambiente configurado é de desenvolvimento
func (a App) IsDevelopment() bool {
	env := strings.ToLower(a.Env)
	return env == "" || env == "development" || env == "dev"
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SEED_BCRYPT_COST", 10)           // mesmo custo usado pelo dashboard no login
	viper.SetDefault("SEED_MAX_CONCURRENT_INSERTS", 8) // inserções simultâneas por entidade
	viper.SetDefault("SEED_LOCK_KEY", 7_305_112)       // chave do advisory lock do seed
	viper.SetDefault("SEED_TIMEOUT", "0s")             // sem limite além do request
	viper.SetDefault("SEED_ON_STARTUP", false)
	viper.SetDefault("SEED_CRON_ENABLED", false)
	viper.SetDefault("SEED_CRON", "0 2 * * *") // Todos os dias às 2h da manhã

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_DATABASE_PASSWORD_SECRET", "database_password")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Só expõe detalhes de erro fora de desenvolvimento se houver configuração explícita
	if viper.IsSet("SEED_EXPOSE_ERROR_DETAILS") {
		config.Seed.ExposeErrorDetails = viper.GetBool("SEED_EXPOSE_ERROR_DETAILS")
	} else {
		config.Seed.ExposeErrorDetails = config.App.IsDevelopment()
	}

	if config.Seed.MaxConcurrentInserts <= 0 {
		logrus.Warnf("SEED_MAX_CONCURRENT_INSERTS inválido (%d), usando 1", config.Seed.MaxConcurrentInserts)
		config.Seed.MaxConcurrentInserts = 1
	}

	config.Database.ComposeDSN()

	return config, nil
}

// ComposeDSN monta a string de conexão a partir das credenciais
func (d *Database) ComposeDSN() {
	d.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		d.Driver,
		d.User,
		d.Password,
		d.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
