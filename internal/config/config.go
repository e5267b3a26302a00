package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	Upload           Upload           `mapstructure:",squash"`
	CacheMaintenance CacheMaintenance `mapstructure:",squash"`
	SourceBreaker    SourceBreaker    `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cache configura o armazenamento dos datasets (cache de consultas e dataset atual)
type Cache struct {
	Dir      string        `mapstructure:"cache_dir"`
	InMemory bool          `mapstructure:"cache_in_memory"`
	TTL      time.Duration `mapstructure:"cache_ttl"` // 0 = sem expiração
}

type Upload struct {
	MaxSizeMB int64 `mapstructure:"upload_max_size_mb"`
}

type CacheMaintenance struct {
	CronSchedule string  `mapstructure:"cache_gc_cron"`
	Enabled      bool    `mapstructure:"cache_gc_enabled"`
	DiscardRatio float64 `mapstructure:"cache_gc_discard_ratio"`
}

// SourceBreaker configura o circuit breaker da origem de visitas (Postgres)
type SourceBreaker struct {
	MaxFailures uint32        `mapstructure:"source_breaker_max_failures"` // Falhas consecutivas até abrir
	Timeout     time.Duration `mapstructure:"source_breaker_timeout"`      // Tempo aberto antes de testar de novo
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/visits?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_DIR", "static/cache")
	viper.SetDefault("CACHE_IN_MEMORY", false)
	viper.SetDefault("CACHE_TTL", "0s") // Entradas ficam até a limpeza explícita

	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 16) // 16MB por arquivo

	viper.SetDefault("CACHE_GC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("CACHE_GC_ENABLED", true)
	viper.SetDefault("CACHE_GC_DISCARD_RATIO", 0.5)

	viper.SetDefault("SOURCE_BREAKER_MAX_FAILURES", 5)
	viper.SetDefault("SOURCE_BREAKER_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Upload.MaxSizeMB <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_SIZE_MB must be positive, got %d", config.Upload.MaxSizeMB)
	}

	if config.SourceBreaker.MaxFailures == 0 {
		return nil, fmt.Errorf("SOURCE_BREAKER_MAX_FAILURES must be positive")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
