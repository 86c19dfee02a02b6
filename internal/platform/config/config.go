package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DATA_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	APIPrefix    string

	DataBackend   string
	SQLitePath    string
	DatabaseURL   string
	DBMaxConns    int32
	EnableDBCheck bool

	CORSAllowedOrigins   []string
	RateLimit            string
	ReportsStrictPeriods bool

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	PosthogAPIKey string
	InstanceID    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		APIPrefix:            normalizePrefix(v.GetString("API_PREFIX")),
		DataBackend:          strings.ToLower(strings.TrimSpace(v.GetString("DATA_BACKEND"))),
		SQLitePath:           v.GetString("SQLITE_DB_PATH"),
		DatabaseURL:          v.GetString("PGSQL_URL"),
		DBMaxConns:           v.GetInt32("DB_MAX_CONNS"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:            v.GetString("RATE_LIMIT"),
		ReportsStrictPeriods: v.GetBool("REPORTS_STRICT_PERIODS"),
		AMQPURL:              v.GetString("AMQP_URL"),
		AMQPExchange:         v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:            v.GetString("AMQP_QUEUE"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		InstanceID:           v.GetString("INSTANCE_ID"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DBMaxConns <= 0 {
		log.Printf("Warning: invalid DB_MAX_CONNS (%d). Defaulting to 10.\n", cfg.DBMaxConns)
		cfg.DBMaxConns = 10
	}
	if cfg.AMQPURL == "" {
		log.Println("Info: AMQP_URL not set. Ledger change events are disabled.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DATA_BACKEND", BackendSQLite)
	v.SetDefault("SQLITE_DB_PATH", "./data/finance.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REPORTS_STRICT_PERIODS", false)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "finance")
	v.SetDefault("AMQP_QUEUE", "ledger_changes")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("INSTANCE_ID", "local")
}

// Validate checks the settings that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.DataBackend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_DB_PATH must be set when DATA_BACKEND=%s", BackendSQLite)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL must be set when DATA_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("unsupported DATA_BACKEND %q (want %s or %s)", c.DataBackend, BackendSQLite, BackendPostgres)
	}
	return nil
}

// EventsEnabled reports whether ledger change events should be published.
func (c *Config) EventsEnabled() bool {
	return c.AMQPURL != ""
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return ""
	}
	return "/" + strings.Trim(prefix, "/")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
