package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverDynamoDB = "dynamodb"
)

// Config holds all configuration for the resource management API.
// Values come from an optional YAML file (CONFIG_FILE, default config.yaml)
// and environment variables, which always win. Secrets are env-only.
type Config struct {
	Port        string `yaml:"port" env:"PORT" env-default:"8080"`
	Env         string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version     string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
	StoreDriver string `yaml:"store_driver" env:"STORE_DRIVER" env-default:"postgres"`

	// AuditActor is stamped into last_updated_by/added_by on every write.
	AuditActor string `yaml:"audit_actor" env:"AUDIT_ACTOR" env-default:"system@example.com"`

	// CORSAllowedOrigins is a comma-separated list; "*" allows any origin.
	CORSAllowedOrigins string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`

	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DatabaseConfig holds PostgreSQL configuration. URL takes precedence over
// the discrete PG* fields when set.
type DatabaseConfig struct {
	URL             string        `yaml:"-" env:"DATABASE_URL"`
	Host            string        `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"PGPORT" env-default:"5432"`
	User            string        `yaml:"user" env:"PGUSER" env-default:"resource"`
	Password        string        `yaml:"-" env:"PGPASSWORD"`
	Database        string        `yaml:"database" env:"PGDATABASE" env-default:"resource_management"`
	SSLMode         string        `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections  int32         `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"PGMAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"PGMAX_CONN_IDLE_TIME" env-default:"30m"`
	RunMigrations   bool          `yaml:"run_migrations" env:"DB_RUN_MIGRATIONS" env-default:"true"`
}

// DynamoDBConfig holds the alternate store settings. Local DynamoDB does not
// validate credentials, so the defaults are placeholders.
type DynamoDBConfig struct {
	Region          string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID     string `yaml:"-" env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey string `yaml:"-" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	Endpoint        string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
	AccountsTable   string `yaml:"accounts_table" env:"ACCOUNTS_TABLE" env-default:"accounts"`
	DemandsTable    string `yaml:"demands_table" env:"DEMANDS_TABLE" env-default:"demands"`
	CountersTable   string `yaml:"counters_table" env:"COUNTERS_TABLE" env-default:"counters"`
	EnsureTables    bool   `yaml:"ensure_tables" env:"DYNAMODB_ENSURE_TABLES" env-default:"true"`
}

// Load reads the YAML file named by CONFIG_FILE when it exists, then applies
// environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, statErr)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverDynamoDB:
	default:
		return fmt.Errorf("store_driver must be %q or %q, got %q", StoreDriverPostgres, StoreDriverDynamoDB, c.StoreDriver)
	}
	if strings.TrimSpace(c.AuditActor) == "" {
		return errors.New("audit_actor must not be empty")
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ConnectionString returns the PostgreSQL URL, building one from the PG*
// fields when DATABASE_URL is unset.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
