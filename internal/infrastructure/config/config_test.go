package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, k := range []string{"PORT", "STORE_DRIVER", "AUDIT_ACTOR", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "APP_VERSION", "DYNAMODB_ENDPOINT"} {
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "system@example.com", cfg.AuditActor)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.Equal(t, int32(25), cfg.Database.MaxConnections)
	assert.Equal(t, time.Hour, cfg.Database.MaxConnLifetime)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, "accounts", cfg.DynamoDB.AccountsTable)
	assert.Equal(t, "demands", cfg.DynamoDB.DemandsTable)
	assert.Equal(t, "counters", cfg.DynamoDB.CountersTable)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
port: "9000"
store_driver: "dynamodb"
audit_actor: "yaml@example.com"
database:
  host: "db.example.com"
dynamodb:
  demands_table: "demands_yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))
	t.Setenv("CONFIG_FILE", path)
	os.Unsetenv("PGHOST")
	os.Unsetenv("DEMANDS_TABLE")
	os.Unsetenv("STORE_DRIVER")
	t.Setenv("PORT", "9100")
	t.Setenv("AUDIT_ACTOR", "env@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "env@example.com", cfg.AuditActor)
	assert.Equal(t, StoreDriverDynamoDB, cfg.StoreDriver)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "demands_yaml", cfg.DynamoDB.DemandsTable)
}

func TestLoad_RejectsUnknownStoreDriver(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store_driver")
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.example.com , ,http://b.example.com"}
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.AllowedOrigins())
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		c := DatabaseConfig{URL: "postgres://u:p@h:5432/d", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@h:5432/d", c.ConnectionString())
	})

	t.Run("built from fields", func(t *testing.T) {
		c := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "disable"}
		assert.Equal(t, "host=h port=5433 user=u password=p dbname=d sslmode=disable", c.ConnectionString())
	})
}
