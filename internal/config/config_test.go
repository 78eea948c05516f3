package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
driver = "sqlite"
path = "data/courts.db"
auto_migrate = true

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "courts"

[booking]
timezone = "Asia/Jakarta"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// .env ищется в рабочей директории
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept when not in file")
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "courts", cfg.Metrics.ServiceName)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	t.Setenv("COURTS_SERVER_HTTP_PORT", "7070")
	t.Setenv("COURTS_LOGS_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, "data/courts.db", cfg.Database.Path)
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	require.NoError(t, os.WriteFile(".env", []byte("COURTS_METRICS_SERVICE_NAME=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("COURTS_METRICS_SERVICE_NAME") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Metrics.ServiceName)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	writeConfig(t, "")

	t.Setenv("COURTS_DATABASE_USER", "courts")
	t.Setenv("COURTS_DATABASE_DBNAME", "courts")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "[server\nhttp_port = ")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = "mysql"
	cfg.Events.Enabled = true
	cfg.Booking.Timezone = "Mars/Olympus"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
	assert.Contains(t, err.Error(), "events.url")
	assert.Contains(t, err.Error(), "booking.timezone")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	pg := DatabaseConfig{
		Driver: "postgres", Host: "db", Port: 5432,
		User: "u", Password: "p", DBName: "courts", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/courts?sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Path: "courts.db"}
	assert.Contains(t, lite.DSN(), "file:courts.db")
	assert.Contains(t, lite.DSN(), "foreign_keys(1)")
}

func TestBookingConfig_LocationDefaultsToUTC(t *testing.T) {
	loc, err := BookingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
