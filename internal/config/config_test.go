package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 15
write_timeout = 15
idle_timeout = 120
shutdown_timeout = 5

[storage]
backend = "postgres"

[storage.postgres]
host = "db.local"
port = 5433
user = "salon"
password = "secret"
dbname = "salon"
sslmode = "require"

[logs]
file = "/var/log/salon.log"
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "salon"

[schedule]
open_time = "08:00"
close_time = "21:00"
slot_step_minutes = 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "db.local", cfg.Storage.Postgres.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "08:00", cfg.Schedule.OpenTime)
	assert.Equal(t, 15, cfg.Schedule.SlotStepMinutes)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, ``)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.File.Dir)
	assert.Equal(t, "disable", cfg.Storage.Postgres.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "09:00", cfg.Schedule.OpenTime)
	assert.Equal(t, "20:30", cfg.Schedule.CloseTime)
	assert.Equal(t, 30, cfg.Schedule.SlotStepMinutes)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "cassandra"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	tests := []struct {
		name    string
		section string
	}{
		{name: "bad open time", section: `open_time = "25:00"`},
		{name: "bad close time", section: `close_time = "garbage"`},
		{name: "open after close", section: "open_time = \"21:00\"\nclose_time = \"09:00\""},
		{name: "negative step", section: `slot_step_minutes = -30`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "[schedule]\n"+tt.section+"\n")
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "salon",
		Password: "salon",
		DBName:   "salon",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=salon password=salon dbname=salon sslmode=disable",
		cfg.DSN())
}
