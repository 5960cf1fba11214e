package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Empty(t, cfg.AMQPURL)
	assert.Equal(t, "tastyfood.events", cfg.AMQPExchange)
	assert.Equal(t, uint64(5), cfg.AllocationMaxRetries)
	assert.Equal(t, 10*time.Millisecond, cfg.AllocationRetryBase)
	assert.Equal(t, "0 * * * * *", cfg.MonitorSchedule)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_DotenvAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=tastyfood\nDB_USER=fromfile\nALLOCATION_RETRY_BASE=25ms\n"), 0o600))
	t.Setenv("DB_USER", "fromenv")
	// t.Setenv registers the restore of values godotenv.Load writes.
	t.Setenv("DB_NAME", "")
	t.Setenv("ALLOCATION_RETRY_BASE", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))
	require.NoError(t, os.Unsetenv("ALLOCATION_RETRY_BASE"))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "tastyfood", cfg.DBName)
	assert.Equal(t, "fromenv", cfg.DBUser)
	assert.Equal(t, 25*time.Millisecond, cfg.AllocationRetryBase)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := LoadConfig("")

	require.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBName:     "tastyfood",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/tastyfood?sslmode=disable", cfg.DSN())
}

func TestConfig_NewLogger(t *testing.T) {
	logger, err := Config{LogLevel: "warn", LogFormat: "json"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = Config{LogLevel: "loud"}.NewLogger()
	require.Error(t, err)
}
