package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "factionwatch.db", c.DatabaseDSN)
	assert.Equal(t, "redis://localhost:6379/0", c.RedisURL)
	assert.Equal(t, "factionwatch", c.RedisKey)
	assert.Equal(t, "", c.SeedFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 7, c.StatsWindowDays)
	assert.Equal(t, "", c.BackupSchedule)
	assert.Equal(t, "file", c.BackupTarget)
	assert.Equal(t, "backups", c.BackupDir)
	assert.Equal(t, 30*time.Second, c.BackupTimeout)
	assert.Equal(t, "factionwatch", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
}

func TestLoadConfig_NoArgsKeepsDefaults(t *testing.T) {
	c := loadConfig(nil)
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"database_dsn":      "json.db",
		"log_level":         "debug",
		"stats_window_days": 14,
	})
	envPath := writeTempFile(t, dir, ".env", "FW_DATABASE_DSN=env.db\nFW_BACKUP_TARGET=s3\n")

	c := loadConfig([]string{"-c", jsonPath, "-env", envPath, "-d", "flag.db"})

	assert.Equal(t, "flag.db", c.DatabaseDSN, "flags win over env and json")
	assert.Equal(t, "s3", c.BackupTarget, "env wins over defaults")
	assert.Equal(t, "debug", c.LogLevel, "json wins over defaults")
	assert.Equal(t, 14, c.StatsWindowDays)
}
