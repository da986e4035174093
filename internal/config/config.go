// Package config loads runtime configuration for factionwatch.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Optional .env file selected with -env, FW_* keys (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - StorageDriver: playtime storage backend, "sqlite", "redis" or "memory".
//   - DatabaseDSN: SQLite database path or DSN.
//   - RedisURL / RedisKey: Redis connection URL and the hash holding all collections.
//   - SeedFile: optional JSON file with the initial factions and users.
//   - LogLevel: debug, info, warn or error.
//   - StatsWindowDays: default lookback window of playtime statistics.
//   - OperatorID: store user id recorded in the activity log for console actions.
//   - BackupSchedule: cron spec of periodic tracker exports; empty disables them.
//   - BackupTarget / BackupDir: "file" (written to BackupDir) or "s3".
//   - BackupTimeout: upper bound of a single backup run.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: S3 backup target.
type Config struct {
	StorageDriver   string
	DatabaseDSN     string
	RedisURL        string
	RedisKey        string
	SeedFile        string
	LogLevel        string
	StatsWindowDays int
	OperatorID      int
	BackupSchedule  string
	BackupTarget    string
	BackupDir       string
	BackupTimeout   time.Duration
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "factionwatch.db"
	c.RedisURL = "redis://localhost:6379/0"
	c.RedisKey = "factionwatch"
	c.SeedFile = ""
	c.LogLevel = "info"
	c.StatsWindowDays = 7
	c.BackupSchedule = ""
	c.BackupTarget = "file"
	c.BackupDir = "backups"
	c.BackupTimeout = 30 * time.Second
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "factionwatch"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config from defaults, the JSON file, the .env file
// and command-line flags, in that order.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
