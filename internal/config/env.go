package config

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with FW_* keys of the .env file named by -env.
// The process environment is not modified. It panics on unreadable files
// and malformed numbers or durations.
func parseEnv(cfg *Config, args []string) {
	path := flagx.EnvFileFlag(args)
	if path == "" {
		return
	}

	env, err := godotenv.Read(path)
	if err != nil {
		panic(err)
	}

	strs := map[string]*string{
		"FW_STORAGE_DRIVER":   &cfg.StorageDriver,
		"FW_DATABASE_DSN":     &cfg.DatabaseDSN,
		"FW_REDIS_URL":        &cfg.RedisURL,
		"FW_REDIS_KEY":        &cfg.RedisKey,
		"FW_SEED_FILE":        &cfg.SeedFile,
		"FW_LOG_LEVEL":        &cfg.LogLevel,
		"FW_BACKUP_SCHEDULE":  &cfg.BackupSchedule,
		"FW_BACKUP_TARGET":    &cfg.BackupTarget,
		"FW_BACKUP_DIR":       &cfg.BackupDir,
		"FW_S3_ROOT_USER":     &cfg.S3RootUser,
		"FW_S3_ROOT_PASSWORD": &cfg.S3RootPassword,
		"FW_S3_BUCKET":        &cfg.S3Bucket,
		"FW_S3_REGION":        &cfg.S3Region,
		"FW_S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
	}
	for key, dst := range strs {
		setString(dst, env[key])
	}

	if v := env["FW_STATS_WINDOW_DAYS"]; v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.StatsWindowDays = days
	}
	if v := env["FW_OPERATOR_ID"]; v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.OperatorID = id
	}
	if v := env["FW_BACKUP_TIMEOUT"]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.BackupTimeout = d
	}
}
