package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/factionwatch/internal/flagx"
	"github.com/dmitrijs2005/factionwatch/internal/timex"
)

// JsonConfig is the JSON file layout. Zero values leave the current setting
// untouched, so a file may carry only the keys it wants to change.
type JsonConfig struct {
	StorageDriver   string         `json:"storage_driver"`
	DatabaseDSN     string         `json:"database_dsn"`
	RedisURL        string         `json:"redis_url"`
	RedisKey        string         `json:"redis_key"`
	SeedFile        string         `json:"seed_file"`
	LogLevel        string         `json:"log_level"`
	StatsWindowDays int            `json:"stats_window_days"`
	OperatorID      int            `json:"operator_id"`
	BackupSchedule  string         `json:"backup_schedule"`
	BackupTarget    string         `json:"backup_target"`
	BackupDir       string         `json:"backup_dir"`
	BackupTimeout   timex.Duration `json:"backup_timeout"`
	S3RootUser      string         `json:"s3_root_user"`
	S3RootPassword  string         `json:"s3_root_password"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
}

// parseJson overlays cfg with the file named by -c/-config.
// It panics if the file cannot be read or parsed.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.RedisKey, jc.RedisKey)
	setString(&cfg.SeedFile, jc.SeedFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.BackupSchedule, jc.BackupSchedule)
	setString(&cfg.BackupTarget, jc.BackupTarget)
	setString(&cfg.BackupDir, jc.BackupDir)
	setString(&cfg.S3RootUser, jc.S3RootUser)
	setString(&cfg.S3RootPassword, jc.S3RootPassword)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)

	if jc.StatsWindowDays > 0 {
		cfg.StatsWindowDays = jc.StatsWindowDays
	}
	if jc.OperatorID > 0 {
		cfg.OperatorID = jc.OperatorID
	}
	if jc.BackupTimeout.Duration > 0 {
		cfg.BackupTimeout = jc.BackupTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
