package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/factionwatch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-k string   storage driver: sqlite, redis, memory
//	-d string   SQLite DSN
//	-r string   Redis URL
//	-s string   seed file with factions and users
//	-l string   log level
//	-w int      playtime statistics window, days
//	-a int      operator user id for the activity log
//	-b string   backup cron schedule ("" disables)
//	-t string   backup target: file, s3
//	-o string   backup directory for the file target
//	-u string   S3 root user
//	-p string   S3 root password
//	-n string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//
// Only the flags above are taken from args (see flagx.FilterArgs), so
// -c/-config and -env do not collide. It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-k", "-d", "-r", "-s", "-l", "-w", "-a", "-b", "-t", "-o", "-u", "-p", "-n", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageDriver, "k", cfg.StorageDriver, "storage driver (sqlite, redis, memory)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.SeedFile, "s", cfg.SeedFile, "seed file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.StatsWindowDays, "w", cfg.StatsWindowDays, "playtime statistics window (in days)")
	fs.IntVar(&cfg.OperatorID, "a", cfg.OperatorID, "operator user id")
	fs.StringVar(&cfg.BackupSchedule, "b", cfg.BackupSchedule, "backup cron schedule")
	fs.StringVar(&cfg.BackupTarget, "t", cfg.BackupTarget, "backup target (file, s3)")
	fs.StringVar(&cfg.BackupDir, "o", cfg.BackupDir, "backup directory")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "n", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
