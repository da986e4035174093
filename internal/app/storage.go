package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/factionwatch/internal/backup"
	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/config"
	"github.com/dmitrijs2005/factionwatch/internal/kv"
)

// openRepository opens the playtime storage selected by cfg.StorageDriver.
func openRepository(ctx context.Context, cfg *config.Config) (kv.Repository, error) {
	switch cfg.StorageDriver {
	case "sqlite":
		return kv.OpenSQLite(ctx, cfg.DatabaseDSN)
	case "redis":
		return kv.OpenRedis(ctx, cfg.RedisURL, cfg.RedisKey)
	case "memory":
		return kv.NewMemoryRepository(), nil
	}
	return nil, fmt.Errorf("%q: %w", cfg.StorageDriver, common.ErrorUnknownDriver)
}

func newSink(cfg *config.Config) (backup.Sink, error) {
	switch cfg.BackupTarget {
	case "file":
		return backup.NewFileSink(cfg.BackupDir), nil
	case "s3":
		return backup.NewS3Sink(backup.S3Config{
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		}), nil
	}
	return nil, fmt.Errorf("%q: %w", cfg.BackupTarget, common.ErrorUnknownTarget)
}
