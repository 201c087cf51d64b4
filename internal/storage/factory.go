package storage

import (
	"context"
	"fmt"
	"nextlevel_lms/internal/config"
	"nextlevel_lms/pkg/database"
	"nextlevel_lms/pkg/logger"

	"go.uber.org/zap"
)

// NewMedium builds the medium named by storage.driver and wraps it with metrics and
// tracing. The returned closer releases connections held by the medium.
func NewMedium(ctx context.Context, cfg *config.Config) (Medium, func() error, error) {
	noop := func() error { return nil }

	var (
		medium Medium
		closer = noop
	)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		medium = NewMemoryMedium()
	case config.StorageFile:
		m, err := NewFileMedium(cfg.Storage.DataDir)
		if err != nil {
			return nil, noop, err
		}
		medium = m
	case config.StorageDatabase:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		medium = NewDatabaseMedium(db)
		closer = sqlDB.Close
	case config.StorageRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		medium = NewRedisMedium(rdb, cfg.Redis.KeyPrefix)
		closer = rdb.Close
	case config.StorageMinio:
		m, err := NewMinioMedium(ctx, &cfg.Storage)
		if err != nil {
			return nil, noop, err
		}
		medium = m
	case config.StorageOSS:
		m, err := NewOSSMedium(&cfg.Storage)
		if err != nil {
			return nil, noop, err
		}
		medium = m
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	logger.Log.Info("Storage medium ready", zap.String("driver", DriverOf(medium)))
	return Instrument(medium), closer, nil
}
