package cmd

import (
	"context"
	"fmt"

	"bookstore/core/config"
	"bookstore/core/database"
	"bookstore/core/logger"
	"bookstore/core/storage"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// bootstrap loads the configuration, builds the logger and connects to the database.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	if cfg.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
		logg.Info("Schema migrated", zap.Int("models", len(models.All())))
	}

	return &runtime{cfg: cfg, logger: logg, db: db}, nil
}

// openStorage connects to the object store and makes sure the bucket exists.
// A failure is logged and yields a nil client; image cleanup is then skipped.
func (r *runtime) openStorage(ctx context.Context) storage.Client {
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		r.logger.Warn("Object storage disabled", zap.Error(err))
		return nil
	}
	if err := storage.EnsureBucket(ctx, client, r.cfg.Storage.Bucket, r.cfg.Storage.Region); err != nil {
		r.logger.Warn("Object storage unreachable", zap.String("bucket", r.cfg.Storage.Bucket), zap.Error(err))
		return nil
	}
	return client
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
