package integrity

import (
	"context"

	"bookstore/core/apperror"
	"bookstore/core/storage"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when object
// storage is not configured; the image check then fails.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckSchema compares every model with its live table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All())
}

// CheckImages diffs book image rows with the bucket. With purge set, orphan
// objects are deleted afterwards.
func (s *Service) CheckImages(ctx context.Context, purge bool) (*checks.ImageReport, error) {
	if s.client == nil {
		return nil, apperror.Validationf("object storage is not configured")
	}

	report, err := checks.CheckImages(ctx, s.db, s.client, s.bucket)
	if err != nil {
		return nil, err
	}
	if len(report.Missing) > 0 {
		s.logger.Warn("Book images missing from storage", zap.Strings("missing", report.Missing))
	}

	if purge && len(report.Orphans) > 0 {
		if err := checks.PurgeOrphans(ctx, s.client, s.bucket, s.logger, report.Orphans); err != nil {
			return nil, err
		}
		report.Purged = true
	}
	return report, nil
}
