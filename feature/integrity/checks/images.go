package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bookstore/core/storage"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageReport compares book image rows with the objects in the bucket.
type ImageReport struct {
	Stored     int      `json:"stored"`
	Referenced int      `json:"referenced"`
	Missing    []string `json:"missing"`
	Orphans    []string `json:"orphans"`
	Purged     bool     `json:"purged"`
}

// CheckImages lists the objects under the book image prefix and diffs them
// with the object keys recorded in book_images. Absolute URLs are skipped.
func CheckImages(ctx context.Context, db *gorm.DB, client storage.Client, bucket string) (*ImageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	stored, err := storage.ListKeys(ctx, client, bucket, storage.BookImagePrefix)
	if err != nil {
		return nil, err
	}

	var referenced []string
	if err := db.WithContext(ctx).Model(&models.BookImage{}).Pluck("object_key", &referenced).Error; err != nil {
		return nil, fmt.Errorf("failed to load book image keys: %w", err)
	}

	storedSet := make(map[string]struct{}, len(stored))
	for _, key := range stored {
		storedSet[key] = struct{}{}
	}

	report := &ImageReport{Stored: len(stored), Missing: []string{}, Orphans: []string{}}
	refSet := make(map[string]struct{}, len(referenced))
	for _, key := range referenced {
		if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
			continue
		}
		key = strings.TrimLeft(key, "/")
		refSet[key] = struct{}{}
		report.Referenced++
		if _, ok := storedSet[key]; !ok {
			report.Missing = append(report.Missing, key)
		}
	}
	for _, key := range stored {
		if _, ok := refSet[key]; !ok {
			report.Orphans = append(report.Orphans, key)
		}
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Orphans)
	return report, nil
}

// PurgeOrphans deletes objects no book image points at.
func PurgeOrphans(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, orphans []string) error {
	if len(orphans) == 0 {
		return nil
	}
	if err := storage.RemoveKeys(ctx, client, bucket, orphans); err != nil {
		logger.Error("Failed to purge orphan images", zap.Int("count", len(orphans)), zap.Error(err))
		return err
	}
	logger.Info("Purged orphan images", zap.Int("count", len(orphans)))
	return nil
}
