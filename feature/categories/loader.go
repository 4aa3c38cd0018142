package categories

import (
	"bookstore/core/cache"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Categories feature.
func NewFeature(db *gorm.DB, cacheCfg cache.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, cacheCfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "categories"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the category service; the book list uses it to expand
// category filters to subcategories.
func (f *Feature) Service() *Service {
	return f.service
}
