package books

import (
	"bookstore/core/pagination"
	"bookstore/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Books feature.
func NewFeature(db *gorm.DB, client storage.Client, storageCfg storage.Config, categories CategoryScope, paging pagination.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, client, storageCfg, categories, paging, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "books"
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

// Service exposes the book service to other features and commands.
func (f *Feature) Service() *Service {
	return f.service
}
