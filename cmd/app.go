package cmd

import (
	"bookstore/core/config"
	"bookstore/core/loader"
	"bookstore/core/logger"
	"bookstore/core/middleware/auth"
	"bookstore/core/middleware/rayid"
	"bookstore/core/middleware/session"
	"bookstore/core/storage"
	"bookstore/feature/books"
	"bookstore/feature/cart"
	"bookstore/feature/catalog"
	"bookstore/feature/categories"
	"bookstore/feature/integrity"
	"bookstore/feature/orders"
	"bookstore/feature/organizations"
	"bookstore/feature/reviews"
	"bookstore/feature/users"
	"bookstore/feature/wishlist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newApp assembles the HTTP application. client may be nil.
func newApp(cfg *config.Config, logg *zap.Logger, db *gorm.DB, client storage.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimitBytes,
	})

	userFeature := users.NewFeature(db, cfg.Pagination, logg)
	categoryFeature := categories.NewFeature(db, cfg.Cache, logg)

	mgr := loader.NewManager(logg)
	mgr.Register(userFeature)
	mgr.Register(categoryFeature)
	mgr.Register(catalog.NewFeature(db, cfg.Pagination, logg))
	mgr.Register(organizations.NewFeature(db, cfg.Pagination, logg))
	mgr.Register(books.NewFeature(db, client, cfg.Storage, categoryFeature.Service(), cfg.Pagination, logg))
	mgr.Register(reviews.NewFeature(db, cfg.Pagination, logg))
	mgr.Register(cart.NewFeature(db, logg))
	mgr.Register(wishlist.NewFeature(db, logg))
	mgr.Register(orders.NewFeature(db, cfg.Pagination, logg))
	mgr.Register(integrity.NewFeature(db, client, cfg.Storage.Bucket, logg))

	// RayID first so every log line below can carry it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	app.Use(session.New(userFeature.Service(), logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
