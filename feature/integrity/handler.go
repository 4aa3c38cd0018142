package integrity

import (
	"bookstore/core/logger"
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/admin/integrity", session.RequireAdmin(h.service.logger))
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/images", h.HandleImageCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Runs the schema and image checks. A failing check is reported in place and does not abort the others.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /admin/integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if images, err := h.service.CheckImages(c.UserContext(), false); err != nil {
		report["images"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["images"] = images
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Schema
// @Description Checks that every table has the columns and pinned types of its model.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} response.ErrorBody
// @Router /admin/integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	if !report.Matched {
		l.Warn("Schema drift detected", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleImageCheck checks book images against the bucket.
// @Summary Check Book Images
// @Description Lists missing image objects and orphan objects. Optionally deletes the orphans.
// @Tags integrity
// @Produce json
// @Param purge query boolean false "Delete orphan objects"
// @Success 200 {object} checks.ImageReport
// @Failure 500 {object} response.ErrorBody
// @Router /admin/integrity/images [get]
func (h *Handler) HandleImageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	purge := c.Query("purge") == "true"

	report, err := h.service.CheckImages(c.UserContext(), purge)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}

	l.Info("Image check completed",
		zap.Int("stored", report.Stored),
		zap.Int("missing", len(report.Missing)),
		zap.Int("orphans", len(report.Orphans)),
		zap.Bool("purged", report.Purged))
	return c.JSON(report)
}
