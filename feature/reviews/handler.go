package reviews

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for reviews.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the review routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	requireUser := session.RequireUser(h.service.logger)
	app.Get("/books/:id/reviews", h.HandleList)
	app.Post("/books/:id/reviews", requireUser, h.HandleCreate)
	app.Delete("/reviews/:id", requireUser, h.HandleDelete)
}

// HandleList lists the reviews of a book.
// @Summary List Reviews
// @Tags reviews
// @Param id path string true "Book ID or slug"
// @Param page query int false "Page"
// @Success 200 {object} pagination.Page[reviews.View]
// @Failure 404 {object} response.ErrorBody
// @Router /books/{id}/reviews [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	page, err := h.service.ListForBook(c.UserContext(), c.Params("id"), q)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(page)
}

// HandleCreate reviews a book.
// @Summary Create Review
// @Tags reviews
// @Param id path string true "Book ID or slug"
// @Param review body reviews.ReviewRequest true "Review"
// @Success 201 {object} reviews.View
// @Failure 422 {object} response.ErrorBody
// @Router /books/{id}/reviews [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	review, err := h.service.Create(c.UserContext(), actor, c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, review)
}

// HandleDelete deletes a review.
// @Summary Delete Review
// @Tags reviews
// @Param id path string true "Review ID"
// @Success 204
// @Failure 401 {object} response.ErrorBody
// @Router /reviews/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	if err := h.service.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
