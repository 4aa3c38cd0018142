package wishlist

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the wishlist.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the wishlist routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/wishlist", session.RequireUser(h.service.logger))
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleAdd)
	group.Delete("/:id", h.HandleRemove)
}

// HandleList returns the wishlist.
// @Summary Get Wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {array} wishlist.Entry
// @Router /wishlist [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	entries, err := h.service.List(c.UserContext(), actor)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(entries)
}

// HandleAdd adds a book to the wishlist.
// @Summary Add Wishlist Item
// @Tags wishlist
// @Param item body wishlist.AddRequest true "Book"
// @Success 201 {object} wishlist.Entry
// @Failure 404 {object} response.ErrorBody
// @Router /wishlist [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	item, err := h.service.Add(c.UserContext(), actor, req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, item)
}

// HandleRemove removes a wishlist item.
// @Summary Remove Wishlist Item
// @Tags wishlist
// @Param id path string true "Wishlist item ID"
// @Success 204
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /wishlist/{id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	if err := h.service.Remove(c.UserContext(), actor, c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
