package cart

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the cart.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cart routes. All of them need a signed-in user.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cart", session.RequireUser(h.service.logger))
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleClear)
	group.Post("/items", h.HandleAdd)
	group.Put("/items/:id", h.HandleUpdateQuantity)
	group.Delete("/items/:id", h.HandleRemove)
}

// HandleList returns the cart.
// @Summary Get Cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.View
// @Failure 401 {object} response.ErrorBody
// @Router /cart [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	view, err := h.service.List(c.UserContext(), actor)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(view)
}

// HandleClear empties the cart.
// @Summary Clear Cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	if err := h.service.Clear(c.UserContext(), actor); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}

// HandleAdd adds a variant to the cart.
// @Summary Add Cart Item
// @Tags cart
// @Accept json
// @Param item body cart.AddRequest true "Variant and quantity"
// @Success 201 {object} models.CartItem
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /cart/items [post]
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

// HandleUpdateQuantity sets the quantity of a cart line.
// @Summary Update Cart Item
// @Tags cart
// @Param id path string true "Cart item ID"
// @Param item body cart.QuantityRequest true "Quantity"
// @Success 200 {object} models.CartItem
// @Router /cart/items/{id} [put]
func (h *Handler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	item, err := h.service.UpdateQuantity(c.UserContext(), actor, c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(item)
}

// HandleRemove removes a cart line.
// @Summary Remove Cart Item
// @Tags cart
// @Param id path string true "Cart item ID"
// @Success 204
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /cart/items/{id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	if err := h.service.Remove(c.UserContext(), actor, c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
