package orders

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the customer and admin order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders", session.RequireUser(h.service.logger))
	group.Post("/checkout", h.HandleCheckout)
	group.Get("/", h.HandleHistory)
	group.Get("/:id", h.HandleGet)

	admin := app.Group("/admin/orders", session.RequireAdmin(h.service.logger))
	admin.Get("/", h.HandleList)
	admin.Put("/:id/status", h.HandleUpdateStatus)
}

// HandleCheckout places an order from the cart.
// @Summary Checkout
// @Description Snapshots the cart into a pending order, decrements stock and empties the cart.
// @Tags orders
// @Produce json
// @Success 201 {object} orders.View
// @Failure 400 {object} response.ErrorBody
// @Router /orders/checkout [post]
func (h *Handler) HandleCheckout(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	order, err := h.service.Checkout(c.UserContext(), actor)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, order)
}

// HandleHistory lists the signed-in user's orders.
// @Summary Order History
// @Tags orders
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} pagination.Page[orders.View]
// @Router /orders [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	page, err := h.service.History(c.UserContext(), actor, q)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(page)
}

// HandleGet returns one order.
// @Summary Get Order
// @Tags orders
// @Param id path string true "Order ID or reference"
// @Success 200 {object} orders.View
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /orders/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	order, err := h.service.Get(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(order)
}

// HandleList lists all orders.
// @Summary List Orders
// @Tags admin-orders
// @Param status query string false "Status filter"
// @Success 200 {object} pagination.Page[orders.View]
// @Router /admin/orders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(page)
}

// HandleUpdateStatus changes the status of an order.
// @Summary Update Order Status
// @Tags admin-orders
// @Param id path string true "Order ID"
// @Param status body orders.StatusRequest true "New status"
// @Success 200 {object} orders.View
// @Failure 400 {object} response.ErrorBody
// @Router /admin/orders/{id}/status [put]
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	order, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(order)
}
