package users

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the profile and admin user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/me", session.RequireUser(h.service.logger), h.HandleMe)

	admin := app.Group("/admin/users", session.RequireAdmin(h.service.logger))
	admin.Get("/", h.HandleList)
	admin.Post("/", h.HandleCreate)
	admin.Put("/:id/role", h.HandleSetRole)
}

// HandleMe returns the signed-in user.
// @Summary Current User
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Session user"
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorBody
// @Router /me [get]
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	actor, _ := session.FromCtx(c)
	user, err := h.service.Get(c.UserContext(), actor.ID)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(user)
}

// HandleList lists users.
// @Summary List Users
// @Tags admin-users
// @Param q query string false "Name or email search"
// @Param role query string false "customer or admin"
// @Success 200 {object} pagination.Page[models.User]
// @Router /admin/users [get]
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

// HandleCreate creates a user.
// @Summary Create User
// @Tags admin-users
// @Param user body users.UserRequest true "User"
// @Success 201 {object} models.User
// @Failure 422 {object} response.ErrorBody
// @Router /admin/users [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	user, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, user)
}

// HandleSetRole changes a user's role.
// @Summary Set User Role
// @Tags admin-users
// @Param id path string true "User ID"
// @Param role body users.RoleRequest true "Role"
// @Success 200 {object} models.User
// @Router /admin/users/{id}/role [put]
func (h *Handler) HandleSetRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	user, err := h.service.SetRole(c.UserContext(), actor, c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(user)
}
