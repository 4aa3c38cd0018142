package categories

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for categories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the category routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/categories")
	group.Get("/", h.HandleList)
	group.Get("/tree", h.HandleTree)
	group.Get("/:id", h.HandleGet)

	admin := app.Group("/admin/categories", session.RequireAdmin(h.service.logger))
	admin.Post("/", h.HandleCreate)
	admin.Put("/:id", h.HandleUpdate)
	admin.Delete("/:id", h.HandleDelete)
}

// HandleList returns every category as a flat list.
// @Summary List Categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	flat, err := h.service.List(c.UserContext())
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(flat)
}

// HandleTree returns the category hierarchy.
// @Summary Category Tree
// @Description Categories arranged by parent, siblings ordered by position then name.
// @Tags categories
// @Produce json
// @Success 200 {array} categories.Node
// @Router /categories/tree [get]
func (h *Handler) HandleTree(c *fiber.Ctx) error {
	tree, err := h.service.Tree(c.UserContext())
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(tree)
}

// HandleGet returns a category by id or slug.
// @Summary Get Category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID or slug"
// @Success 200 {object} models.Category
// @Failure 404 {object} response.ErrorBody
// @Router /categories/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	category, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(category)
}

// HandleCreate creates a category.
// @Summary Create Category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param category body categories.CategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody "Name, code or slug already taken"
// @Router /admin/categories [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}

	actor, _ := session.FromCtx(c)
	category, err := h.service.Create(c.UserContext(), actor, req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, category)
}

// HandleUpdate updates a category.
// @Summary Update Category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body categories.CategoryRequest true "Category"
// @Success 200 {object} models.Category
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /admin/categories/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}

	category, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(category)
}

// HandleDelete deletes a leaf category.
// @Summary Delete Category
// @Tags admin-categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody "Category has subcategories"
// @Failure 404 {object} response.ErrorBody
// @Router /admin/categories/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
