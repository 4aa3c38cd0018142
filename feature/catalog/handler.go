package catalog

import (
	"context"

	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for authors, tags and series.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	requireAdmin := session.RequireAdmin(h.service.logger)

	authors := app.Group("/authors")
	authors.Get("/", h.HandleListAuthors)
	authors.Get("/:id", h.HandleGetAuthor)
	adminAuthors := app.Group("/admin/authors", requireAdmin)
	adminAuthors.Post("/", h.HandleCreateAuthor)
	adminAuthors.Put("/:id", h.HandleUpdateAuthor)
	adminAuthors.Delete("/:id", h.HandleDeleteAuthor)

	tags := app.Group("/tags")
	tags.Get("/", h.HandleListTags)
	tags.Get("/:id", h.HandleGetTag)
	adminTags := app.Group("/admin/tags", requireAdmin)
	adminTags.Post("/", h.HandleCreateTag)
	adminTags.Put("/:id", h.HandleUpdateTag)
	adminTags.Delete("/:id", h.HandleDeleteTag)

	series := app.Group("/series")
	series.Get("/", h.HandleListSeries)
	series.Get("/:id", h.HandleGetSeries)
	adminSeries := app.Group("/admin/series", requireAdmin)
	adminSeries.Post("/", h.HandleCreateSeries)
	adminSeries.Put("/:id", h.HandleUpdateSeries)
	adminSeries.Delete("/:id", h.HandleDeleteSeries)
}

func list[M any](c *fiber.Ctx, h *Handler, fn func(context.Context, ListQuery) (pagination.Page[M], error)) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	page, err := fn(c.UserContext(), q)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(page)
}

func get[M any](c *fiber.Ctx, h *Handler, fn func(context.Context, string) (*M, error)) error {
	item, err := fn(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(item)
}

func create[R, M any](c *fiber.Ctx, h *Handler, fn func(context.Context, *session.Actor, R) (*M, error)) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	item, err := fn(c.UserContext(), actor, req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, item)
}

func update[R, M any](c *fiber.Ctx, h *Handler, fn func(context.Context, string, R) (*M, error)) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	item, err := fn(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(item)
}

func remove(c *fiber.Ctx, h *Handler, fn func(context.Context, string) error) error {
	if err := fn(c.UserContext(), c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}

// HandleListAuthors lists authors.
// @Summary List Authors
// @Tags authors
// @Produce json
// @Param q query string false "Name search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor"
// @Success 200 {object} pagination.Page[models.Author]
// @Router /authors [get]
func (h *Handler) HandleListAuthors(c *fiber.Ctx) error {
	return list(c, h, h.service.ListAuthors)
}

// HandleGetAuthor returns an author by id or slug.
// @Summary Get Author
// @Tags authors
// @Produce json
// @Param id path string true "Author ID or slug"
// @Success 200 {object} models.Author
// @Failure 404 {object} response.ErrorBody
// @Router /authors/{id} [get]
func (h *Handler) HandleGetAuthor(c *fiber.Ctx) error {
	return get(c, h, h.service.GetAuthor)
}

// HandleCreateAuthor creates an author.
// @Summary Create Author
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Param author body catalog.AuthorRequest true "Author"
// @Success 201 {object} models.Author
// @Failure 422 {object} response.ErrorBody "Slug already in use"
// @Router /admin/authors [post]
func (h *Handler) HandleCreateAuthor(c *fiber.Ctx) error {
	return create(c, h, h.service.CreateAuthor)
}

// HandleUpdateAuthor updates an author.
// @Summary Update Author
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Param id path string true "Author ID"
// @Param author body catalog.AuthorRequest true "Author"
// @Success 200 {object} models.Author
// @Router /admin/authors/{id} [put]
func (h *Handler) HandleUpdateAuthor(c *fiber.Ctx) error {
	return update(c, h, h.service.UpdateAuthor)
}

// HandleDeleteAuthor deletes an author not linked to any book.
// @Summary Delete Author
// @Tags admin-catalog
// @Param id path string true "Author ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody "Author still linked to books"
// @Router /admin/authors/{id} [delete]
func (h *Handler) HandleDeleteAuthor(c *fiber.Ctx) error {
	return remove(c, h, h.service.DeleteAuthor)
}

// HandleListTags lists tags.
// @Summary List Tags
// @Tags tags
// @Produce json
// @Param q query string false "Name search"
// @Success 200 {object} pagination.Page[models.Tag]
// @Router /tags [get]
func (h *Handler) HandleListTags(c *fiber.Ctx) error {
	return list(c, h, h.service.ListTags)
}

// HandleGetTag returns a tag by id or slug.
// @Summary Get Tag
// @Tags tags
// @Param id path string true "Tag ID or slug"
// @Success 200 {object} models.Tag
// @Router /tags/{id} [get]
func (h *Handler) HandleGetTag(c *fiber.Ctx) error {
	return get(c, h, h.service.GetTag)
}

// HandleCreateTag creates a tag.
// @Summary Create Tag
// @Tags admin-catalog
// @Param tag body catalog.TagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Router /admin/tags [post]
func (h *Handler) HandleCreateTag(c *fiber.Ctx) error {
	return create(c, h, h.service.CreateTag)
}

// HandleUpdateTag updates a tag.
// @Summary Update Tag
// @Tags admin-catalog
// @Param id path string true "Tag ID"
// @Param tag body catalog.TagRequest true "Tag"
// @Success 200 {object} models.Tag
// @Router /admin/tags/{id} [put]
func (h *Handler) HandleUpdateTag(c *fiber.Ctx) error {
	return update(c, h, h.service.UpdateTag)
}

// HandleDeleteTag deletes a tag not linked to any book.
// @Summary Delete Tag
// @Tags admin-catalog
// @Param id path string true "Tag ID"
// @Success 204
// @Router /admin/tags/{id} [delete]
func (h *Handler) HandleDeleteTag(c *fiber.Ctx) error {
	return remove(c, h, h.service.DeleteTag)
}

// HandleListSeries lists series.
// @Summary List Series
// @Tags series
// @Produce json
// @Param q query string false "Name search"
// @Success 200 {object} pagination.Page[models.Series]
// @Router /series [get]
func (h *Handler) HandleListSeries(c *fiber.Ctx) error {
	return list(c, h, h.service.ListSeries)
}

// HandleGetSeries returns a series by id or slug.
// @Summary Get Series
// @Tags series
// @Param id path string true "Series ID or slug"
// @Success 200 {object} models.Series
// @Router /series/{id} [get]
func (h *Handler) HandleGetSeries(c *fiber.Ctx) error {
	return get(c, h, h.service.GetSeries)
}

// HandleCreateSeries creates a series.
// @Summary Create Series
// @Tags admin-catalog
// @Param series body catalog.SeriesRequest true "Series"
// @Success 201 {object} models.Series
// @Router /admin/series [post]
func (h *Handler) HandleCreateSeries(c *fiber.Ctx) error {
	return create(c, h, h.service.CreateSeries)
}

// HandleUpdateSeries updates a series.
// @Summary Update Series
// @Tags admin-catalog
// @Param id path string true "Series ID"
// @Param series body catalog.SeriesRequest true "Series"
// @Success 200 {object} models.Series
// @Router /admin/series/{id} [put]
func (h *Handler) HandleUpdateSeries(c *fiber.Ctx) error {
	return update(c, h, h.service.UpdateSeries)
}

// HandleDeleteSeries deletes a series not linked to any book.
// @Summary Delete Series
// @Tags admin-catalog
// @Param id path string true "Series ID"
// @Success 204
// @Router /admin/series/{id} [delete]
func (h *Handler) HandleDeleteSeries(c *fiber.Ctx) error {
	return remove(c, h, h.service.DeleteSeries)
}
