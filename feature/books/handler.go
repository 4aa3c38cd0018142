package books

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for books.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public and admin book routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/books")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)

	admin := app.Group("/admin/books", session.RequireAdmin(h.service.logger))
	admin.Post("/", h.HandleCreate)
	admin.Put("/:id", h.HandleUpdate)
	admin.Delete("/:id", h.HandleDelete)
}

// HandleList returns a page of books.
// @Summary List Books
// @Description List books with filters, sorting and page or cursor pagination.
// @Tags books
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param category query string false "Category slug, includes subcategories"
// @Param author query string false "Author ID"
// @Param tag query string false "Tag slug"
// @Param series query string false "Series ID"
// @Param q query string false "Search in title and ISBN"
// @Param in_stock query bool false "Only books with a variant in stock"
// @Param sort query string false "newest, title, price or price_desc"
// @Success 200 {object} pagination.Page[books.BookSummary]
// @Failure 400 {object} response.ErrorBody
// @Router /books [get]
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

// HandleGet returns the detail view of a book.
// @Summary Get Book
// @Description Get a book by ID or slug with authors, categories, tags, series, images, variants and review summary.
// @Tags books
// @Produce json
// @Param id path string true "Book ID or slug"
// @Success 200 {object} books.BookPreview
// @Failure 404 {object} response.ErrorBody
// @Router /books/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	preview, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(preview)
}

// HandleCreate creates a book.
// @Summary Create Book
// @Description Create a book with its relations, at least one variant and optional images.
// @Tags admin-books
// @Accept json
// @Produce json
// @Param book body books.BookRequest true "Book"
// @Success 201 {object} books.BookPreview
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody "Referenced entity not found"
// @Failure 422 {object} response.ErrorBody "Slug already in use"
// @Router /admin/books [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}

	actor, _ := session.FromCtx(c)
	preview, err := h.service.Create(c.UserContext(), actor, req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, preview)
}

// HandleUpdate updates a book and reconciles its relations.
// @Summary Update Book
// @Description Update scalar fields and replace authors, categories, tags, series, variants and images with the submitted sets.
// @Tags admin-books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body books.BookRequest true "Book"
// @Success 200 {object} books.BookPreview
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /admin/books/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}

	actor, _ := session.FromCtx(c)
	preview, err := h.service.Update(c.UserContext(), actor, c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(preview)
}

// HandleDelete deletes a book.
// @Summary Delete Book
// @Tags admin-books
// @Param id path string true "Book ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /admin/books/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
