package organizations

import (
	"bookstore/core/middleware/session"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for organizations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the admin organization routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/admin/organizations", session.RequireAdmin(h.service.logger))
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)

	group.Post("/:id/contacts", h.HandleAddContact)
	group.Put("/:id/contacts/:contactId", h.HandleUpdateContact)
	group.Delete("/:id/contacts/:contactId", h.HandleRemoveContact)
}

// HandleList lists organizations.
// @Summary List Organizations
// @Tags admin-organizations
// @Produce json
// @Param q query string false "Name search"
// @Param kind query string false "publisher, distributor or other"
// @Success 200 {object} pagination.Page[models.Organization]
// @Router /admin/organizations [get]
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

// HandleGet returns an organization with its contacts.
// @Summary Get Organization
// @Tags admin-organizations
// @Param id path string true "Organization ID or slug"
// @Success 200 {object} models.Organization
// @Failure 404 {object} response.ErrorBody
// @Router /admin/organizations/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	org, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(org)
}

// HandleCreate creates an organization.
// @Summary Create Organization
// @Tags admin-organizations
// @Param organization body organizations.OrganizationRequest true "Organization"
// @Success 201 {object} models.Organization
// @Router /admin/organizations [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req OrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	actor, _ := session.FromCtx(c)
	org, err := h.service.Create(c.UserContext(), actor, req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, org)
}

// HandleUpdate updates an organization.
// @Summary Update Organization
// @Tags admin-organizations
// @Param id path string true "Organization ID"
// @Param organization body organizations.OrganizationRequest true "Organization"
// @Success 200 {object} models.Organization
// @Router /admin/organizations/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req OrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	org, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(org)
}

// HandleDelete deletes an organization and its contacts.
// @Summary Delete Organization
// @Tags admin-organizations
// @Param id path string true "Organization ID"
// @Success 204
// @Router /admin/organizations/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}

// HandleAddContact adds a contact to an organization.
// @Summary Add Contact
// @Tags admin-organizations
// @Param id path string true "Organization ID"
// @Param contact body organizations.ContactRequest true "Contact"
// @Success 201 {object} models.Contact
// @Router /admin/organizations/{id}/contacts [post]
func (h *Handler) HandleAddContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	contact, err := h.service.AddContact(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.Created(c, contact)
}

// HandleUpdateContact updates a contact.
// @Summary Update Contact
// @Tags admin-organizations
// @Param id path string true "Organization ID"
// @Param contactId path string true "Contact ID"
// @Param contact body organizations.ContactRequest true "Contact"
// @Success 200 {object} models.Contact
// @Router /admin/organizations/{id}/contacts/{contactId} [put]
func (h *Handler) HandleUpdateContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadBody(c, h.service.logger, err)
	}
	contact, err := h.service.UpdateContact(c.UserContext(), c.Params("id"), c.Params("contactId"), req)
	if err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return c.JSON(contact)
}

// HandleRemoveContact removes a contact.
// @Summary Remove Contact
// @Tags admin-organizations
// @Param id path string true "Organization ID"
// @Param contactId path string true "Contact ID"
// @Success 204
// @Router /admin/organizations/{id}/contacts/{contactId} [delete]
func (h *Handler) HandleRemoveContact(c *fiber.Ctx) error {
	if err := h.service.RemoveContact(c.UserContext(), c.Params("id"), c.Params("contactId")); err != nil {
		return response.Error(c, h.service.logger, err)
	}
	return response.NoContent(c)
}
