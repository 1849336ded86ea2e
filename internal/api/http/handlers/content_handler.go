package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/dto"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/auth"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/service"
)

// ContentHandler exposes CMS collections.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// List handles GET /api/content/:resource.
func (h *ContentHandler) List(c *fiber.Ctx) error {
	preview := auth.AccessFromContext(c).Preview()
	entries, err := h.content.List(c.UserContext(), domain.ContentResource(c.Params("resource")), preview)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// Get handles GET /api/content/:resource/:key.
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	preview := auth.AccessFromContext(c).Preview()
	entry, err := h.content.Get(c.UserContext(), domain.ContentResource(c.Params("resource")), c.Params("key"), preview)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entry})
}

// Put handles PUT /api/admin/content/:resource/:key.
func (h *ContentHandler) Put(c *fiber.Ctx) error {
	var req dto.ContentPutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	entry := &domain.ContentEntry{
		Resource:  domain.ContentResource(c.Params("resource")),
		Key:       c.Params("key"),
		Value:     req.Value,
		Draft:     req.Draft,
		SortOrder: req.SortOrder,
	}
	if err := h.content.Put(c.UserContext(), entry, c.IP()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entry})
}

// Delete handles DELETE /api/admin/content/:resource/:key.
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	resource := domain.ContentResource(c.Params("resource"))
	if err := h.content.Delete(c.UserContext(), resource, c.Params("key"), c.IP()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
