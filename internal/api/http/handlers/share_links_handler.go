package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/dto"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/service"
)

// ShareLinksHandler exposes share link issuance and validation.
type ShareLinksHandler struct {
	shares *service.ShareLinkService
	now    func() time.Time
}

// NewShareLinksHandler constructs handler.
func NewShareLinksHandler(shares *service.ShareLinkService) *ShareLinksHandler {
	return &ShareLinksHandler{shares: shares, now: time.Now}
}

// CreateEphemeral handles POST /api/admin/share-links.
func (h *ShareLinksHandler) CreateEphemeral(c *fiber.Ctx) error {
	var req dto.ShareLinkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	link, err := h.shares.CreateEphemeral(c.UserContext(), req.TTLHours, req.Note, c.IP())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.ShareLinkResponse{Token: link.Token, ExpiresAt: link.ExpiresAt, Note: link.Note},
	})
}

// CreateRevocable handles POST /api/admin/share-links/revocable.
func (h *ShareLinksHandler) CreateRevocable(c *fiber.Ctx) error {
	var req dto.ShareLinkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	link, err := h.shares.CreateRevocable(c.UserContext(), req.Code, req.TTLHours, req.Note, c.IP())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewRevocableShareLinkResponse(*link, h.now()),
	})
}

// List handles GET /api/admin/share-links.
func (h *ShareLinksHandler) List(c *fiber.Ctx) error {
	links, err := h.shares.ListRevocable(c.UserContext())
	if err != nil {
		return err
	}
	now := h.now()
	out := make([]dto.RevocableShareLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, dto.NewRevocableShareLinkResponse(link, now))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Revoke handles DELETE /api/admin/share-links/:code.
func (h *ShareLinksHandler) Revoke(c *fiber.Ctx) error {
	if err := h.shares.Revoke(c.UserContext(), c.Params("code"), c.IP()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"revoked": true}})
}

// Validate handles POST /api/share/validate for ephemeral tokens.
func (h *ShareLinksHandler) Validate(c *fiber.Ctx) error {
	var req dto.ShareValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	v, err := h.shares.ValidateToken(req.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.ShareValidationResponse{Valid: v.Valid, ExpiresAt: v.ExpiresAt},
	})
}

// CheckCode handles GET /api/share/links/:code for revocable links.
func (h *ShareLinksHandler) CheckCode(c *fiber.Ctx) error {
	v, err := h.shares.CheckCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.ShareValidationResponse{Valid: v.Valid, ExpiresAt: v.ExpiresAt},
	})
}
