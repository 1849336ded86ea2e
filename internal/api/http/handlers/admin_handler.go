package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/dto"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/service"
)

// AdminHandler exposes admin session endpoints.
type AdminHandler struct {
	auth *service.AdminAuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AdminAuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "password required")
	}

	session, err := h.auth.Login(c.UserContext(), req.Username, req.Password, c.IP())
	if err != nil {
		return err
	}

	sessions := h.auth.Sessions()
	sessions.SetSessionCookie(c, session.Token, sessions.TTL())
	return c.JSON(fiber.Map{
		"data": dto.AdminLoginResponse{OK: true, ExpiresAt: session.ExpiresAt},
	})
}

// Logout handles POST /api/admin/logout. It always succeeds.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	h.auth.Sessions().ClearSessionCookie(c)
	h.auth.Logout(c.UserContext(), c.IP())
	return c.JSON(fiber.Map{"data": fiber.Map{"ok": true}})
}

// Session handles GET /api/admin/session.
func (h *AdminHandler) Session(c *fiber.Ctx) error {
	v := h.auth.Sessions().SessionFromRequest(c)
	return c.JSON(fiber.Map{
		"data": dto.AdminSessionResponse{Authenticated: v.Valid, ExpiresAt: v.ExpiresAt},
	})
}
