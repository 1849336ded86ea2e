package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/badrabdoph-netizen/BadrAbdoph-sub000/pkg/util"
)

const accessKey = "auth_access"

// ShareTokenQuery is the query parameter carrying an ephemeral share token.
const ShareTokenQuery = "share"

// Access describes what the caller proved on this request.
type Access struct {
	Admin Verification
	Share Verification
}

// Preview reports whether unpublished content may be shown.
func (a Access) Preview() bool {
	return a.Admin.Valid || a.Share.Valid
}

// AdminMiddleware gates routes on the admin session cookie.
type AdminMiddleware struct {
	sessions *SessionManager
	shares   *ShareLinkManager
	logger   *zap.Logger
}

// NewAdminMiddleware constructs middleware.
func NewAdminMiddleware(sessions *SessionManager, shares *ShareLinkManager, logger *zap.Logger) *AdminMiddleware {
	return &AdminMiddleware{sessions: sessions, shares: shares, logger: logger}
}

// RequireAdmin rejects the request before the handler runs unless the session is valid.
func (m *AdminMiddleware) RequireAdmin(c *fiber.Ctx) error {
	session := m.sessions.SessionFromRequest(c)
	if !session.Valid {
		m.logger.Debug("admin session rejected", zap.String("path", c.Path()))
		return apperrors.NewUnauthorized("unauthorized")
	}
	c.Locals(accessKey, Access{Admin: session})
	return c.Next()
}

// Optional records the admin session and any share token of the request without
// requiring either.
func (m *AdminMiddleware) Optional(c *fiber.Ctx) error {
	access := Access{Admin: m.sessions.SessionFromRequest(c)}
	if token := c.Query(ShareTokenQuery); token != "" {
		access.Share = m.shares.VerifyShareLink(token)
		if access.Share.Valid {
			m.logger.Debug("share preview", zap.String("jti", access.Share.ID))
		}
	}
	c.Locals(accessKey, access)
	return c.Next()
}

// AccessFromContext returns what Optional or RequireAdmin recorded.
func AccessFromContext(c *fiber.Ctx) Access {
	access, _ := c.Locals(accessKey).(Access)
	return access
}
