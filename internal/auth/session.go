package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminCookieName is the cookie carrying the admin session token.
const AdminCookieName = "admin_access"

// DefaultSessionTTL applies when no lifetime is configured.
const DefaultSessionTTL = 12 * time.Hour

// Session is an issued admin session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// SessionManager issues and validates stateless admin sessions.
type SessionManager struct {
	codec *TokenCodec
	creds Credentials
	ttl   time.Duration
}

// NewSessionManager builds a manager. ttl <= 0 selects DefaultSessionTTL.
func NewSessionManager(codec *TokenCodec, creds Credentials, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{codec: codec, creds: creds, ttl: ttl}
}

// Configured reports whether both the signing secret and admin credentials exist.
func (m *SessionManager) Configured() bool {
	return m.codec.Configured() && m.creds.configured()
}

// TTL returns the default session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// CheckCredentials compares both fields in constant time. Both comparisons always run.
func (m *SessionManager) CheckCredentials(username, password string) bool {
	return m.creds.match(username, password)
}

// CreateSession signs an admin session token. ttl <= 0 uses the manager default.
func (m *SessionManager) CreateSession(ttl time.Duration) (Session, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	token, expiresAt, err := m.codec.Sign(nil, AdminSessionDomain, ttl)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt}, nil
}

// SetSessionCookie stores token in the HTTP-only admin cookie.
func (m *SessionManager) SetSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	cookie := sessionCookie(c)
	cookie.Value = token
	cookie.MaxAge = int(ttl / time.Second)
	c.Cookie(cookie)
}

// ClearSessionCookie expires the admin cookie using the same flags as SetSessionCookie,
// otherwise browsers keep the original cookie.
func (m *SessionManager) ClearSessionCookie(c *fiber.Ctx) {
	cookie := sessionCookie(c)
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
}

// SessionFromRequest verifies the admin cookie of the request.
func (m *SessionManager) SessionFromRequest(c *fiber.Ctx) Verification {
	return m.codec.Verify(c.Cookies(AdminCookieName), AdminSessionDomain)
}

func sessionCookie(c *fiber.Ctx) *fiber.Cookie {
	secure := IsSecureRequest(c)
	sameSite := fiber.CookieSameSiteLaxMode
	if secure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     AdminCookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// IsSecureRequest reports whether the request arrived over HTTPS, directly or via a proxy.
func IsSecureRequest(c *fiber.Ctx) bool {
	if c.Protocol() == "https" {
		return true
	}
	proto := c.Get(fiber.HeaderXForwardedProto)
	if i := strings.IndexByte(proto, ','); i >= 0 {
		proto = proto[:i]
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}
