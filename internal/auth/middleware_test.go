package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/badrabdoph-netizen/BadrAbdoph-sub000/pkg/util"
)

func newMiddlewareApp(codec *TokenCodec, mutated *bool) *fiber.App {
	sessions := NewSessionManager(codec, Credentials{Username: "admin", Password: "pw"}, 0)
	mw := NewAdminMiddleware(sessions, NewShareLinkManager(codec), zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Post("/admin/thing", mw.RequireAdmin, func(c *fiber.Ctx) error {
		*mutated = true
		return c.SendStatus(http.StatusNoContent)
	})
	app.Get("/public", mw.Optional, func(c *fiber.Ctx) error {
		access := AccessFromContext(c)
		return c.JSON(fiber.Map{"admin": access.Admin.Valid, "share": access.Share.Valid, "preview": access.Preview()})
	})
	return app
}

func TestRequireAdmin(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	var mutated bool
	app := newMiddlewareApp(codec, &mutated)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/admin/thing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, mutated, "handler must not run without a session")

	expired, _, err := NewTokenCodec(testSecret, WithClock(func() time.Time {
		return time.Now().Add(-24 * time.Hour)
	})).Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/thing", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: expired})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, mutated)

	session, err := NewSessionManager(codec, Credentials{Username: "admin", Password: "pw"}, 0).CreateSession(0)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/admin/thing", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: session.Token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, mutated)
}

func TestOptional(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	var mutated bool
	app := newMiddlewareApp(codec, &mutated)

	type body struct {
		Admin   bool `json:"admin"`
		Share   bool `json:"share"`
		Preview bool `json:"preview"`
	}
	get := func(target string) body {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var b body
		require.NoError(t, decodeJSON(resp, &b))
		return b
	}

	assert.Equal(t, body{}, get("/public"))
	assert.Equal(t, body{}, get("/public?share=garbage-token"))

	link, err := NewShareLinkManager(codec).CreateShareLink(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, body{Share: true, Preview: true}, get("/public?share="+link.Token))
}
