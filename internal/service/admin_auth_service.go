package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/auth"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/config"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
	apperrors "github.com/badrabdoph-netizen/BadrAbdoph-sub000/pkg/util"
)

// AdminAuthService coordinates the single-admin login flow.
type AdminAuthService struct {
	sessions   *auth.SessionManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	configErr  error
}

// NewAdminAuthService builds the service. cfg is checked once; a missing secret or
// password leaves login failing closed with a configuration error.
func NewAdminAuthService(cfg config.AuthConfig, sessions *auth.SessionManager, dispatcher events.Dispatcher, logger *zap.Logger) *AdminAuthService {
	s := &AdminAuthService{
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
		configErr:  cfg.Validate(),
	}
	if s.configErr != nil {
		logger.Error("admin authentication disabled", zap.Error(s.configErr))
	}
	return s
}

// Login checks the credential pair and issues a session. Wrong username and wrong
// password produce the same error.
func (s *AdminAuthService) Login(ctx context.Context, username, password, remoteIP string) (auth.Session, error) {
	if s.configErr != nil || !s.sessions.Configured() {
		return auth.Session{}, apperrors.NewConfigurationError(s.configErr)
	}
	if !s.sessions.CheckCredentials(username, password) {
		publish(ctx, s.dispatcher, events.EventAdminLoginFailed, remoteIP, nil)
		return auth.Session{}, apperrors.NewUnauthorized("invalid password")
	}

	session, err := s.sessions.CreateSession(0)
	if err != nil {
		return auth.Session{}, apperrors.NewInternalError(err)
	}
	publish(ctx, s.dispatcher, events.EventAdminLoginSucceeded, remoteIP, nil)
	return session, nil
}

// Logout records the logout. Sessions are stateless; the caller clears the cookie.
func (s *AdminAuthService) Logout(ctx context.Context, remoteIP string) {
	publish(ctx, s.dispatcher, events.EventAdminLogout, remoteIP, nil)
}

// Sessions exposes the session manager for cookie handling and middleware.
func (s *AdminAuthService) Sessions() *auth.SessionManager {
	return s.sessions
}
