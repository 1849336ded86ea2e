package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/auth"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/sharelink"
	apperrors "github.com/badrabdoph-netizen/BadrAbdoph-sub000/pkg/util"
)

const (
	MinShareTTLHours   = 1
	MaxShareTTLHours   = 168
	MaxShareNoteLength = 200
	MinShareTokenLen   = 10
)

const (
	shareKindEphemeral = "ephemeral"
	shareKindRevocable = "revocable"
)

var shareCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,64}$`)

// EphemeralShareLink is a freshly minted stateless share token.
type EphemeralShareLink struct {
	Token     string
	ExpiresAt time.Time
	Note      *string
}

// ShareLinkService exposes the two share link capabilities side by side:
// ephemeral tokens (no lookup, no revocation) and revocable stored codes.
type ShareLinkService struct {
	ephemeral  *auth.ShareLinkManager
	store      *sharelink.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// ShareLinkDependencies bundles collaborators of ShareLinkService.
type ShareLinkDependencies struct {
	Ephemeral  *auth.ShareLinkManager
	Store      *sharelink.Store
	Dispatcher events.Dispatcher
	Clock      func() time.Time
}

// NewShareLinkService builds the service.
func NewShareLinkService(deps ShareLinkDependencies, logger *zap.Logger) *ShareLinkService {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &ShareLinkService{
		ephemeral:  deps.Ephemeral,
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        now,
	}
}

// CreateEphemeral mints a stateless share token valid for ttlHours.
func (s *ShareLinkService) CreateEphemeral(ctx context.Context, ttlHours int, note, remoteIP string) (EphemeralShareLink, error) {
	ttl, err := shareTTL(ttlHours)
	if err != nil {
		return EphemeralShareLink{}, err
	}
	cleanNote, err := shareNote(note)
	if err != nil {
		return EphemeralShareLink{}, err
	}

	link, err := s.ephemeral.CreateShareLink(ttl)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			return EphemeralShareLink{}, apperrors.NewConfigurationError(err)
		}
		return EphemeralShareLink{}, apperrors.NewInternalError(err)
	}

	s.logger.Info("share link issued", zap.String("kind", shareKindEphemeral), zap.String("jti", link.ID), zap.Time("expires_at", link.ExpiresAt))
	publish(ctx, s.dispatcher, events.EventShareLinkCreated, remoteIP, events.ShareLinkPayload{
		Kind:      shareKindEphemeral,
		Reference: link.ID,
		ExpiresAt: link.ExpiresAt,
	})
	return EphemeralShareLink{Token: link.Token, ExpiresAt: link.ExpiresAt, Note: cleanNote}, nil
}

// ValidateToken verifies an ephemeral token. Malformed, forged and expired tokens
// are indistinguishable; only a too-short input is a validation error.
func (s *ShareLinkService) ValidateToken(token string) (auth.Verification, error) {
	token = strings.TrimSpace(token)
	if len(token) < MinShareTokenLen {
		return auth.Verification{}, apperrors.NewValidationError("token too short", map[string]any{"min_length": MinShareTokenLen})
	}
	return s.ephemeral.VerifyShareLink(token), nil
}

// CreateRevocable stores a share link under code, generating one when empty.
func (s *ShareLinkService) CreateRevocable(ctx context.Context, code string, ttlHours int, note, remoteIP string) (*domain.ShareLink, error) {
	ttl, err := shareTTL(ttlHours)
	if err != nil {
		return nil, err
	}
	cleanNote, err := shareNote(note)
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		code = strings.ReplaceAll(uuid.NewString(), "-", "")
	} else if !shareCodePattern.MatchString(code) {
		return nil, apperrors.NewValidationError("invalid code", map[string]any{"pattern": shareCodePattern.String()})
	}

	expiresAt := s.now().Add(ttl).Truncate(time.Second)
	rec, err := s.store.Create(ctx, code, cleanNote, expiresAt)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("share link issued", zap.String("kind", shareKindRevocable), zap.String("code", rec.Code), zap.Time("expires_at", rec.ExpiresAt))
	publish(ctx, s.dispatcher, events.EventShareLinkCreated, remoteIP, events.ShareLinkPayload{
		Kind:      shareKindRevocable,
		Reference: rec.Code,
		ExpiresAt: rec.ExpiresAt,
	})
	return rec, nil
}

// ListRevocable returns stored links, newest first.
func (s *ShareLinkService) ListRevocable(ctx context.Context) ([]domain.ShareLink, error) {
	links, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return links, nil
}

// Revoke invalidates a stored link.
func (s *ShareLinkService) Revoke(ctx context.Context, code, remoteIP string) error {
	ok, err := s.store.Revoke(ctx, code)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !ok {
		return apperrors.NewNotFound("share link", nil)
	}

	s.logger.Info("share link revoked", zap.String("code", code))
	publish(ctx, s.dispatcher, events.EventShareLinkRevoked, remoteIP, events.ShareLinkPayload{
		Kind:      shareKindRevocable,
		Reference: code,
	})
	return nil
}

// CheckCode reports whether a stored link currently grants access.
// Unknown, revoked and expired codes all yield {Valid: false}.
func (s *ShareLinkService) CheckCode(ctx context.Context, code string) (auth.Verification, error) {
	rec, err := s.store.GetByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, sharelink.ErrLinkNotFound) {
		return auth.Verification{}, nil
	}
	if err != nil {
		return auth.Verification{}, apperrors.NewInternalError(err)
	}
	if !rec.IsActive(s.now()) {
		return auth.Verification{}, nil
	}
	expiresAt := rec.ExpiresAt
	return auth.Verification{Valid: true, ExpiresAt: &expiresAt, ID: rec.Code}, nil
}

func shareTTL(hours int) (time.Duration, error) {
	if hours < MinShareTTLHours || hours > MaxShareTTLHours {
		return 0, apperrors.NewValidationError("ttlHours out of range", map[string]any{
			"min": MinShareTTLHours,
			"max": MaxShareTTLHours,
		})
	}
	return time.Duration(hours) * time.Hour, nil
}

func shareNote(note string) (*string, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(note) > MaxShareNoteLength {
		return nil, apperrors.NewValidationError("note too long", map[string]any{"max_length": MaxShareNoteLength})
	}
	return &note, nil
}
