package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// IssuedShareLink is an ephemeral share token. ID is the embedded jti, kept for log correlation.
type IssuedShareLink struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// ShareLinkManager issues stateless share tokens. They cannot be revoked: the
// token is the credential until it expires. Use the sharelink store for revocable links.
type ShareLinkManager struct {
	codec *TokenCodec
}

// NewShareLinkManager builds a manager on top of codec.
func NewShareLinkManager(codec *TokenCodec) *ShareLinkManager {
	return &ShareLinkManager{codec: codec}
}

// CreateShareLink mints a share token valid for ttl.
func (m *ShareLinkManager) CreateShareLink(ttl time.Duration) (IssuedShareLink, error) {
	if ttl <= 0 {
		return IssuedShareLink{}, errors.New("share link ttl must be positive")
	}
	id := uuid.NewString()
	token, expiresAt, err := m.codec.Sign(map[string]any{"jti": id}, ShareLinkDomain, ttl)
	if err != nil {
		return IssuedShareLink{}, err
	}
	return IssuedShareLink{ID: id, Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyShareLink checks signature and expiry only. No I/O.
func (m *ShareLinkManager) VerifyShareLink(token string) Verification {
	return m.codec.Verify(token, ShareLinkDomain)
}
