package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

// ErrNotConfigured is returned when the codec has no signing secret.
var ErrNotConfigured = errors.New("token signing secret not configured")

const tokenIssuer = "badr-studio"

// Domain separates token purposes. A token signed for one domain never
// verifies against another even though the secret is shared.
type Domain struct {
	Issuer   string
	Audience string
	Subject  string
}

var (
	AdminSessionDomain = Domain{Issuer: tokenIssuer, Audience: "badr-studio:admin", Subject: string(domain.SubjectTypeAdmin)}
	ShareLinkDomain    = Domain{Issuer: tokenIssuer, Audience: "badr-studio:share", Subject: string(domain.SubjectTypeShareLink)}
)

// Verification is the outcome of checking a token. Failure reasons are never exposed.
type Verification struct {
	Valid     bool
	ExpiresAt *time.Time
	ID        string
}

var invalid = Verification{}

// TokenCodec signs and verifies HS256 tokens.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// CodecOption customizes a TokenCodec.
type CodecOption func(*TokenCodec)

// WithClock overrides the time source used for iat/exp.
func WithClock(now func() time.Time) CodecOption {
	return func(tc *TokenCodec) {
		tc.now = now
	}
}

// NewTokenCodec builds a codec. An empty secret yields a codec that refuses to sign
// and rejects every token.
func NewTokenCodec(secret string, opts ...CodecOption) *TokenCodec {
	tc := &TokenCodec{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Configured reports whether a signing secret is present.
func (tc *TokenCodec) Configured() bool {
	return len(tc.secret) > 0
}

// Now returns the codec's current time.
func (tc *TokenCodec) Now() time.Time {
	return tc.now()
}

// Sign embeds iat/exp (second precision, exp rounded up) and the domain fields into extra and signs it.
// Extra claims pass through unchanged except for the registered names the codec owns.
func (tc *TokenCodec) Sign(extra map[string]any, d Domain, ttl time.Duration) (string, time.Time, error) {
	if !tc.Configured() {
		return "", time.Time{}, ErrNotConfigured
	}
	if ttl <= 0 {
		return "", time.Time{}, errors.New("token ttl must be positive")
	}

	now := tc.now()
	issuedAt := now.Truncate(time.Second)
	// exp rounds up to a whole second so the lifetime is never shorter than ttl.
	expiresAt := now.Add(ttl)
	if rounded := expiresAt.Truncate(time.Second); rounded.Before(expiresAt) {
		expiresAt = rounded.Add(time.Second)
	}

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["iss"] = d.Issuer
	claims["aud"] = d.Audience
	claims["sub"] = d.Subject
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature, algorithm, domain and expiry. A token is expired once
// now >= exp. It never returns an error: every failure is {Valid: false}.
func (tc *TokenCodec) Verify(tokenStr string, d Domain) (result Verification) {
	if !tc.Configured() || tokenStr == "" {
		return invalid
	}
	defer func() {
		if r := recover(); r != nil {
			result = invalid
		}
	}()

	parsed, err := jwt.Parse(tokenStr,
		func(*jwt.Token) (interface{}, error) { return tc.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(d.Issuer),
		jwt.WithAudience(d.Audience),
		jwt.WithSubject(d.Subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tc.now),
	)
	if err != nil || !parsed.Valid {
		return invalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return invalid
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return invalid
	}

	expiresAt := exp.Time.UTC()
	id, _ := claims["jti"].(string)
	return Verification{Valid: true, ExpiresAt: &expiresAt, ID: id}
}
