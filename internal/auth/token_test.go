package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_SignVerify(t *testing.T) {
	clock := newFakeClock()
	codec := NewTokenCodec(testSecret, WithClock(clock.Now))

	for _, ttl := range []time.Duration{time.Second, time.Minute, 12 * time.Hour, 7 * 24 * time.Hour} {
		token, expiresAt, err := codec.Sign(map[string]any{"jti": "abc"}, ShareLinkDomain, ttl)
		require.NoError(t, err)
		assert.Equal(t, clock.Now().Add(ttl), expiresAt)

		v := codec.Verify(token, ShareLinkDomain)
		require.True(t, v.Valid, "ttl %s", ttl)
		require.NotNil(t, v.ExpiresAt)
		assert.True(t, expiresAt.Equal(*v.ExpiresAt))
		assert.Equal(t, "abc", v.ID)
	}

	// Off a whole second, short ttls still produce a token that verifies and
	// exp never lands before now+ttl.
	clock.Advance(400 * time.Millisecond)
	for _, ttl := range []time.Duration{time.Millisecond, 500 * time.Millisecond, 900 * time.Millisecond, time.Hour} {
		token, expiresAt, err := codec.Sign(nil, ShareLinkDomain, ttl)
		require.NoError(t, err)
		assert.Equal(t, 0, expiresAt.Nanosecond())
		assert.False(t, expiresAt.Before(clock.Now().Add(ttl)), "ttl %s", ttl)

		v := codec.Verify(token, ShareLinkDomain)
		assert.True(t, v.Valid, "ttl %s", ttl)
	}
}

func TestTokenCodec_SecondPrecision(t *testing.T) {
	clock := newFakeClock()
	clock.Advance(750 * time.Millisecond)
	codec := NewTokenCodec(testSecret, WithClock(clock.Now))

	_, expiresAt, err := codec.Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, expiresAt.Nanosecond())
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	clock := newFakeClock()
	codec := NewTokenCodec(testSecret, WithClock(clock.Now))

	token, _, err := codec.Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)

	clock.Advance(time.Hour - time.Second)
	assert.True(t, codec.Verify(token, AdminSessionDomain).Valid)

	clock.Advance(time.Second)
	v := codec.Verify(token, AdminSessionDomain)
	assert.False(t, v.Valid, "token must be expired at exactly exp")
	assert.Nil(t, v.ExpiresAt)

	clock.Advance(time.Minute)
	assert.False(t, codec.Verify(token, AdminSessionDomain).Valid)
}

func TestTokenCodec_DomainSeparation(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	shareToken, _, err := codec.Sign(nil, ShareLinkDomain, time.Hour)
	require.NoError(t, err)
	adminToken, _, err := codec.Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)

	assert.False(t, codec.Verify(shareToken, AdminSessionDomain).Valid)
	assert.False(t, codec.Verify(adminToken, ShareLinkDomain).Valid)

	partial := []Domain{
		{Issuer: "other", Audience: AdminSessionDomain.Audience, Subject: AdminSessionDomain.Subject},
		{Issuer: AdminSessionDomain.Issuer, Audience: "other", Subject: AdminSessionDomain.Subject},
		{Issuer: AdminSessionDomain.Issuer, Audience: AdminSessionDomain.Audience, Subject: "other"},
	}
	for _, d := range partial {
		assert.False(t, codec.Verify(adminToken, d).Valid, "%+v", d)
	}
}

func TestTokenCodec_RejectsTampering(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	token, _, err := codec.Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	i := len(sig) / 2
	if sig[i] == 'A' {
		sig[i] = 'B'
	} else {
		sig[i] = 'A'
	}
	badSig := parts[0] + "." + parts[1] + "." + string(sig)
	assert.False(t, codec.Verify(badSig, AdminSessionDomain).Valid)

	other, _, err := codec.Sign(map[string]any{"jti": "x"}, AdminSessionDomain, 2*time.Hour)
	require.NoError(t, err)
	swapped := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]
	assert.False(t, codec.Verify(swapped, AdminSessionDomain).Valid)
}

func TestTokenCodec_FailsClosed(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	token, _, err := codec.Sign(nil, AdminSessionDomain, time.Hour)
	require.NoError(t, err)

	t.Run("different secret", func(t *testing.T) {
		assert.False(t, NewTokenCodec("another-secret").Verify(token, AdminSessionDomain).Valid)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, in := range []string{"", "abc", "a.b.c", "...", strings.Repeat("x", 4096)} {
			v := codec.Verify(in, AdminSessionDomain)
			assert.False(t, v.Valid)
			assert.Nil(t, v.ExpiresAt)
		}
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwt.MapClaims{
			"iss": AdminSessionDomain.Issuer,
			"aud": AdminSessionDomain.Audience,
			"sub": AdminSessionDomain.Subject,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		assert.False(t, codec.Verify(unsigned, AdminSessionDomain).Valid)
	})

	t.Run("missing exp", func(t *testing.T) {
		claims := jwt.MapClaims{
			"iss": AdminSessionDomain.Issuer,
			"aud": AdminSessionDomain.Audience,
			"sub": AdminSessionDomain.Subject,
		}
		noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		assert.False(t, codec.Verify(noExp, AdminSessionDomain).Valid)
	})

	t.Run("unconfigured codec", func(t *testing.T) {
		empty := NewTokenCodec("")
		assert.False(t, empty.Configured())
		assert.False(t, empty.Verify(token, AdminSessionDomain).Valid)
		_, _, err := empty.Sign(nil, AdminSessionDomain, time.Hour)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestTokenCodec_ExtraClaimsPassThrough(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	token, _, err := codec.Sign(map[string]any{"jti": "id-1", "note": "wedding preview", "sub": "spoofed"}, ShareLinkDomain, time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "wedding preview", claims["note"])
	assert.Equal(t, "id-1", claims["jti"])
	assert.Equal(t, ShareLinkDomain.Subject, claims["sub"])
}

func TestTokenCodec_RejectsNonPositiveTTL(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	_, _, err := codec.Sign(nil, AdminSessionDomain, 0)
	assert.Error(t, err)
	_, _, err = codec.Sign(nil, AdminSessionDomain, -time.Minute)
	assert.Error(t, err)
}
