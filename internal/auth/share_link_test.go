package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareLink_OneHourScenario(t *testing.T) {
	clock := newFakeClock()
	m := NewShareLinkManager(NewTokenCodec(testSecret, WithClock(clock.Now)))

	link, err := m.CreateShareLink(time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, clock.Now().Add(time.Hour), link.ExpiresAt)

	clock.Advance(30 * time.Minute)
	v := m.VerifyShareLink(link.Token)
	assert.True(t, v.Valid)
	assert.Equal(t, link.ID, v.ID)

	clock.Advance(31 * time.Minute)
	v = m.VerifyShareLink(link.Token)
	assert.False(t, v.Valid)
	assert.Nil(t, v.ExpiresAt)
}

func TestShareLink_UniqueIDs(t *testing.T) {
	m := NewShareLinkManager(NewTokenCodec(testSecret))
	a, err := m.CreateShareLink(time.Hour)
	require.NoError(t, err)
	b, err := m.CreateShareLink(time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestShareLink_AdminTokenRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	session, err := NewSessionManager(codec, Credentials{Username: "admin", Password: "pw"}, 0).CreateSession(0)
	require.NoError(t, err)
	assert.False(t, NewShareLinkManager(codec).VerifyShareLink(session.Token).Valid)
}

func TestShareLink_RejectsNonPositiveTTL(t *testing.T) {
	_, err := NewShareLinkManager(NewTokenCodec(testSecret)).CreateShareLink(0)
	assert.Error(t, err)
}
