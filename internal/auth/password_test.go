package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mutations(s string) []string {
	out := []string{s + "x", "x" + s}
	if len(s) > 0 {
		out = append(out, s[:len(s)-1])
	}
	for i := range s {
		b := []byte(s)
		b[i] ^= 0x01
		out = append(out, string(b))
	}
	return out
}

func TestCheckCredentials_Plain(t *testing.T) {
	m := NewSessionManager(NewTokenCodec(testSecret), Credentials{Username: "admin", Password: "s3cret!"}, 0)

	assert.True(t, m.CheckCredentials("admin", "s3cret!"))
	for _, u := range mutations("admin") {
		assert.False(t, m.CheckCredentials(u, "s3cret!"), "username %q", u)
	}
	for _, p := range mutations("s3cret!") {
		assert.False(t, m.CheckCredentials("admin", p), "password %q", p)
	}
	assert.False(t, m.CheckCredentials("", ""))
}

func TestCheckCredentials_Hash(t *testing.T) {
	hash, err := HashPassword("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)
	m := NewSessionManager(NewTokenCodec(testSecret), Credentials{Username: "admin", PasswordHash: hash}, 0)

	assert.True(t, m.CheckCredentials("admin", "s3cret!"))
	assert.False(t, m.CheckCredentials("admin", "s3cret?"))
	assert.False(t, m.CheckCredentials("root", "s3cret!"))
}

func TestCheckCredentials_UnconfiguredFailsClosed(t *testing.T) {
	m := NewSessionManager(NewTokenCodec(testSecret), Credentials{Username: "admin"}, 0)
	assert.False(t, m.Configured())
	assert.False(t, m.CheckCredentials("admin", ""))
}
