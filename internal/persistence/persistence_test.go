package persistence

import (
	"context"
	"testing"
	"testing/fstest"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/config"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/migrations"
)

func TestPostgres_DisabledWithoutDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, pg.Enabled())
	assert.ErrorIs(t, pg.Ping(context.Background()), ErrDisabled)
	pg.Close()
}

func TestRedis(t *testing.T) {
	ctx := context.Background()

	disabled := NewRedis(ctx, config.RedisConfig{}, zap.NewNop())
	assert.ErrorIs(t, disabled.Ping(ctx), ErrDisabled)

	mr := miniredis.RunT(t)
	r := NewRedis(ctx, config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer r.Close()
	assert.NoError(t, r.Ping(ctx))
}

func TestRunMigrations_NoPool(t *testing.T) {
	err := RunMigrations(context.Background(), nil, fstest.MapFS{}, zap.NewNop())
	assert.NoError(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	content, err := migrations.FS.ReadFile("001_content_entries.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "content_entries")
}
