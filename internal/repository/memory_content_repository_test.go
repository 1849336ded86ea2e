package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

func TestMemoryContentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContentRepository()

	_, err := repo.Get(ctx, domain.ContentPackages, "gold")
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	for i, key := range []string{"silver", "gold", "bronze"} {
		require.NoError(t, repo.Upsert(ctx, &domain.ContentEntry{
			Resource:  domain.ContentPackages,
			Key:       key,
			Value:     json.RawMessage(`{"price":` + string(rune('1'+i)) + `}`),
			SortOrder: i % 2,
		}))
	}

	entries, err := repo.List(ctx, domain.ContentPackages)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"bronze", "silver", "gold"}, []string{entries[0].Key, entries[1].Key, entries[2].Key})
	assert.False(t, entries[0].UpdatedAt.IsZero())

	other, err := repo.List(ctx, domain.ContentTestimonials)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.Delete(ctx, domain.ContentPackages, "gold"))
	assert.ErrorIs(t, repo.Delete(ctx, domain.ContentPackages, "gold"), pgx.ErrNoRows)
}
