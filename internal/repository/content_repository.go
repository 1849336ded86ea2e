package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

// ContentRepository defines persistence access for CMS entries.
// Missing entries are reported as pgx.ErrNoRows by every implementation.
type ContentRepository interface {
	List(ctx context.Context, resource domain.ContentResource) ([]domain.ContentEntry, error)
	Get(ctx context.Context, resource domain.ContentResource, key string) (*domain.ContentEntry, error)
	Upsert(ctx context.Context, entry *domain.ContentEntry) error
	Delete(ctx context.Context, resource domain.ContentResource, key string) error
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a Postgres-backed implementation.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) List(ctx context.Context, resource domain.ContentResource) ([]domain.ContentEntry, error) {
	const query = `
        SELECT resource, key, value, draft, sort_order, updated_at
        FROM content_entries WHERE resource=$1
        ORDER BY sort_order, key`

	rows, err := r.pool.Query(ctx, query, resource)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ContentEntry
	for rows.Next() {
		var e domain.ContentEntry
		if err := rows.Scan(&e.Resource, &e.Key, &e.Value, &e.Draft, &e.SortOrder, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *contentRepository) Get(ctx context.Context, resource domain.ContentResource, key string) (*domain.ContentEntry, error) {
	const query = `
        SELECT resource, key, value, draft, sort_order, updated_at
        FROM content_entries WHERE resource=$1 AND key=$2`

	var e domain.ContentEntry
	if err := r.pool.QueryRow(ctx, query, resource, key).Scan(
		&e.Resource,
		&e.Key,
		&e.Value,
		&e.Draft,
		&e.SortOrder,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *contentRepository) Upsert(ctx context.Context, entry *domain.ContentEntry) error {
	const query = `
        INSERT INTO content_entries (resource, key, value, draft, sort_order)
        VALUES ($1, $2, $3::jsonb, $4, $5)
        ON CONFLICT (resource, key) DO UPDATE
        SET value=EXCLUDED.value, draft=EXCLUDED.draft, sort_order=EXCLUDED.sort_order, updated_at=NOW()
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		entry.Resource,
		entry.Key,
		string(entry.Value),
		entry.Draft,
		entry.SortOrder,
	).Scan(&entry.UpdatedAt)
}

func (r *contentRepository) Delete(ctx context.Context, resource domain.ContentResource, key string) error {
	const query = `DELETE FROM content_entries WHERE resource=$1 AND key=$2`

	cmd, err := r.pool.Exec(ctx, query, resource, key)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
