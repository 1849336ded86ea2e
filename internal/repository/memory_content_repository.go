package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

type memoryContentRepository struct {
	mu      sync.RWMutex
	entries map[domain.ContentResource]map[string]domain.ContentEntry
	now     func() time.Time
}

// NewMemoryContentRepository returns a process-local implementation used when
// no database is configured.
func NewMemoryContentRepository() ContentRepository {
	return &memoryContentRepository{
		entries: map[domain.ContentResource]map[string]domain.ContentEntry{},
		now:     time.Now,
	}
}

func (r *memoryContentRepository) List(_ context.Context, resource domain.ContentResource) ([]domain.ContentEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.ContentEntry, 0, len(r.entries[resource]))
	for _, e := range r.entries[resource] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SortOrder != entries[j].SortOrder {
			return entries[i].SortOrder < entries[j].SortOrder
		}
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}

func (r *memoryContentRepository) Get(_ context.Context, resource domain.ContentResource, key string) (*domain.ContentEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[resource][key]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (r *memoryContentRepository) Upsert(_ context.Context, entry *domain.ContentEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.UpdatedAt = r.now().UTC()
	if r.entries[entry.Resource] == nil {
		r.entries[entry.Resource] = map[string]domain.ContentEntry{}
	}
	stored := *entry
	stored.Value = append([]byte(nil), entry.Value...)
	r.entries[entry.Resource][entry.Key] = stored
	return nil
}

func (r *memoryContentRepository) Delete(_ context.Context, resource domain.ContentResource, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[resource][key]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.entries[resource], key)
	return nil
}
