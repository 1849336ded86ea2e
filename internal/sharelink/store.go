package sharelink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

// ErrLinkNotFound is returned by GetByCode for unknown codes.
var ErrLinkNotFound = errors.New("share link not found")

// Store is the revocable share link set. It is a plain CRUD layer: whether a
// record currently grants access is decided by the caller via ShareLink.IsActive.
//
// The set is hydrated from the backend on first use; concurrent first callers
// share a single load. Mutations are serialized and persisted before returning.
type Store struct {
	backend Backend
	logger  *zap.Logger
	now     func() time.Time

	hydrate singleflight.Group
	writeMu sync.Mutex

	mu     sync.RWMutex
	loaded bool
	links  map[string]domain.ShareLink
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source for createdAt/updatedAt/revokedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore builds a store over backend. Nothing is read until first use.
func NewStore(backend Backend, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		links:   map[string]domain.ShareLink{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.hydrate.Do("hydrate", func() (interface{}, error) {
		s.mu.RLock()
		loaded := s.loaded
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		links, err := s.load(context.WithoutCancel(ctx))
		if err != nil {
			s.logger.Error("share link store hydration failed", zap.Error(err))
			return nil, err
		}

		s.mu.Lock()
		s.links = links
		s.loaded = true
		s.mu.Unlock()
		s.logger.Debug("share link store hydrated", zap.Int("count", len(links)))
		return nil, nil
	})
	return err
}

func (s *Store) load(ctx context.Context) (map[string]domain.ShareLink, error) {
	links := map[string]domain.ShareLink{}

	data, err := s.backend.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return links, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load share links: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return links, nil
	}

	var records []domain.ShareLink
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode share links: %w", err)
	}
	for _, rec := range records {
		links[rec.Code] = rec
	}
	return links, nil
}

// Create upserts the link for code. Re-issuing an existing code keeps its id and
// createdAt, replaces note and expiry and clears a previous revocation.
func (s *Store) Create(ctx context.Context, code string, note *string, expiresAt time.Time) (*domain.ShareLink, error) {
	if code == "" {
		return nil, errors.New("share link code required")
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	now := s.now().UTC()
	rec := domain.ShareLink{
		ID:        uuid.NewString(),
		Code:      code,
		Note:      note,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.RLock()
	if existing, ok := s.links[code]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	s.mu.RUnlock()

	if err := s.commit(ctx, rec); err != nil {
		return nil, err
	}
	out := rec.Clone()
	return &out, nil
}

// GetByCode returns the record for code or ErrLinkNotFound.
func (s *Store) GetByCode(ctx context.Context, code string) (*domain.ShareLink, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.links[code]
	if !ok {
		return nil, ErrLinkNotFound
	}
	out := rec.Clone()
	return &out, nil
}

// List returns every record, newest first.
func (s *Store) List(ctx context.Context) ([]domain.ShareLink, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedLinks(s.links), nil
}

// Revoke marks code revoked. It reports false for unknown codes. Revoking twice
// keeps the first revokedAt and only bumps updatedAt.
func (s *Store) Revoke(ctx context.Context, code string) (bool, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	rec, ok := s.links[code]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	now := s.now().UTC()
	if rec.RevokedAt == nil {
		rec.RevokedAt = &now
	}
	rec.UpdatedAt = now

	if err := s.commit(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}

// commit persists the set with rec applied, then applies it in memory. A failed
// save leaves memory untouched. Callers hold writeMu.
func (s *Store) commit(ctx context.Context, rec domain.ShareLink) error {
	s.mu.RLock()
	next := make(map[string]domain.ShareLink, len(s.links)+1)
	for k, v := range s.links {
		next[k] = v
	}
	s.mu.RUnlock()
	next[rec.Code] = rec

	data, err := json.MarshalIndent(sortedLinks(next), "", "  ")
	if err != nil {
		return fmt.Errorf("encode share links: %w", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Error("share link store write failed", zap.String("code", rec.Code), zap.Error(err))
		return fmt.Errorf("save share links: %w", err)
	}

	s.mu.Lock()
	s.links[rec.Code] = rec.Clone()
	s.mu.Unlock()
	return nil
}

func sortedLinks(links map[string]domain.ShareLink) []domain.ShareLink {
	out := make([]domain.ShareLink, 0, len(links))
	for _, rec := range links {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}
