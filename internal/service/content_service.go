package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/repository"
	apperrors "github.com/badrabdoph-netizen/BadrAbdoph-sub000/pkg/util"
)

const maxContentKeyLength = 128

// ContentService serves the site's CMS collections.
type ContentService struct {
	repo       repository.ContentRepository
	dispatcher events.Dispatcher
}

// NewContentService builds the service.
func NewContentService(repo repository.ContentRepository, dispatcher events.Dispatcher) *ContentService {
	return &ContentService{repo: repo, dispatcher: dispatcher}
}

// List returns a collection. Drafts are included only when preview is true.
func (s *ContentService) List(ctx context.Context, resource domain.ContentResource, preview bool) ([]domain.ContentEntry, error) {
	if !resource.Valid() {
		return nil, apperrors.NewNotFound("resource", map[string]any{"resource": resource})
	}
	entries, err := s.repo.List(ctx, resource)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	out := make([]domain.ContentEntry, 0, len(entries))
	for _, e := range entries {
		if e.Draft && !preview {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Get returns one entry; drafts look missing without preview.
func (s *ContentService) Get(ctx context.Context, resource domain.ContentResource, key string, preview bool) (*domain.ContentEntry, error) {
	if !resource.Valid() {
		return nil, apperrors.NewNotFound("resource", map[string]any{"resource": resource})
	}
	entry, err := s.repo.Get(ctx, resource, key)
	if err != nil {
		return nil, notFoundOr(err, "content")
	}
	if entry.Draft && !preview {
		return nil, apperrors.NewNotFound("content", nil)
	}
	return entry, nil
}

// Put creates or replaces an entry.
func (s *ContentService) Put(ctx context.Context, entry *domain.ContentEntry, remoteIP string) error {
	if !entry.Resource.Valid() {
		return apperrors.NewNotFound("resource", map[string]any{"resource": entry.Resource})
	}
	entry.Key = strings.TrimSpace(entry.Key)
	if entry.Key == "" || len(entry.Key) > maxContentKeyLength {
		return apperrors.NewValidationError("invalid key", map[string]any{"max_length": maxContentKeyLength})
	}
	if len(entry.Value) == 0 || !json.Valid(entry.Value) {
		return apperrors.NewValidationError("value must be JSON", nil)
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.EventContentUpdated, remoteIP, events.ContentPayload{Resource: entry.Resource, Key: entry.Key})
	return nil
}

// Delete removes an entry.
func (s *ContentService) Delete(ctx context.Context, resource domain.ContentResource, key, remoteIP string) error {
	if !resource.Valid() {
		return apperrors.NewNotFound("resource", map[string]any{"resource": resource})
	}
	if err := s.repo.Delete(ctx, resource, key); err != nil {
		return notFoundOr(err, "content")
	}
	publish(ctx, s.dispatcher, events.EventContentDeleted, remoteIP, events.ContentPayload{Resource: resource, Key: key})
	return nil
}

func notFoundOr(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return apperrors.MapError(err)
}
