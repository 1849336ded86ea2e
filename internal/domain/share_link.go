package domain

import "time"

// ShareLink is a persisted, revocable preview link. Records are soft-deleted
// through RevokedAt and never removed.
type ShareLink struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Note      *string    `json:"note"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	RevokedAt *time.Time `json:"revokedAt"`
}

// IsActive reports whether the link grants access at now.
func (s *ShareLink) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Clone returns a copy that shares no pointers with s.
func (s ShareLink) Clone() ShareLink {
	if s.Note != nil {
		note := *s.Note
		s.Note = &note
	}
	if s.RevokedAt != nil {
		revokedAt := *s.RevokedAt
		s.RevokedAt = &revokedAt
	}
	return s
}
