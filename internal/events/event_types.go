package events

import (
	"time"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdminLoginSucceeded EventType = "admin_login_succeeded"
	EventAdminLoginFailed    EventType = "admin_login_failed"
	EventAdminLogout         EventType = "admin_logout"
	EventShareLinkCreated    EventType = "share_link_created"
	EventShareLinkRevoked    EventType = "share_link_revoked"
	EventContentUpdated      EventType = "content_updated"
	EventContentDeleted      EventType = "content_deleted"
)

// Event represents an auditable action.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RemoteIP  string      `json:"remote_ip,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ShareLinkPayload describes an issued or revoked share link. Tokens are never included.
type ShareLinkPayload struct {
	Kind      string    `json:"kind"`
	Reference string    `json:"reference"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ContentPayload identifies a changed CMS entry.
type ContentPayload struct {
	Resource domain.ContentResource `json:"resource"`
	Key      string                 `json:"key"`
}
