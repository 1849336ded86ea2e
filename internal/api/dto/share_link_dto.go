package dto

import (
	"time"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/domain"
)

// ShareLinkCreateRequest payload for both share link kinds. Code applies to revocable links only.
type ShareLinkCreateRequest struct {
	TTLHours int    `json:"ttlHours"`
	Note     string `json:"note"`
	Code     string `json:"code,omitempty"`
}

// ShareLinkResponse is returned for a new ephemeral link.
type ShareLinkResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Note      *string   `json:"note"`
}

// ShareValidateRequest payload for POST /api/share/validate.
type ShareValidateRequest struct {
	Token string `json:"token"`
}

// ShareValidationResponse never explains why a link is invalid.
type ShareValidationResponse struct {
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// RevocableShareLinkResponse is a stored link plus its current state.
type RevocableShareLinkResponse struct {
	domain.ShareLink
	Active bool `json:"active"`
}

// NewRevocableShareLinkResponse builds the response evaluated at now.
func NewRevocableShareLinkResponse(link domain.ShareLink, now time.Time) RevocableShareLinkResponse {
	return RevocableShareLinkResponse{ShareLink: link, Active: link.IsActive(now)}
}
