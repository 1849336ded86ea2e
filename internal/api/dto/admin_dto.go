package dto

import "time"

// AdminLoginRequest payload for POST /api/admin/login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse confirms a new session; the token itself only travels in the cookie.
type AdminLoginResponse struct {
	OK        bool      `json:"ok"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminSessionResponse reports the caller's admin session state.
type AdminSessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}
