package domain

import "time"

// AuthState is the session-boolean gate consulted before any transaction screen is reachable.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username,omitempty"`
}

// Session is an opened, authenticated session together with its bearer token.
type Session struct {
	SessionID string
	Username  string
	Token     string
	ExpiresAt time.Time
}
