package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// LoginRequest holds the credential pair typed into the login form.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func ToLoginResponse(s *domain.Session) LoginResponse {
	return LoginResponse{Token: s.Token, Username: s.Username, ExpiresAt: s.ExpiresAt}
}

// SessionResponse reports the current auth state.
type SessionResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username,omitempty"`
}

func ToSessionResponse(s domain.AuthState) SessionResponse {
	return SessionResponse{IsAuthenticated: s.IsAuthenticated, Username: s.Username}
}
