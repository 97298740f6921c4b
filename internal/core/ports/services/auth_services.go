package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// Authenticator decides whether a credential pair is accepted.
type Authenticator interface {
	Attempt(username, password string) bool
}

// SessionSvcFacade manages the single authenticated session that gates the API.
type SessionSvcFacade interface {
	// Login checks the credentials and opens a new session, replacing any previous one.
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Logout resets to the unauthenticated state.
	Logout(ctx context.Context)

	// State reports whether a session is open and for whom.
	State(ctx context.Context) domain.AuthState

	// IsActive reports whether sessionID identifies the currently open session.
	IsActive(sessionID string) bool
}
