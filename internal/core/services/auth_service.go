package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// staticAuthenticator accepts exactly one credential pair.
// The password is held as a bcrypt hash only.
type staticAuthenticator struct {
	username     string
	passwordHash string
}

// NewStaticAuthenticator returns an Authenticator for a single hardcoded credential pair.
func NewStaticAuthenticator(username, passwordHash string) portssvc.Authenticator {
	return &staticAuthenticator{username: username, passwordHash: passwordHash}
}

func (a *staticAuthenticator) Attempt(username, password string) bool {
	if username != a.username {
		return false
	}
	return utils.CheckPasswordHash(password, a.passwordHash)
}

// SessionConfig holds the token settings of the session service.
type SessionConfig struct {
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

// sessionService keeps the single authenticated session of the process.
type sessionService struct {
	BaseService
	authenticator portssvc.Authenticator
	cfg           SessionConfig

	mu        sync.RWMutex
	state     domain.AuthState
	sessionID string
}

// NewSessionService creates a session service that starts unauthenticated.
func NewSessionService(authenticator portssvc.Authenticator, cfg SessionConfig) portssvc.SessionSvcFacade {
	return &sessionService{
		authenticator: authenticator,
		cfg:           cfg,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	// Both fields are trimmed, password included, the same way the login form submits them.
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		s.LogWarn(ctx, "Login rejected, missing credentials")
		return nil, fmt.Errorf("please enter both username and password: %w", apperrors.ErrValidation)
	}

	if !s.authenticator.Attempt(username, password) {
		s.LogWarn(ctx, "Login rejected, incorrect credentials", slog.String("username", username))
		return nil, fmt.Errorf("incorrect username or password: %w", apperrors.ErrInvalidCredentials)
	}

	sessionID, err := utils.NewSessionID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session id")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	token, expiresAt, err := utils.GenerateJWT(username, sessionID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.mu.Lock()
	s.state = domain.AuthState{IsAuthenticated: true, Username: username}
	s.sessionID = sessionID
	s.mu.Unlock()

	s.LogInfo(ctx, "Session opened", slog.String("username", username))
	return &domain.Session{
		SessionID: sessionID,
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = domain.AuthState{}
	s.sessionID = ""
	s.mu.Unlock()

	s.LogInfo(ctx, "Session closed")
}

func (s *sessionService) State(_ context.Context) domain.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) IsActive(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated && sessionID != "" && sessionID == s.sessionID
}
