package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	passwordHash := cfg.AuthPasswordHash
	if passwordHash != "" && !utils.IsBcryptHash(passwordHash) {
		return nil, fmt.Errorf("AUTH_PASSWORD_HASH is not a bcrypt hash")
	}
	if passwordHash == "" {
		hash, err := utils.HashPassword(cfg.AuthPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash configured password: %w", err)
		}
		passwordHash = hash
	}

	authenticator := NewStaticAuthenticator(cfg.AuthUsername, passwordHash)

	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Session: NewSessionService(authenticator, SessionConfig{
			JWTSecret:         cfg.JWTSecret,
			JWTExpiryDuration: cfg.JWTExpiryDuration,
			JWTIssuer:         cfg.JWTIssuer,
		}),
	}, nil
}
