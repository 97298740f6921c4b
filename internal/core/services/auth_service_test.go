package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/adapters/memory"
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock Authenticator ---
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Attempt(username, password string) bool {
	args := m.Called(username, password)
	return args.Bool(0)
}

var _ portssvc.Authenticator = (*MockAuthenticator)(nil)

const testSecret = "test-secret-key-that-is-long-enough"

type SessionServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockAuthor *MockAuthenticator
	service    portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockAuthor = new(MockAuthenticator)
	suite.service = services.NewSessionService(suite.mockAuthor, services.SessionConfig{
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "expense-tracker-test",
	})
}

func (suite *SessionServiceTestSuite) TestStartsUnauthenticated() {
	state := suite.service.State(suite.ctx)
	suite.False(state.IsAuthenticated)
	suite.Empty(state.Username)
	suite.False(suite.service.IsActive(""))
}

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	suite.mockAuthor.On("Attempt", "admin", "admin").Return(true).Once()

	session, err := suite.service.Login(suite.ctx, "  admin ", " admin")

	suite.Require().NoError(err)
	suite.Equal("admin", session.Username)
	suite.NotEmpty(session.SessionID)
	suite.True(suite.service.IsActive(session.SessionID))
	suite.True(suite.service.State(suite.ctx).IsAuthenticated)
	suite.Equal("admin", suite.service.State(suite.ctx).Username)

	claims, err := utils.ParseAndValidateJWT(session.Token, testSecret)
	suite.Require().NoError(err)
	suite.Equal(session.SessionID, claims.ID)
	suite.Equal("admin", claims.Subject)
	suite.mockAuthor.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_MissingFields() {
	_, err := suite.service.Login(suite.ctx, "   ", "admin")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.False(suite.service.State(suite.ctx).IsAuthenticated)
	suite.mockAuthor.AssertNotCalled(suite.T(), "Attempt", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestLogin_WrongCredentials() {
	suite.mockAuthor.On("Attempt", "admin", "nope").Return(false).Once()

	session, err := suite.service.Login(suite.ctx, "admin", "nope")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.False(suite.service.State(suite.ctx).IsAuthenticated)
}

func (suite *SessionServiceTestSuite) TestLogout_RevokesSession() {
	suite.mockAuthor.On("Attempt", "admin", "admin").Return(true).Once()
	session, err := suite.service.Login(suite.ctx, "admin", "admin")
	suite.Require().NoError(err)

	suite.service.Logout(suite.ctx)

	suite.False(suite.service.IsActive(session.SessionID))
	suite.False(suite.service.State(suite.ctx).IsAuthenticated)
	suite.Empty(suite.service.State(suite.ctx).Username)
}

func (suite *SessionServiceTestSuite) TestLogin_ReplacesPreviousSession() {
	suite.mockAuthor.On("Attempt", "admin", "admin").Return(true).Twice()
	first, err := suite.service.Login(suite.ctx, "admin", "admin")
	suite.Require().NoError(err)
	second, err := suite.service.Login(suite.ctx, "admin", "admin")
	suite.Require().NoError(err)

	suite.False(suite.service.IsActive(first.SessionID))
	suite.True(suite.service.IsActive(second.SessionID))
}

func (suite *SessionServiceTestSuite) TestFailedLoginKeepsExistingSession() {
	suite.mockAuthor.On("Attempt", "admin", "admin").Return(true).Once()
	suite.mockAuthor.On("Attempt", "admin", "bad").Return(false).Once()
	session, err := suite.service.Login(suite.ctx, "admin", "admin")
	suite.Require().NoError(err)

	_, err = suite.service.Login(suite.ctx, "admin", "bad")
	suite.Error(err)

	suite.True(suite.service.IsActive(session.SessionID))
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func TestStaticAuthenticator(t *testing.T) {
	hash, err := utils.HashPassword("admin")
	require.NoError(t, err)
	auth := services.NewStaticAuthenticator("admin", hash)

	assert.True(t, auth.Attempt("admin", "admin"))
	assert.False(t, auth.Attempt("Admin", "admin"))
	assert.False(t, auth.Attempt("admin", "admin2"))
	assert.False(t, auth.Attempt("", ""))
}

func TestNewServiceContainer(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		AuthUsername:      "owner",
		AuthPassword:      "s3cret",
	}

	container, err := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	require.NoError(t, err)

	_, err = container.Session.Login(context.Background(), "owner", "s3cret")
	assert.NoError(t, err)
	assert.Empty(t, container.Transaction.ListTransactions(context.Background()))

	cfg.AuthPasswordHash = "plain-text"
	_, err = services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	assert.Error(t, err)
}
