package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingCredentials = "Please enter both username and password."
	msgBadCredentials     = "Incorrect username or password."
)

// authHandler handles authentication related requests.
type authHandler struct {
	sessions portssvc.SessionSvcFacade
}

func newAuthHandler(sessions portssvc.SessionSvcFacade) *authHandler {
	return &authHandler{sessions: sessions}
}

// registerSessionRoutes registers the auth routes that need an active session.
func registerSessionRoutes(rg *gin.RouterGroup, sessions portssvc.SessionSvcFacade) {
	h := newAuthHandler(sessions)
	rg.POST("/auth/logout", h.logout)
}

// login godoc
// @Summary Log in
// @Description Checks the credential pair and opens the session. Any previous session token stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingCredentials})
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			logger.Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgBadCredentials})
		default:
			logger.Error("Failed to open session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// logout godoc
// @Summary Log out
// @Description Closes the session. The token used for this call is rejected afterwards.
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// session godoc
// @Summary Current auth state
// @Description Reports whether a session is open and for whom.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /auth/session [get]
func (h *authHandler) session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionResponse(h.sessions.State(c.Request.Context())))
}
