package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-dashboard/internal/middleware"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
	"github.com/noah-isme/sma-adp-dashboard/pkg/response"
	"github.com/noah-isme/sma-adp-dashboard/pkg/session"
)

type authService interface {
	Login(ctx context.Context, store session.Store, req models.LoginRequest) (*models.AuthUser, error)
	Logout(ctx context.Context, store session.Store) error
	CurrentSession(ctx context.Context, store session.Store) (*models.AuthUser, error)
}

// AuthHandler exposes the login gate.
type AuthHandler struct {
	auth          authService
	sessions      session.Provider
	loginPath     string
	dashboardPath string
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth authService, sessions session.Provider, loginPath, dashboardPath string) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, loginPath: loginPath, dashboardPath: dashboardPath}
}

// Login godoc
// @Summary Sign in to the dashboard
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), h.sessions.For(c), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrInvalidCredentials.Code {
			response.Failure(c, err, models.Destructive("Invalid credentials", "Please check your email and password and try again."))
			return
		}
		response.Error(c, err)
		return
	}

	response.Notify(c, http.StatusOK, models.LoginResponse{User: *user, Redirect: h.dashboardPath},
		models.Success("Welcome back!", "You have successfully signed in."))
}

// Logout godoc
// @Summary Sign out of the dashboard
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), h.sessions.For(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"redirect": h.loginPath})
}

// Session godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	if user := middleware.CurrentUser(c); user != nil {
		response.JSON(c, http.StatusOK, user)
		return
	}
	user, err := h.auth.CurrentSession(c.Request.Context(), h.sessions.For(c))
	if err != nil {
		response.Error(c, err, map[string]interface{}{"redirect": h.loginPath})
		return
	}
	response.JSON(c, http.StatusOK, user)
}
