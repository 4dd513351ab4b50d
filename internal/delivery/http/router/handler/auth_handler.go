// Package handler contains the HTTP handlers of the dashboard API.
package handler

import (
	"net/http"
	"time"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes sign-in, sign-out and the resolver's auth state.
type AuthHandler struct {
	signIn   usecase.SignInUsecase
	sessions usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(signIn usecase.SignInUsecase, sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{
		signIn:   signIn,
		sessions: sessions,
	}
}

// LoginRequest is the password sign-in body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest carries an access token issued by the hosted platform.
type TokenRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// SessionResponse describes the stored session. The profile is resolved before
// the handler returns; GET /auth/state carries it.
type SessionResponse struct {
	Identity  entity.Identity `json:"identity"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.signIn.SignInWithPassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session))
}

// AdoptSession handles POST /auth/session.
func (h *AuthHandler) AdoptSession(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.signIn.SignInWithToken(c.Request().Context(), req.AccessToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session))
}

// Logout handles POST /auth/logout. Signing out twice is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.SignOut(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// State handles GET /auth/state.
func (h *AuthHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessions.Current())
}

func toSessionResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		Identity:  session.Identity,
		ExpiresAt: session.ExpiresAt,
	}
}
