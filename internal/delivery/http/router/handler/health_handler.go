package handler

import (
	"net/http"

	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness plus the session and channel status.
type HealthHandler struct {
	sessions usecase.SessionUsecase
	channel  usecase.NotificationUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(sessions usecase.SessionUsecase, channel usecase.NotificationUsecase) *HealthHandler {
	return &HealthHandler{sessions: sessions, channel: channel}
}

// HealthStatus is the GET /health payload.
type HealthStatus struct {
	Status  string                `json:"status"`
	Session string                `json:"session"`
	Channel usecase.ChannelHealth `json:"channel"`
}

// Check handles GET /health. It always answers 200 while the process is up.
func (h *HealthHandler) Check(c echo.Context) error {
	state := h.sessions.Current()

	session := "signed_out"
	switch {
	case state.Loading:
		session = "loading"
	case state.SignedIn():
		session = "signed_in"
	}

	return c.JSON(http.StatusOK, HealthStatus{
		Status:  "ok",
		Session: session,
		Channel: h.channel.Health(),
	})
}
