package handler

import (
	"net/http"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the server-side notification dispatcher.
type AdminHandler struct {
	dispatcher usecase.NotificationDispatcher
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(dispatcher usecase.NotificationDispatcher) *AdminHandler {
	return &AdminHandler{dispatcher: dispatcher}
}

// DispatchNotification handles POST /admin/notifications.
func (h *AdminHandler) DispatchNotification(c echo.Context) error {
	var input usecase.DispatchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	created, err := h.dispatcher.Dispatch(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}
