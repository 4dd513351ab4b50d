package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	streamBuffer       = 32
	streamKeepalive    = 15 * time.Second
	streamListenerBase = "sse:"
)

// NotificationHandler exposes the realtime notification channel over HTTP.
type NotificationHandler struct {
	channel   usecase.NotificationUsecase
	sessions  usecase.SessionUsecase
	logger    *slog.Logger
	keepalive time.Duration
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(channel usecase.NotificationUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		channel:   channel,
		sessions:  sessions,
		logger:    logger,
		keepalive: streamKeepalive,
	}
}

// NotificationList is the GET /notifications payload.
type NotificationList struct {
	Notifications []*entity.Notification `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, NotificationList{
		Notifications: h.channel.Notifications(),
		UnreadCount:   h.channel.UnreadCount(),
	})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]int{"unread_count": h.channel.UnreadCount()})
}

// MarkAsRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	if err := h.channel.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread_count": h.channel.UnreadCount()})
}

// MarkAllAsRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.channel.MarkAllAsRead(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread_count": h.channel.UnreadCount()})
}

// Health handles GET /notifications/health.
func (h *NotificationHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.channel.Health())
}

type streamEvent struct {
	kind         service.PushEventKind
	notification *entity.Notification
}

// Stream handles GET /notifications/stream as server-sent events. The stream
// ends when the client goes away or the admitted identity is no longer the
// signed-in one. Events are dropped when the client cannot keep up.
func (h *NotificationHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	admitted, _ := deliverycontext.GetAuthState(c)
	if admitted.Identity == nil {
		admitted = h.sessions.Current()
	}

	events := make(chan streamEvent, streamBuffer)
	handle := h.channel.OnEvent(streamListenerBase+uuid.NewString(), func(kind service.PushEventKind, n *entity.Notification) {
		select {
		case events <- streamEvent{kind: kind, notification: n}:
		default:
			log.Warn("notification stream buffer full, dropping event",
				slog.String("kind", string(kind)),
			)
		}
	})
	defer handle.Dispose()

	states := h.sessions.Watch(ctx)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeSSE(res, "unread", map[string]int{"unread_count": h.channel.UnreadCount()}); err != nil {
		return nil
	}

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-states:
			if !ok || !sameIdentity(admitted, state) {
				_ = writeSSE(res, "signed_out", struct{}{})

				return nil
			}
		case ev := <-events:
			if err := writeSSE(res, string(ev.kind), ev.notification); err != nil {
				log.Debug("notification stream write failed", slog.Any("error", err))

				return nil
			}
			if err := writeSSE(res, "unread", map[string]int{"unread_count": h.channel.UnreadCount()}); err != nil {
				return nil
			}
		case <-keepalive.C:
			if _, err := fmt.Fprint(res, ": keepalive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// sameIdentity treats a loading state as unchanged so a token refresh does not end the stream.
func sameIdentity(admitted, state entity.AuthState) bool {
	if state.Loading {
		return true
	}

	return state.Identity != nil && admitted.Identity != nil && state.Identity.ID == admitted.Identity.ID
}

func writeSSE(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
