package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/delivery/http/validator"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	mockUC "dashboard/internal/mocks/usecase"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func adminState() entity.AuthState {
	return entity.AuthState{
		Identity: &entity.Identity{ID: "u1"},
		Profile:  &entity.Profile{ID: "u1", Role: entity.RoleAdmin, AccountType: entity.AccountTypeAdmin},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		signIn := mockUC.NewMockSignInUsecase(t)
		sessions := mockUC.NewMockSessionUsecase(t)
		expires := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		signIn.EXPECT().SignInWithPassword(mock.Anything, "a@example.com", "secret").
			Return(&entity.Session{Identity: entity.Identity{ID: "u1", Email: "a@example.com"}, AccessToken: "tok", ExpiresAt: expires}, nil)

		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"secret"}`)
		require.NoError(t, NewAuthHandler(signIn, sessions).Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"u1"`)
		assert.NotContains(t, rec.Body.String(), "tok")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		signIn := mockUC.NewMockSignInUsecase(t)
		sessions := mockUC.NewMockSessionUsecase(t)
		signIn.EXPECT().SignInWithPassword(mock.Anything, "a@example.com", "wrong").
			Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"wrong"}`)
		require.NoError(t, NewAuthHandler(signIn, sessions).Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("validation failure never reaches the usecase", func(t *testing.T) {
		signIn := mockUC.NewMockSignInUsecase(t)
		sessions := mockUC.NewMockSessionUsecase(t)

		c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"not-an-email","password":""}`)
		require.NoError(t, NewAuthHandler(signIn, sessions).Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})
}

func TestAuthHandler_AdoptSession(t *testing.T) {
	signIn := mockUC.NewMockSignInUsecase(t)
	sessions := mockUC.NewMockSessionUsecase(t)
	signIn.EXPECT().SignInWithToken(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken)

	c, rec := newContext(http.MethodPost, "/auth/session", `{"access_token":"bad"}`)
	require.NoError(t, NewAuthHandler(signIn, sessions).AdoptSession(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Code)
}

func TestAuthHandler_LogoutAndState(t *testing.T) {
	signIn := mockUC.NewMockSignInUsecase(t)
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().SignOut(mock.Anything).Return(nil)
	sessions.EXPECT().Current().Return(entity.AuthState{})
	h := NewAuthHandler(signIn, sessions)

	c, rec := newContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newContext(http.MethodGet, "/auth/state", "")
	require.NoError(t, h.State(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"loading":false`)
	assert.Contains(t, rec.Body.String(), `"identity":null`)
}

func TestNotificationHandler_List(t *testing.T) {
	channel := mockUC.NewMockNotificationUsecase(t)
	sessions := mockUC.NewMockSessionUsecase(t)
	channel.EXPECT().Notifications().Return([]*entity.Notification{
		{ID: "n2", Title: "second"},
		{ID: "n1", Title: "first", IsRead: true},
	})
	channel.EXPECT().UnreadCount().Return(1)

	c, rec := newContext(http.MethodGet, "/notifications", "")
	require.NoError(t, NewNotificationHandler(channel, sessions, nil).List(c))

	var body struct {
		Data NotificationList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.UnreadCount)
	require.Len(t, body.Data.Notifications, 2)
	assert.Equal(t, "n2", body.Data.Notifications[0].ID)
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "success", wantCode: http.StatusOK},
		{name: "unknown notification", err: domainerrors.ErrNotificationNotFound, wantCode: http.StatusNotFound, wantErr: "NOTIFICATION_NOT_FOUND"},
		{name: "store failure", err: domainerrors.ErrMarkReadFailed.WrapMessage("update failed"), wantCode: http.StatusBadGateway, wantErr: "MARK_READ_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel := mockUC.NewMockNotificationUsecase(t)
			sessions := mockUC.NewMockSessionUsecase(t)
			channel.EXPECT().MarkAsRead(mock.Anything, "n1").Return(tt.err)
			if tt.err == nil {
				channel.EXPECT().UnreadCount().Return(0)
			}

			c, rec := newContext(http.MethodPost, "/notifications/n1/read", "")
			c.SetParamNames("id")
			c.SetParamValues("n1")
			require.NoError(t, NewNotificationHandler(channel, sessions, nil).MarkAsRead(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
			} else {
				assert.Contains(t, rec.Body.String(), `"unread_count":0`)
			}
		})
	}
}

func TestNotificationHandler_MarkAllAsRead(t *testing.T) {
	channel := mockUC.NewMockNotificationUsecase(t)
	sessions := mockUC.NewMockSessionUsecase(t)
	channel.EXPECT().MarkAllAsRead(mock.Anything).Return(nil)
	channel.EXPECT().UnreadCount().Return(0)

	c, rec := newContext(http.MethodPost, "/notifications/read-all", "")
	require.NoError(t, NewNotificationHandler(channel, sessions, nil).MarkAllAsRead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler_Sections(t *testing.T) {
	h := NewDashboardHandler(entity.DefaultSections())

	c, rec := newContext(http.MethodGet, "/dashboard/sections", "")
	deliverycontext.SetAuthState(c, entity.AuthState{
		Identity: &entity.Identity{ID: "u1"},
		Profile:  entity.DefaultProfile("u1"),
	})
	require.NoError(t, h.Sections(c))

	var body struct {
		Data []entity.Section `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "staff", body.Data[0].Key)
}

func TestDashboardHandler_Section(t *testing.T) {
	h := NewDashboardHandler(entity.DefaultSections())

	c, rec := newContext(http.MethodGet, "/dashboard/hr", "")
	c.SetParamNames("section")
	c.SetParamValues("hr")
	deliverycontext.SetAuthState(c, adminState())
	require.NoError(t, h.Section(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"hr"`)

	c, rec = newContext(http.MethodGet, "/dashboard/hr", "")
	require.NoError(t, h.Section(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_DispatchNotification(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		dispatcher := mockUC.NewMockNotificationDispatcher(t)
		dispatcher.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(in *usecase.DispatchInput) bool {
			return len(in.RecipientIDs) == 2 && in.Category == entity.NotificationCategoryMemo
		})).Return([]*entity.Notification{{ID: "n1"}, {ID: "n2"}}, nil)

		body := `{"recipient_ids":["u1","u2"],"title":"Hi","message":"Hello","category":"memo"}`
		c, rec := newContext(http.MethodPost, "/admin/notifications", body)
		require.NoError(t, NewAdminHandler(dispatcher).DispatchNotification(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"n2"`)
	})

	t.Run("missing recipients", func(t *testing.T) {
		dispatcher := mockUC.NewMockNotificationDispatcher(t)

		c, rec := newContext(http.MethodPost, "/admin/notifications", `{"title":"Hi","message":"Hello","category":"memo"}`)
		require.NoError(t, NewAdminHandler(dispatcher).DispatchNotification(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		dispatcher := mockUC.NewMockNotificationDispatcher(t)

		c, rec := newContext(http.MethodPost, "/admin/notifications", `{"title":`)
		require.NoError(t, NewAdminHandler(dispatcher).DispatchNotification(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	})
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name  string
		state entity.AuthState
		want  string
	}{
		{name: "loading", state: entity.AuthState{Loading: true}, want: "loading"},
		{name: "signed in", state: adminState(), want: "signed_in"},
		{name: "signed out", state: entity.AuthState{}, want: "signed_out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockUC.NewMockSessionUsecase(t)
			channel := mockUC.NewMockNotificationUsecase(t)
			sessions.EXPECT().Current().Return(tt.state)
			channel.EXPECT().Health().Return(usecase.ChannelHealth{Open: tt.state.SignedIn()})

			c, rec := newContext(http.MethodGet, "/health", "")
			require.NoError(t, NewHealthHandler(sessions, channel).Check(c))

			var body HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.want, body.Session)
		})
	}
}
