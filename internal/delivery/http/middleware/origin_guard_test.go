package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginGuard_Allowed(t *testing.T) {
	guard := NewOriginGuard([]string{"http://localhost:3000/", " HTTP://UI.Internal "})

	tests := []struct {
		name   string
		origin string
		host   string
		want   bool
	}{
		{name: "no origin header", origin: "", host: "127.0.0.1:8787", want: true},
		{name: "same origin", origin: "http://127.0.0.1:8787", host: "127.0.0.1:8787", want: true},
		{name: "configured origin", origin: "http://localhost:3000", host: "127.0.0.1:8787", want: true},
		{name: "configured origin is case insensitive", origin: "http://ui.internal", host: "127.0.0.1:8787", want: true},
		{name: "foreign origin", origin: "https://evil.example", host: "127.0.0.1:8787", want: false},
		{name: "same host on another port", origin: "http://127.0.0.1:9999", host: "127.0.0.1:8787", want: false},
		{name: "opaque origin", origin: "null", host: "127.0.0.1:8787", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Allowed(tt.origin, tt.host))
		})
	}
}

func TestOriginGuard_Handle(t *testing.T) {
	guard := NewOriginGuard(nil)
	e := echo.New()

	t.Run("foreign origin is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/notifications", nil)
		req.Host = "127.0.0.1:8787"
		req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		rec := httptest.NewRecorder()

		called := false
		err := guard.Handle(func(c echo.Context) error {
			called = true

			return c.NoContent(http.StatusCreated)
		})(e.NewContext(req, rec))
		require.NoError(t, err)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})

	t.Run("request without origin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/notifications", nil)
		rec := httptest.NewRecorder()

		err := guard.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusCreated)
		})(e.NewContext(req, rec))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
