package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newOriginTestServer(allowedOrigins []string) *echo.Echo {
	e := echo.New()
	e.Use(originMiddlewares(allowedOrigins)...)
	e.GET("/auth/state", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"identity": "u1"})
	})
	e.POST("/admin/notifications", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	return e
}

func TestOriginMiddlewares(t *testing.T) {
	const uiOrigin = "http://localhost:3000"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		path       string
		origin     string
		wantStatus int
		wantACAO   string
	}{
		{
			name:       "foreign preflight for dispatch is rejected",
			allowed:    []string{uiOrigin},
			method:     http.MethodOptions,
			path:       "/admin/notifications",
			origin:     "https://evil.example",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "foreign read of auth state is rejected",
			method:     http.MethodGet,
			path:       "/auth/state",
			origin:     "https://evil.example",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "configured UI preflight is answered for that origin only",
			allowed:    []string{uiOrigin},
			method:     http.MethodOptions,
			path:       "/admin/notifications",
			origin:     uiOrigin,
			wantStatus: http.StatusNoContent,
			wantACAO:   uiOrigin,
		},
		{
			name:       "non-browser client is unaffected",
			method:     http.MethodGet,
			path:       "/auth/state",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newOriginTestServer(tt.allowed)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Host = "127.0.0.1:8787"
			if tt.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantACAO, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.NotEqual(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}
