package middleware

import (
	"net/url"
	"strings"

	"dashboard/internal/delivery/http/response"
	domainerrors "dashboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OriginGuard rejects browser requests from any origin other than the agent
// itself or a configured UI origin. The local API authorizes every route by
// the process-wide session, so a page from another site must never reach it.
// Requests without an Origin header (CLI tools, same-origin navigation) pass.
type OriginGuard struct {
	allowed map[string]struct{}
}

// NewOriginGuard is the constructor for OriginGuard.
func NewOriginGuard(allowedOrigins []string) *OriginGuard {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if o := normalizeOrigin(origin); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return &OriginGuard{allowed: allowed}
}

// Allowed reports whether origin may call an API served on host.
func (g *OriginGuard) Allowed(origin, host string) bool {
	if origin == "" {
		return true
	}
	if _, ok := g.allowed[normalizeOrigin(origin)]; ok {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	return strings.EqualFold(u.Host, host)
}

// Handle is the echo middleware.
func (g *OriginGuard) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if !g.Allowed(req.Header.Get(echo.HeaderOrigin), req.Host) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}
