package middleware

import (
	"net/http"
	"strconv"
	"time"

	"dashboard/config"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultRetryAfter = time.Second

// GuardDecision is what a route guard does with a request.
type GuardDecision int

const (
	// GuardAllow lets the request through.
	GuardAllow GuardDecision = iota
	// GuardWait asks the client to retry; the session is still resolving.
	GuardWait
	// GuardRedirect sends the client to the login path.
	GuardRedirect
)

// Decide maps an auth state onto a guard decision. A nil allow-list only
// requires a signed-in state. No decision other than Wait is made while loading.
func Decide(state entity.AuthState, allowed entity.Roles) GuardDecision {
	switch {
	case state.Loading:
		return GuardWait
	case !state.SignedIn():
		return GuardRedirect
	case allowed != nil && !state.Profile.HasAnyRole(allowed):
		return GuardRedirect
	default:
		return GuardAllow
	}
}

// RouteGuard admits requests based on the session resolver's current state.
type RouteGuard struct {
	sessions   usecase.SessionUsecase
	loginPath  string
	retryAfter time.Duration
}

// NewRouteGuard is the constructor for RouteGuard.
func NewRouteGuard(sessions usecase.SessionUsecase, cfg *config.Config) *RouteGuard {
	return &RouteGuard{
		sessions:   sessions,
		loginPath:  cfg.HTTP.LoginPath,
		retryAfter: defaultRetryAfter,
	}
}

// RequireSignedIn admits any resolved, signed-in state.
func (g *RouteGuard) RequireSignedIn() echo.MiddlewareFunc {
	return g.guard(func(echo.Context) (entity.Roles, bool) { return nil, true })
}

// Require admits signed-in states whose role or account type is in roles.
func (g *RouteGuard) Require(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return g.guard(func(echo.Context) (entity.Roles, bool) { return allowed, true })
}

// RequireSection reads the section key from the named path param and applies
// that section's allow-list. Unknown sections are 404.
func (g *RouteGuard) RequireSection(sections []entity.Section, param string) echo.MiddlewareFunc {
	return g.guard(func(c echo.Context) (entity.Roles, bool) {
		section, ok := entity.FindSection(sections, c.Param(param))
		if !ok {
			return nil, false
		}

		return section.Allowed, true
	})
}

func (g *RouteGuard) guard(allowList func(echo.Context) (entity.Roles, bool)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, ok := allowList(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrNotFound)
			}

			state := g.sessions.Current()

			switch Decide(state, allowed) {
			case GuardWait:
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(g.retryAfter.Seconds())))

				return response.HandleAppError(c, domainerrors.ErrSessionLoading)
			case GuardRedirect:
				return c.Redirect(http.StatusFound, g.loginPath)
			default:
				deliverycontext.SetAuthState(c, state)

				return next(c)
			}
		}
	}
}
