package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/happythoughts/thoughts-api/internal/api/metrics"
	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// userContextKey is where the resolved user is stored on the Echo context.
const userContextKey = "auth.user"

// TokenResolver is the interface the auth gate uses to resolve a raw bearer
// token to a user.
type TokenResolver interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the Authorization header to a user and injects it into the
// request context. The header carries the raw access token itself, not a
// signed scheme; a conventional "Bearer " prefix is tolerated and stripped.
//
// Missing header and unknown token both surface as 401. A credential-store
// failure is a 500: the caller did nothing wrong.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimSpace(c.Request().Header.Get("Authorization"))
			if after, ok := strings.CutPrefix(token, "Bearer "); ok {
				token = strings.TrimSpace(after)
			}
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			user, err := resolver.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
				}
				metrics.AuthFailuresTotal.WithLabelValues("store_error").Inc()
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFrom extracts the user attached by Auth. The second return is false
// when the middleware did not run on this route.
func UserFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}
