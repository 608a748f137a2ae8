package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/token"
)

// ContextKeyUsername is the echo context key the verified identity is stored
// under.
const ContextKeyUsername = "username"

// Auth gates a route behind bearer-token verification. Every failure mode
// (missing header, malformed header, malformed token, bad signature, expiry)
// answers the same 401; the distinction is logged, never leaked.
func Auth(verifier *token.Issuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			username, err := verifier.Verify(parts[1])
			if err != nil {
				log.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUsername, username)
			return next(c)
		}
	}
}
