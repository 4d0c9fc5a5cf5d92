package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// SubjectKey is the echo context key carrying the authenticated subject
// (the user's email, as encoded in the session token).
const SubjectKey = "subject"

// Auth validates the bearer token and injects the subject into context.
// Expired and malformed tokens get the same generic response so callers
// learn nothing about why validation failed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
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

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(SubjectKey, subject)
			return next(c)
		}
	}
}
