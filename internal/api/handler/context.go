package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumebuilderpro/resume-api/internal/api/middleware"
	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// ctxSubject extracts the authenticated subject injected by the Auth
// middleware. A missing subject means the middleware did not run on this
// route; fail fast with 401 before any service call.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}

// currentUser resolves the token subject to its account. A token whose
// account no longer resolves is treated like any other bad token.
func currentUser(c echo.Context, auth ports.AuthService) (*domain.User, error) {
	subject, err := ctxSubject(c)
	if err != nil {
		return nil, err
	}
	user, err := auth.Profile(c.Request().Context(), subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		return nil, err
	}
	return user, nil
}
