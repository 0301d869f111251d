package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// present (presence proves the middleware ran) and the role must parse into
// the closed Role set.
func ctxActor(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	rawRole, _ := c.Get("role").(string)
	if userID == "" || rawRole == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	return domain.Actor{ID: userID, Role: role}, nil
}
