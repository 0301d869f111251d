package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blogging-platform/internal/core/domain"
)

// RequireRole enforces role-based access control on a route group. Roles are
// matched against the closed domain.Role set, so a token carrying anything
// outside it can never pass.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("role").(string)
			role, err := domain.ParseRole(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
