package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the caller holds one of the
// specified roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
			}
			for _, required := range roles {
				if ident.Role == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("Forbidden: required role %s", strings.Join(roles, " or ")))
		}
	}
}

// CanAccessOwned reports whether the caller may act on a resource owned by
// ownerID. Access is granted when the caller's role is one of exemptRoles or
// when the caller is the owner.
func CanAccessOwned(ident Identity, ownerID int64, exemptRoles ...string) bool {
	for _, role := range exemptRoles {
		if ident.Role == role {
			return true
		}
	}
	return ident.UserID == ownerID
}
