package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that lets the request through only if
// the authenticated player's token carries at least one of roles.  It
// must run after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if HasAnyRole(c, allowed) {
				return next(c)
			}
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}
}

// HasAnyRole reports whether the token roles stored in c intersect allowed.
func HasAnyRole(c echo.Context, allowed map[string]bool) bool {
	held, _ := c.Get(KeyRoles).([]string)
	for _, r := range held {
		if allowed[r] {
			return true
		}
	}
	return false
}
