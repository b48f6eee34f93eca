package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// playerKey returns the authenticated player id as a string, or "anon"
// when the request carries no token.
func playerKey(c echo.Context) string {
	if id, ok := c.Get(KeyPlayerID).(uint64); ok && id != 0 {
		return strconv.FormatUint(id, 10)
	}
	return "anon"
}
