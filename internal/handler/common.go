// Package handler exposes the rules engine over HTTP.  Handlers decode
// requests, call a single engine operation and map its sentinel errors
// to status codes; no rule is evaluated here.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/middleware"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// getPlayerID extracts the authenticated player id set by JWTAuth.
func getPlayerID(c echo.Context) (uint64, error) {
	if id, ok := c.Get(middleware.KeyPlayerID).(uint64); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("invalid player_id in context")
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrCapacityExceeded),
		errors.Is(err, repository.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, repository.ErrInvalidAmount),
		errors.Is(err, repository.ErrInvalidArgument),
		errors.Is(err, repository.ErrInvalidSetting):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": ...}.  Internal errors are not
// echoed to the client.
func writeError(c echo.Context, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("handler: %v", err)
		msg = "internal error"
	}
	return c.JSON(status, echo.Map{"error": msg})
}
