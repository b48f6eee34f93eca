package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/service"
)

// EconomyHandler exposes the rules engine operations to authenticated
// players.  Admin-only routes are gated by the router; self-service
// routes are checked here against the token subject.
type EconomyHandler struct {
	Engine *service.Engine
}

func NewEconomyHandler(eng *service.Engine) *EconomyHandler {
	if eng == nil {
		panic("nil engine passed to NewEconomyHandler")
	}
	return &EconomyHandler{Engine: eng}
}

// self returns the path player id when it matches the caller.
func (h *EconomyHandler) self(c echo.Context) (uint64, error) {
	caller, err := getPlayerID(c)
	if err != nil {
		return 0, c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return 0, badRequest(c, "invalid player id")
	}
	if id != caller {
		return 0, c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return id, nil
}

// GetPlayer handles GET /v1/players/:id.
func (h *EconomyHandler) GetPlayer(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	p, err := h.Engine.GetPlayer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// FindPlayer handles GET /v1/players?username=.
func (h *EconomyHandler) FindPlayer(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("username"))
	if name == "" {
		return badRequest(c, "username required")
	}
	p, err := h.Engine.FindPlayerByUsername(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type roleReq struct {
	Role string `json:"role"`
}

// GrantRole handles POST /v1/players/:id/roles.
func (h *EconomyHandler) GrantRole(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Engine.GrantRole(c.Request().Context(), id, strings.TrimSpace(req.Role)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetPosition handles PUT /v1/players/:id/position for the caller.
func (h *EconomyHandler) SetPosition(c echo.Context) error {
	id, err := h.self(c)
	if id == 0 {
		return err
	}
	var req model.Position
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Engine.SetPosition(c.Request().Context(), id, req.X, req.Y, req.Z); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type xpReq struct {
	Amount int `json:"amount"`
}

// AddXP handles POST /v1/players/:id/xp.
func (h *EconomyHandler) AddXP(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	var req xpReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	ctx := c.Request().Context()
	if err := h.Engine.AddXP(ctx, id, req.Amount); err != nil {
		return writeError(c, err)
	}
	p, err := h.Engine.GetPlayer(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type lockReq struct {
	Locked bool `json:"locked"`
}

// ToggleXPLock handles PUT /v1/players/:id/xp-lock for the caller.
func (h *EconomyHandler) ToggleXPLock(c echo.Context) error {
	id, err := h.self(c)
	if id == 0 {
		return err
	}
	var req lockReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Engine.ToggleXPLock(c.Request().Context(), id, req.Locked); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type badgeReq struct {
	Badge string `json:"badge"`
}

// AwardBadge handles POST /v1/players/:id/badges.  The response reports
// whether the badge was newly added.
func (h *EconomyHandler) AwardBadge(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	var req badgeReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	added, err := h.Engine.AwardBadge(c.Request().Context(), id, req.Badge)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"awarded": added})
}

type creditsReq struct {
	AmountCents int64 `json:"amount_cents"`
}

// DepositCredits handles POST /v1/players/:id/credits.
func (h *EconomyHandler) DepositCredits(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	var req creditsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	ctx := c.Request().Context()
	if err := h.Engine.DepositCredits(ctx, id, model.HBC(req.AmountCents)); err != nil {
		return writeError(c, err)
	}
	p, err := h.Engine.GetPlayer(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// ListStubs handles GET /v1/players/:id/stubs.
func (h *EconomyHandler) ListStubs(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid player id")
	}
	stubs, err := h.Engine.ListStubs(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": stubs, "count": len(stubs)})
}
