package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

type createZoneReq struct {
	District string `json:"district"`
}

// CreateZone handles POST /v1/zones; the caller becomes the owner.
func (h *EconomyHandler) CreateZone(c echo.Context) error {
	caller, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createZoneReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	district := model.District(strings.ToLower(strings.TrimSpace(req.District)))
	z, err := h.Engine.CreateZone(c.Request().Context(), caller, district)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, z)
}

// GetZone handles GET /v1/zones/:id.
func (h *EconomyHandler) GetZone(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid zone id")
	}
	z, err := h.Engine.GetZone(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, z)
}

type onboardReq struct {
	GroupID uint64 `json:"group_id"`
}

// OnboardGroup handles POST /v1/zones/:id/affiliations.  The caller is
// the approving actor.
func (h *EconomyHandler) OnboardGroup(c echo.Context) error {
	caller, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	zoneID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid zone id")
	}
	var req onboardReq
	if err := c.Bind(&req); err != nil || req.GroupID == 0 {
		return badRequest(c, "group_id required")
	}
	a, err := h.Engine.OnboardGroup(c.Request().Context(), zoneID, req.GroupID, caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

type createGroupReq struct {
	Name string `json:"name"`
}

// CreateGroup handles POST /v1/groups; the caller becomes the owner.
func (h *EconomyHandler) CreateGroup(c echo.Context) error {
	caller, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createGroupReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	g, err := h.Engine.CreateGroup(c.Request().Context(), strings.TrimSpace(req.Name), caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// GetGroup handles GET /v1/groups/:id.
func (h *EconomyHandler) GetGroup(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid group id")
	}
	g, err := h.Engine.GetGroup(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

type createEventReq struct {
	ZoneID           uint64  `json:"zone_id"`
	GroupID          uint64  `json:"group_id"`
	TicketPriceCents int64   `json:"ticket_price_cents"`
	ZoneOwnerSplit   float64 `json:"zone_owner_split"`
}

// CreateEvent handles POST /v1/events.
func (h *EconomyHandler) CreateEvent(c echo.Context) error {
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	ev, err := h.Engine.CreateEvent(c.Request().Context(), req.ZoneID, req.GroupID,
		model.HBC(req.TicketPriceCents), req.ZoneOwnerSplit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, ev)
}

// BuyTicket handles POST /v1/events/:id/tickets for the caller.
func (h *EconomyHandler) BuyTicket(c echo.Context) error {
	caller, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid event id")
	}
	stub, err := h.Engine.BuyEventTicket(c.Request().Context(), caller, eventID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, stub)
}

// ListAffiliations handles GET /v1/affiliations.
func (h *EconomyHandler) ListAffiliations(c echo.Context) error {
	list, err := h.Engine.ListAffiliations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list, "count": len(list)})
}
