package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// ListBadges handles GET /v1/badges.  It is public and served through
// the response cache.
func (h *EconomyHandler) ListBadges(c echo.Context) error {
	badges, err := h.Engine.ListBadges(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": badges, "count": len(badges)})
}

// AddQuest handles POST /v1/quests.
func (h *EconomyHandler) AddQuest(c echo.Context) error {
	var q model.Quest
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Engine.AddQuest(c.Request().Context(), q); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, q)
}

// CompleteQuest handles POST /v1/quests/:id/complete for the caller.
func (h *EconomyHandler) CompleteQuest(c echo.Context) error {
	caller, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	if err := h.Engine.CompleteQuest(ctx, caller, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	p, err := h.Engine.GetPlayer(ctx, caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type affiliationSettingsReq struct {
	Mode *string        `json:"mode"`
	Caps map[string]int `json:"caps"`
}

type affiliationSettingsResp struct {
	Mode model.AffiliationMode `json:"mode"`
	Caps model.AffiliationCaps `json:"caps"`
}

// UpdateAffiliationSettings handles PUT /v1/settings/affiliation.  Mode
// and caps are optional; the current values are returned.
func (h *EconomyHandler) UpdateAffiliationSettings(c echo.Context) error {
	var req affiliationSettingsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	ctx := c.Request().Context()
	if req.Mode != nil {
		if err := h.Engine.SetAffiliationMode(ctx, model.AffiliationMode(*req.Mode)); err != nil {
			return writeError(c, err)
		}
	}
	if req.Caps != nil {
		caps := make(model.AffiliationCaps, len(req.Caps))
		for d, n := range req.Caps {
			caps[model.District(d)] = n
		}
		if err := h.Engine.SetAffiliationCaps(ctx, caps); err != nil {
			return writeError(c, err)
		}
	}
	mode, caps, err := h.Engine.AffiliationSettings(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, affiliationSettingsResp{Mode: mode, Caps: caps})
}

// GetAffiliationSettings handles GET /v1/settings/affiliation.
func (h *EconomyHandler) GetAffiliationSettings(c echo.Context) error {
	mode, caps, err := h.Engine.AffiliationSettings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, affiliationSettingsResp{Mode: mode, Caps: caps})
}
