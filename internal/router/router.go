// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/handler"
	"github.com/iliyamo/hubzz-economy/internal/middleware"
	"github.com/iliyamo/hubzz-economy/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers player registration, token issuance and /v1/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	e.POST("/v1/players", a.Register, limit)
	e.POST("/v1/auth/token", a.Token, limit)
	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterEconomy registers the authenticated economy API.  Every route
// needs a valid token; player administration, quest authoring and
// settings additionally need the HubzzInc role.
func RegisterEconomy(e *echo.Echo, h *handler.EconomyHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret), limit)

	g.GET("/players", h.FindPlayer)
	g.GET("/players/:id", h.GetPlayer)
	g.PUT("/players/:id/position", h.SetPosition)
	g.PUT("/players/:id/xp-lock", h.ToggleXPLock)
	g.GET("/players/:id/stubs", h.ListStubs)

	g.POST("/zones", h.CreateZone)
	g.GET("/zones/:id", h.GetZone)
	g.POST("/zones/:id/affiliations", h.OnboardGroup)
	g.GET("/affiliations", h.ListAffiliations)

	g.POST("/groups", h.CreateGroup)
	g.GET("/groups/:id", h.GetGroup)

	g.POST("/events", h.CreateEvent)
	g.POST("/events/:id/tickets", h.BuyTicket)

	g.POST("/quests/:id/complete", h.CompleteQuest)
	g.GET("/settings/affiliation", h.GetAffiliationSettings)

	admin := g.Group("", middleware.RequireRole(model.RoleHubzzInc))
	admin.POST("/players/:id/roles", h.GrantRole)
	admin.POST("/players/:id/xp", h.AddXP)
	admin.POST("/players/:id/badges", h.AwardBadge)
	admin.POST("/players/:id/credits", h.DepositCredits)
	admin.POST("/quests", h.AddQuest)
	admin.PUT("/settings/affiliation", h.UpdateAffiliationSettings)
}

// RegisterPublic registers unauthenticated catalog routes behind the
// response cache.
func RegisterPublic(e *echo.Echo, h *handler.EconomyHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/badges", h.ListBadges, cache)
}
