package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hubzz-economy/internal/config"
	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/service"
	"github.com/iliyamo/hubzz-economy/internal/utils"
)

// AuthHandler issues access tokens for players.  Players carry no
// credential of their own; the token only binds requests to a player id
// so the onboarding actor and self-service routes are known.
type AuthHandler struct {
	Cfg    config.Config
	Engine *service.Engine
}

func NewAuthHandler(cfg config.Config, eng *service.Engine) *AuthHandler {
	if eng == nil {
		panic("nil engine passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Engine: eng}
}

type usernameReq struct {
	Username string `json:"username"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	Player model.Player `json:"player"`
	Access tokenPart    `json:"access"`
}

// Register creates a player and returns an access token for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usernameReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	p, err := h.Engine.CreatePlayer(c.Request().Context(), req.Username)
	if err != nil {
		return writeError(c, err)
	}
	return h.issue(c, http.StatusCreated, p)
}

// Token issues an access token for an existing username.  It is a
// development login and is refused when APP_ENV is prod.
func (h *AuthHandler) Token(c echo.Context) error {
	if strings.EqualFold(h.Cfg.Env, "prod") {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req usernameReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	p, err := h.Engine.FindPlayerByUsername(c.Request().Context(), strings.TrimSpace(req.Username))
	if err != nil {
		return writeError(c, err)
	}
	return h.issue(c, http.StatusOK, p)
}

// Me returns the authenticated player.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := getPlayerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Engine.GetPlayer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AuthHandler) issue(c echo.Context, status int, p model.Player) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, p.ID, p.Roles, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(status, authResp{
		Player: p,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
