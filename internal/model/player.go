package model

import "slices"

// Role names understood by the rules engine.  Every player holds
// RolePlayer; RoleHubzzInc is the platform operator role that may
// approve affiliations under hubzz_approval mode.
const (
	RolePlayer   = "Player"
	RoleHubzzInc = "HubzzInc"
)

// Position is a player's location in the world.  It is stored as-is and
// never validated.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Player represents a participant in the economy.  Progression
// counters, credits and badge ownership all hang off this record.
//
// Fields:
//  ID          – identifier assigned by the store.
//  Username    – unique login/display name.
//  Credits     – HBC balance used to buy tickets.
//  SpendableXP – XP that may be spent; frozen while XPLocked is set.
//  LifetimeXP  – cumulative XP; never decreases.
//  XPLocked    – when true, AddXP only grows LifetimeXP.
//  Roles       – role names; always contains RolePlayer.
//  Badges      – names of held badges in award order, no duplicates.
//  Position    – last reported world position.
type Player struct {
	ID          uint64   `json:"id"`
	Username    string   `json:"username"`
	Credits     HBC      `json:"credits_cents"`
	SpendableXP int      `json:"spendable_xp"`
	LifetimeXP  int      `json:"lifetime_xp"`
	XPLocked    bool     `json:"xp_locked"`
	Roles       []string `json:"roles"`
	Badges      []string `json:"badges"`
	Position    Position `json:"position"`
}

// HasRole reports whether the player holds role.
func (p Player) HasRole(role string) bool { return slices.Contains(p.Roles, role) }

// HasBadge reports whether the player holds the badge with the given name.
func (p Player) HasBadge(name string) bool { return slices.Contains(p.Badges, name) }

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (p Player) Clone() Player {
	p.Roles = slices.Clone(p.Roles)
	p.Badges = slices.Clone(p.Badges)
	return p
}
