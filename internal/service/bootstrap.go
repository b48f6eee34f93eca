package service

import (
	"context"
	"errors"

	"github.com/iliyamo/hubzz-economy/internal/config"
	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// Seed is the initial state loaded by Bootstrap.
type Seed struct {
	AdminUsername   string
	AffiliationMode model.AffiliationMode
	AffiliationCaps model.AffiliationCaps
	Badges          []model.Badge
	Quests          []model.Quest
}

// DefaultSeed returns the launch configuration of the embedded catalog:
// a HubzzInc admin, hubzz_approval mode, caps of 4/3/2 for
// central/mid/outer and the master badges.
func DefaultSeed() Seed { return SeedFromCatalog(launchCatalog()) }

// SeedFromCatalog extracts the bootstrap state from c.
func SeedFromCatalog(c config.Catalog) Seed {
	return Seed{
		AdminUsername:   c.AdminUsername,
		AffiliationMode: model.AffiliationMode(c.AffiliationMode),
		AffiliationCaps: c.Caps(),
		Badges:          c.Badges,
		Quests:          c.Quests,
	}
}

// Bootstrap loads seed into the store and returns the admin player.  It
// is idempotent: an existing admin is reused and catalog entries are
// replaced.
func (e *Engine) Bootstrap(ctx context.Context, seed Seed) (model.Player, error) {
	if err := e.SetAffiliationMode(ctx, seed.AffiliationMode); err != nil {
		return model.Player{}, err
	}
	if err := e.SetAffiliationCaps(ctx, seed.AffiliationCaps); err != nil {
		return model.Player{}, err
	}
	for _, b := range seed.Badges {
		if err := e.AddBadge(ctx, b); err != nil {
			return model.Player{}, err
		}
	}
	for _, q := range seed.Quests {
		if err := e.AddQuest(ctx, q); err != nil {
			return model.Player{}, err
		}
	}

	admin, err := e.FindPlayerByUsername(ctx, seed.AdminUsername)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		admin, err = e.CreatePlayer(ctx, seed.AdminUsername)
	}
	if err != nil {
		return model.Player{}, err
	}
	if err := e.GrantRole(ctx, admin.ID, model.RoleHubzzInc); err != nil {
		return model.Player{}, err
	}
	return e.GetPlayer(ctx, admin.ID)
}
