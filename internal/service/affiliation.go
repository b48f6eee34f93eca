package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// CreateZone creates a zone owned by ownerID in district.
func (e *Engine) CreateZone(ctx context.Context, ownerID uint64, district model.District) (model.Zone, error) {
	var out model.Zone
	err := e.update(ctx, func(t *txn) error {
		z, err := t.CreateZone(ownerID, district)
		if err != nil {
			return err
		}
		out = z.Clone()
		return nil
	})
	return out, err
}

// GetZone returns the zone with id.
func (e *Engine) GetZone(ctx context.Context, id uint64) (model.Zone, error) {
	var out model.Zone
	err := e.view(ctx, func(tx *repository.Tx) error {
		z, err := tx.Zone(id)
		if err != nil {
			return err
		}
		out = z.Clone()
		return nil
	})
	return out, err
}

// CreateGroup creates a group owned by ownerID.
func (e *Engine) CreateGroup(ctx context.Context, name string, ownerID uint64) (model.Group, error) {
	var out model.Group
	err := e.update(ctx, func(t *txn) error {
		g, err := t.CreateGroup(name, ownerID)
		if err != nil {
			return err
		}
		out = *g
		return nil
	})
	return out, err
}

// GetGroup returns the group with id.
func (e *Engine) GetGroup(ctx context.Context, id uint64) (model.Group, error) {
	var out model.Group
	err := e.view(ctx, func(tx *repository.Tx) error {
		g, err := tx.Group(id)
		if err != nil {
			return err
		}
		out = *g
		return nil
	})
	return out, err
}

// OnboardGroup links groupID to zoneID on behalf of actorID.  Under
// hubzz_approval the actor must hold the HubzzInc role.  Under
// zone_owner_approval the actor must own the zone and the zone must hold
// fewer affiliations than its district cap.  Nothing is written unless
// every check passes.
func (e *Engine) OnboardGroup(ctx context.Context, zoneID, groupID, actorID uint64) (model.GroupAffiliation, error) {
	var out model.GroupAffiliation
	err := e.update(ctx, func(t *txn) error {
		zone, err := t.Zone(zoneID)
		if err != nil {
			return err
		}
		group, err := t.Group(groupID)
		if err != nil {
			return err
		}
		actor, err := t.Player(actorID)
		if err != nil {
			return err
		}
		mode, err := t.AffiliationMode()
		if err != nil {
			return err
		}
		switch mode {
		case model.HubzzApproval:
			if !actor.HasRole(model.RoleHubzzInc) {
				return fmt.Errorf("requires %s role: %w", model.RoleHubzzInc, repository.ErrPermissionDenied)
			}
		case model.ZoneOwnerApproval:
			if zone.OwnerID != actor.ID {
				return fmt.Errorf("requires zone owner: %w", repository.ErrPermissionDenied)
			}
			caps, err := t.AffiliationCaps()
			if err != nil {
				return err
			}
			if limit := caps.Cap(zone.District); len(zone.Affiliations) >= limit {
				return fmt.Errorf("zone %d holds %d of %d: %w", zone.ID, len(zone.Affiliations), limit, repository.ErrCapacityExceeded)
			}
		}
		out = model.GroupAffiliation{GroupID: group.ID, ZoneID: zone.ID}
		if err := t.AppendAffiliation(zone, out); err != nil {
			return err
		}
		t.emit(queue.EconomyEvent{
			Type: queue.TypeGroupOnboarded,
			Affiliation: &queue.GroupOnboardedEvent{
				ZoneID: zone.ID, GroupID: group.ID, ActorID: actor.ID, Mode: string(mode),
			},
		})
		return nil
	})
	return out, err
}

// ListAffiliations returns every affiliation in creation order.
func (e *Engine) ListAffiliations(ctx context.Context) ([]model.GroupAffiliation, error) {
	var out []model.GroupAffiliation
	err := e.view(ctx, func(tx *repository.Tx) error {
		out = tx.Affiliations()
		return nil
	})
	return out, err
}

// SetAffiliationMode stores the affiliationMode setting.
func (e *Engine) SetAffiliationMode(ctx context.Context, mode model.AffiliationMode) error {
	if !mode.Valid() {
		return fmt.Errorf("mode %q: %w", mode, repository.ErrInvalidSetting)
	}
	return e.update(ctx, func(t *txn) error {
		return t.PutSetting(model.SystemSetting{Name: model.SettingAffiliationMode, Value: string(mode)})
	})
}

// SetAffiliationCaps stores the affiliationCaps setting.  Caps must be
// non-negative.
func (e *Engine) SetAffiliationCaps(ctx context.Context, caps model.AffiliationCaps) error {
	value := make(map[string]int, len(caps))
	for d, n := range caps {
		if n < 0 {
			return fmt.Errorf("cap %s=%d: %w", d, n, repository.ErrInvalidSetting)
		}
		value[string(d)] = n
	}
	return e.update(ctx, func(t *txn) error {
		return t.PutSetting(model.SystemSetting{Name: model.SettingAffiliationCaps, Value: value})
	})
}

// AffiliationSettings returns the current mode and caps.
func (e *Engine) AffiliationSettings(ctx context.Context) (model.AffiliationMode, model.AffiliationCaps, error) {
	var (
		mode model.AffiliationMode
		caps model.AffiliationCaps
	)
	err := e.view(ctx, func(tx *repository.Tx) error {
		var err error
		if mode, err = tx.AffiliationMode(); err != nil {
			return err
		}
		caps, err = tx.AffiliationCaps()
		return err
	})
	return mode, caps, err
}
