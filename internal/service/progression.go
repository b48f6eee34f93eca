package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// Badge award sources reported on BadgeAwarded events.
const (
	SourceLevel  = "level"
	SourceStubs  = "stubs"
	SourceQuest  = "quest"
	SourceManual = "manual"
)

// AddXP grants amount XP.  Lifetime XP always grows; spendable XP grows
// only while the player's XP is unlocked.  Level badges are evaluated in
// the same transaction.  Negative amounts are rejected.
func (e *Engine) AddXP(ctx context.Context, playerID uint64, amount int) error {
	if amount < 0 {
		return fmt.Errorf("xp %d: %w", amount, repository.ErrInvalidAmount)
	}
	return e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		return e.addXP(t, p, amount)
	})
}

// addXP applies amount to p and runs the XP hooks.  Counters that would
// overflow reject the grant before anything is written.
func (e *Engine) addXP(t *txn, p *model.Player, amount int) error {
	lifetime, ok := model.AddInt(p.LifetimeXP, amount)
	if !ok {
		return fmt.Errorf("lifetime xp overflow: %w", repository.ErrInvalidAmount)
	}
	spendable := p.SpendableXP
	if !p.XPLocked {
		if spendable, ok = model.AddInt(spendable, amount); !ok {
			return fmt.Errorf("spendable xp overflow: %w", repository.ErrInvalidAmount)
		}
	}
	p.SpendableXP = spendable
	p.LifetimeXP = lifetime
	for _, h := range e.xpHooks {
		h(t, p)
	}
	return nil
}

// levelBadgeHook awards every level badge whose threshold the player's
// lifetime XP has reached.  Thresholds are independent, not tiers.
func (e *Engine) levelBadgeHook(t *txn, p *model.Player) {
	for _, lt := range e.levels {
		if p.LifetimeXP >= lt.XP {
			t.award(p, lt.Badge, SourceLevel)
		}
	}
}

// ToggleXPLock sets the XP lock flag.  Spendable XP is not adjusted.
func (e *Engine) ToggleXPLock(ctx context.Context, playerID uint64, locked bool) error {
	return e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		p.XPLocked = locked
		return nil
	})
}

// AwardBadge gives the named badge to the player and reports whether it
// was newly added.  Unknown badge names and already-held badges are
// silent no-ops.
func (e *Engine) AwardBadge(ctx context.Context, playerID uint64, badgeName string) (bool, error) {
	var awarded bool
	err := e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		awarded = t.award(p, badgeName, SourceManual)
		return nil
	})
	return awarded, err
}
