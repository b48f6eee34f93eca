package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// CreatePlayer registers a new player with zeroed counters and the base
// Player role.  Usernames are unique.
func (e *Engine) CreatePlayer(ctx context.Context, username string) (model.Player, error) {
	var out model.Player
	err := e.update(ctx, func(t *txn) error {
		p, err := t.CreatePlayer(username)
		if err != nil {
			return err
		}
		out = p.Clone()
		return nil
	})
	return out, err
}

// FindPlayerByUsername returns the player registered under username.
func (e *Engine) FindPlayerByUsername(ctx context.Context, username string) (model.Player, error) {
	var out model.Player
	err := e.view(ctx, func(tx *repository.Tx) error {
		p, err := tx.PlayerByUsername(username)
		if err != nil {
			return err
		}
		out = p.Clone()
		return nil
	})
	return out, err
}

// GetPlayer returns the player with id.
func (e *Engine) GetPlayer(ctx context.Context, id uint64) (model.Player, error) {
	var out model.Player
	err := e.view(ctx, func(tx *repository.Tx) error {
		p, err := tx.Player(id)
		if err != nil {
			return err
		}
		out = p.Clone()
		return nil
	})
	return out, err
}

// GrantRole adds role to the player.  Granting a held role is a no-op.
func (e *Engine) GrantRole(ctx context.Context, playerID uint64, role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return repository.ErrInvalidArgument
	}
	return e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		if !p.HasRole(role) {
			p.Roles = append(p.Roles, role)
		}
		return nil
	})
}

// SetPosition overwrites the player's position.  Coordinates are not
// validated.
func (e *Engine) SetPosition(ctx context.Context, playerID uint64, x, y, z int) error {
	return e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		p.Position = model.Position{X: x, Y: y, Z: z}
		return nil
	})
}

// DepositCredits tops up a player's HBC balance.
func (e *Engine) DepositCredits(ctx context.Context, playerID uint64, amount model.HBC) error {
	if amount <= 0 {
		return fmt.Errorf("deposit %s: %w", amount, repository.ErrInvalidAmount)
	}
	return e.update(ctx, func(t *txn) error {
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		credits, ok := p.Credits.Add(amount)
		if !ok {
			return fmt.Errorf("deposit %s: balance overflow: %w", amount, repository.ErrInvalidAmount)
		}
		p.Credits = credits
		return nil
	})
}
