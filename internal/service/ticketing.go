package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// SplitTicket divides price between the zone owner and the hosting
// group.  The group share is derived by subtraction so the two shares
// always sum to price exactly.
func SplitTicket(price model.HBC, zoneOwnerSplit float64) (zoneShare, groupShare model.HBC) {
	zoneShare = price.Share(zoneOwnerSplit)
	groupShare = price - zoneShare
	return zoneShare, groupShare
}

// CreateEvent creates an event hosted by groupID in zoneID.
func (e *Engine) CreateEvent(ctx context.Context, zoneID, groupID uint64, ticketPrice model.HBC, zoneOwnerSplit float64) (model.Event, error) {
	var out model.Event
	err := e.update(ctx, func(t *txn) error {
		ev, err := t.CreateEvent(zoneID, groupID, ticketPrice, zoneOwnerSplit)
		if err != nil {
			return err
		}
		out = *ev
		return nil
	})
	return out, err
}

// GetEvent returns the event with id.
func (e *Engine) GetEvent(ctx context.Context, id uint64) (model.Event, error) {
	var out model.Event
	err := e.view(ctx, func(tx *repository.Tx) error {
		var err error
		out, err = tx.Event(id)
		return err
	})
	return out, err
}

// BuyEventTicket sells one ticket for eventID to playerID.  The buyer is
// debited the ticket price, the zone owner is credited the zone share,
// the group the remainder, and the zone's events revenue grows by the
// zone share.  A stub is minted and the group's loyalty badges are
// evaluated.  Either all of that happens or none of it does.
func (e *Engine) BuyEventTicket(ctx context.Context, playerID, eventID uint64) (model.TicketStub, error) {
	var stub model.TicketStub
	err := e.update(ctx, func(t *txn) error {
		buyer, err := t.Player(playerID)
		if err != nil {
			return err
		}
		ev, err := t.Event(eventID)
		if err != nil {
			return err
		}
		zone, err := t.Zone(ev.ZoneID)
		if err != nil {
			return err
		}
		group, err := t.Group(ev.GroupID)
		if err != nil {
			return err
		}
		owner, err := t.Player(zone.OwnerID)
		if err != nil {
			return err
		}
		if buyer.Credits < ev.TicketPrice {
			return fmt.Errorf("balance %s below price %s: %w", buyer.Credits, ev.TicketPrice, repository.ErrInsufficientFunds)
		}

		zoneShare, groupShare := SplitTicket(ev.TicketPrice, ev.ZoneOwnerSplit)
		buyerCredits := buyer.Credits - ev.TicketPrice
		ownerBase := owner.Credits
		if owner.ID == buyer.ID {
			ownerBase = buyerCredits
		}
		ownerCredits, ok1 := ownerBase.Add(zoneShare)
		groupBalance, ok2 := group.Balance.Add(groupShare)
		cumulative, ok3 := zone.CumulativeRevenue[model.RevenueEvents].Add(zoneShare)
		monthly, ok4 := zone.MonthlyRevenue[model.RevenueEvents].Add(zoneShare)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return fmt.Errorf("ticket %d: balance overflow: %w", ev.ID, repository.ErrInvalidAmount)
		}

		buyer.Credits = buyerCredits
		owner.Credits = ownerCredits
		group.Balance = groupBalance
		zone.CumulativeRevenue[model.RevenueEvents] = cumulative
		zone.MonthlyRevenue[model.RevenueEvents] = monthly

		stub, err = t.CreateStub(ev.ID, buyer.ID)
		if err != nil {
			return err
		}
		t.emit(queue.EconomyEvent{
			Type: queue.TypeTicketPurchased,
			Ticket: &queue.TicketPurchasedEvent{
				StubID:          stub.ID,
				EventID:         ev.ID,
				BuyerID:         buyer.ID,
				ZoneID:          zone.ID,
				ZoneOwnerID:     owner.ID,
				GroupID:         group.ID,
				PriceCents:      int64(ev.TicketPrice),
				ZoneShareCents:  int64(zoneShare),
				GroupShareCents: int64(groupShare),
			},
		})
		for _, h := range e.stubHooks {
			h(t, buyer, ev)
		}
		return nil
	})
	return stub, err
}

// stubBadgeHook awards every loyalty badge of the event's group whose
// stub threshold the buyer has reached.
func (e *Engine) stubBadgeHook(t *txn, buyer *model.Player, ev model.Event) {
	table, ok := e.stubs[ev.GroupID]
	if !ok {
		return
	}
	count := t.CountStubsForGroup(buyer.ID, ev.GroupID)
	for _, st := range table {
		if count >= st.Stubs {
			t.award(buyer, st.Badge, SourceStubs)
		}
	}
}

// ListStubs returns the player's ticket stubs in purchase order.
func (e *Engine) ListStubs(ctx context.Context, playerID uint64) ([]model.TicketStub, error) {
	var out []model.TicketStub
	err := e.view(ctx, func(tx *repository.Tx) error {
		if _, err := tx.Player(playerID); err != nil {
			return err
		}
		out = tx.StubsByOwner(playerID)
		return nil
	})
	return out, err
}
