package repository

import (
	"github.com/iliyamo/hubzz-economy/internal/model"
)

// CreateEvent inserts an event.  The zone and group must exist, the price
// must lie in [0, model.MaxTicketPrice] and the split in [0,1].
func (tx *Tx) CreateEvent(zoneID, groupID uint64, price model.HBC, split float64) (*model.Event, error) {
	if err := tx.checkWritable(); err != nil {
		return nil, err
	}
	if _, err := tx.Zone(zoneID); err != nil {
		return nil, err
	}
	if _, err := tx.Group(groupID); err != nil {
		return nil, err
	}
	// split != split catches NaN
	if price < 0 || price > model.MaxTicketPrice || split != split || split < 0 || split > 1 {
		return nil, ErrInvalidArgument
	}
	e := &model.Event{
		ID:             tx.st.nextEventID,
		ZoneID:         zoneID,
		GroupID:        groupID,
		TicketPrice:    price,
		ZoneOwnerSplit: split,
	}
	tx.st.nextEventID++
	tx.st.events[e.ID] = e
	return e, nil
}

// Event returns a copy of the event; events are immutable.
func (tx *Tx) Event(id uint64) (model.Event, error) {
	e, ok := tx.st.events[id]
	if !ok {
		return model.Event{}, ErrEventNotFound
	}
	return *e, nil
}

// CreateStub appends a ticket stub for (eventID, ownerID).
func (tx *Tx) CreateStub(eventID, ownerID uint64) (model.TicketStub, error) {
	if err := tx.checkWritable(); err != nil {
		return model.TicketStub{}, err
	}
	s := model.TicketStub{ID: tx.st.nextStubID, EventID: eventID, OwnerID: ownerID}
	tx.st.nextStubID++
	tx.st.stubs = append(tx.st.stubs, s)
	return s, nil
}

// StubsByOwner returns the owner's stubs in purchase order.
func (tx *Tx) StubsByOwner(ownerID uint64) []model.TicketStub {
	out := []model.TicketStub{}
	for _, s := range tx.st.stubs {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out
}

// CountStubsForGroup counts the owner's stubs whose event is hosted by
// groupID.
func (tx *Tx) CountStubsForGroup(ownerID, groupID uint64) int {
	n := 0
	for _, s := range tx.st.stubs {
		if s.OwnerID != ownerID {
			continue
		}
		if e, ok := tx.st.events[s.EventID]; ok && e.GroupID == groupID {
			n++
		}
	}
	return n
}
