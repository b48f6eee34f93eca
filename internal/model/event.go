package model

// Event is a ticketed happening hosted by a group inside a zone.  Events
// are immutable once created.
//
// Fields:
//  ID             – identifier assigned by the store.
//  ZoneID         – zone the event takes place in.
//  GroupID        – group hosting the event.
//  TicketPrice    – price of one ticket; zero for free events.
//  ZoneOwnerSplit – fraction in [0,1] of each ticket routed to the
//                   zone owner; the group receives the remainder.
type Event struct {
	ID             uint64  `json:"id"`
	ZoneID         uint64  `json:"zone_id"`
	GroupID        uint64  `json:"group_id"`
	TicketPrice    HBC     `json:"ticket_price_cents"`
	ZoneOwnerSplit float64 `json:"zone_owner_split"`
}

// TicketStub records one ticket purchase.  Stubs are append-only and are
// counted per group to award loyalty badges.
type TicketStub struct {
	ID      uint64 `json:"id"`
	EventID uint64 `json:"event_id"`
	OwnerID uint64 `json:"owner_id"`
}
