package model

// Group is a player-run organisation that hosts events and keeps its own
// HBC balance.
//
// Fields:
//  ID      – identifier assigned by the store.
//  Name    – display name.
//  OwnerID – player who owns the group.
//  Balance – HBC accrued from ticket sales.
type Group struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	OwnerID uint64 `json:"owner_id"`
	Balance HBC    `json:"balance_cents"`
}
