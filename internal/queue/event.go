// Package queue defines message payloads exchanged over the message broker
// and the consumer that turns them into ledger log lines.
package queue

// Event types published on the economy queue.
const (
	TypeTicketPurchased = "ticket.purchased"
	TypeBadgeAwarded    = "badge.awarded"
	TypeGroupOnboarded  = "group.onboarded"
	TypeQuestCompleted  = "quest.completed"
)

// EconomyEvent is published after a rules-engine transaction commits.
// Exactly one of the payload pointers is set, matching Type.  It carries
// enough information for downstream consumers to log, notify, or trigger
// analytics without querying the engine.
type EconomyEvent struct {
	Type        string                `json:"type"`
	OccurredAt  string                `json:"occurred_at"`
	Ticket      *TicketPurchasedEvent `json:"ticket,omitempty"`
	Badge       *BadgeAwardedEvent    `json:"badge,omitempty"`
	Affiliation *GroupOnboardedEvent  `json:"affiliation,omitempty"`
	Quest       *QuestCompletedEvent  `json:"quest,omitempty"`
}

// TicketPurchasedEvent describes one ticket sale and how its price was
// split.  ZoneShareCents + GroupShareCents == PriceCents.
type TicketPurchasedEvent struct {
	StubID          uint64 `json:"stub_id"`
	EventID         uint64 `json:"event_id"`
	BuyerID         uint64 `json:"buyer_id"`
	ZoneID          uint64 `json:"zone_id"`
	ZoneOwnerID     uint64 `json:"zone_owner_id"`
	GroupID         uint64 `json:"group_id"`
	PriceCents      int64  `json:"price_cents"`
	ZoneShareCents  int64  `json:"zone_share_cents"`
	GroupShareCents int64  `json:"group_share_cents"`
}

// BadgeAwardedEvent is emitted the first time a player receives a badge.
// Source is "level", "stubs", "quest" or "manual".
type BadgeAwardedEvent struct {
	PlayerID uint64 `json:"player_id"`
	Badge    string `json:"badge"`
	Source   string `json:"source"`
}

// GroupOnboardedEvent is emitted when a group affiliation is created.
type GroupOnboardedEvent struct {
	ZoneID  uint64 `json:"zone_id"`
	GroupID uint64 `json:"group_id"`
	ActorID uint64 `json:"actor_id"`
	Mode    string `json:"mode"`
}

// QuestCompletedEvent is emitted when a player completes a quest.
type QuestCompletedEvent struct {
	PlayerID uint64 `json:"player_id"`
	QuestID  string `json:"quest_id"`
	XPReward int    `json:"xp_reward"`
}
