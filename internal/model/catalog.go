package model

// Badge is an award a player can hold at most once.  Name is the key
// other components use to refer to it.
type Badge struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Quest grants XP and, optionally, a badge on completion.
//
// Fields:
//  ID          – catalog key.
//  XPReward    – XP added through the progression engine.
//  BadgeReward – badge name awarded directly; empty for none.
type Quest struct {
	ID          string `json:"id" yaml:"id"`
	XPReward    int    `json:"xp_reward" yaml:"xp_reward"`
	BadgeReward string `json:"badge_reward,omitempty" yaml:"badge_reward"`
}

// LevelThreshold awards Badge once a player's lifetime XP reaches XP.
type LevelThreshold struct {
	Badge string `json:"badge" yaml:"badge"`
	XP    int    `json:"xp" yaml:"xp"`
}

// StubThreshold awards Badge once a player holds Stubs ticket stubs for
// events of a single group.
type StubThreshold struct {
	Stubs int    `json:"stubs" yaml:"stubs"`
	Badge string `json:"badge" yaml:"badge"`
}
