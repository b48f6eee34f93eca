package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hubzz-economy/internal/config"
	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

func TestAddXPOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "grinder")

	require.NoError(t, eng.AddXP(ctx, p.ID, math.MaxInt))
	err := eng.AddXP(ctx, p.ID, 1)
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, math.MaxInt, got.LifetimeXP)
	assert.Equal(t, math.MaxInt, got.SpendableXP)
}

func TestAddXPOverflowWhileLocked(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "saver")

	require.NoError(t, eng.ToggleXPLock(ctx, p.ID, true))
	require.NoError(t, eng.AddXP(ctx, p.ID, math.MaxInt))
	assert.ErrorIs(t, eng.AddXP(ctx, p.ID, 1), repository.ErrInvalidAmount)

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, math.MaxInt, got.LifetimeXP)
	assert.Zero(t, got.SpendableXP)
}

func TestCompleteQuestOverflowLeavesPlayerUntouched(t *testing.T) {
	ctx := context.Background()
	eng, rec, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "questor")

	require.NoError(t, eng.AddXP(ctx, p.ID, math.MaxInt))
	require.NoError(t, eng.AddQuest(ctx, model.Quest{ID: "one-more", XPReward: 1, BadgeReward: "Quest Master"}))
	assert.ErrorIs(t, eng.CompleteQuest(ctx, p.ID, "one-more"), repository.ErrInvalidAmount)

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.False(t, got.HasBadge("Quest Master"))
	assert.Empty(t, rec.ofType(queue.TypeQuestCompleted))
}

func TestDepositCreditsOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "whale")

	require.NoError(t, eng.DepositCredits(ctx, p.ID, math.MaxInt64))
	assert.ErrorIs(t, eng.DepositCredits(ctx, p.ID, 1), repository.ErrInvalidAmount)

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, model.HBC(math.MaxInt64), got.Credits)
}

func TestBuyEventTicketOverflowIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	m := newMarket(t)
	ev, err := m.eng.CreateEvent(ctx, m.zone.ID, m.group.ID, 1000, 0.5)
	require.NoError(t, err)
	require.NoError(t, m.eng.DepositCredits(ctx, m.buyer.ID, 1000))
	require.NoError(t, m.eng.DepositCredits(ctx, m.owner.ID, math.MaxInt64))

	_, err = m.eng.BuyEventTicket(ctx, m.buyer.ID, ev.ID)
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)

	buyer, _ := m.eng.GetPlayer(ctx, m.buyer.ID)
	group, _ := m.eng.GetGroup(ctx, m.group.ID)
	zone, _ := m.eng.GetZone(ctx, m.zone.ID)
	stubs, _ := m.eng.ListStubs(ctx, m.buyer.ID)
	assert.Equal(t, model.HBC(1000), buyer.Credits)
	assert.Zero(t, group.Balance)
	assert.Zero(t, zone.CumulativeRevenue[model.RevenueEvents])
	assert.Empty(t, stubs)
}

func TestCreateEventRejectsInexactPrice(t *testing.T) {
	ctx := context.Background()
	m := newMarket(t)

	_, err := m.eng.CreateEvent(ctx, m.zone.ID, m.group.ID, model.MaxTicketPrice+1, 0.5)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	_, err = m.eng.CreateEvent(ctx, m.zone.ID, m.group.ID, math.MaxInt64, 1)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)

	ev, err := m.eng.CreateEvent(ctx, m.zone.ID, m.group.ID, model.MaxTicketPrice, 0.3)
	require.NoError(t, err)
	zone, group := SplitTicket(ev.TicketPrice, ev.ZoneOwnerSplit)
	assert.GreaterOrEqual(t, zone, model.HBC(0))
	assert.GreaterOrEqual(t, group, model.HBC(0))
	assert.Equal(t, ev.TicketPrice, zone+group)
}

func TestSplitTicketAtInt64Bounds(t *testing.T) {
	zone, group := SplitTicket(math.MaxInt64, 1)
	assert.Equal(t, model.HBC(math.MaxInt64), zone)
	assert.Zero(t, group)

	zone, group = SplitTicket(math.MaxInt64, 0.5)
	assert.Positive(t, zone)
	assert.Positive(t, group)
	assert.Equal(t, model.HBC(math.MaxInt64), zone+group)
}

func TestDefaultsComeFromEmbeddedCatalog(t *testing.T) {
	c, err := config.LoadCatalog("")
	require.NoError(t, err)

	rules := DefaultRules()
	assert.Equal(t, c.LevelBadges, rules.LevelThresholds)
	assert.Equal(t, c.StubThresholds(), rules.StubThresholds)

	seed := DefaultSeed()
	assert.Equal(t, c.AdminUsername, seed.AdminUsername)
	assert.Equal(t, model.AffiliationMode(c.AffiliationMode), seed.AffiliationMode)
	assert.Equal(t, c.Caps(), seed.AffiliationCaps)
	assert.Equal(t, c.Badges, seed.Badges)
}
