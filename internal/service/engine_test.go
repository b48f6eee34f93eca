package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// recorder collects notified events.
type recorder struct {
	mu     sync.Mutex
	events []queue.EconomyEvent
}

func (r *recorder) Notify(_ context.Context, ev queue.EconomyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) ofType(typ string) []queue.EconomyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []queue.EconomyEvent
	for _, ev := range r.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *recorder, model.Player) {
	t.Helper()
	rec := &recorder{}
	eng := NewEngine(repository.NewStore(), DefaultRules(),
		WithNotifier(rec), WithClock(func() time.Time { return fixedNow }))
	admin, err := eng.Bootstrap(context.Background(), DefaultSeed())
	require.NoError(t, err)
	return eng, rec, admin
}

func mustPlayer(t *testing.T, eng *Engine, name string) model.Player {
	t.Helper()
	p, err := eng.CreatePlayer(context.Background(), name)
	require.NoError(t, err)
	return p
}

func TestBootstrapSeedsAdminAndCatalog(t *testing.T) {
	ctx := context.Background()
	eng, _, admin := newTestEngine(t)

	assert.Equal(t, "HubzzIncAdmin", admin.Username)
	assert.True(t, admin.HasRole(model.RoleHubzzInc))
	assert.True(t, admin.HasRole(model.RolePlayer))

	badges, err := eng.ListBadges(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 6)
	assert.Equal(t, "Level Badge 2", badges[0].Name)
	assert.Equal(t, "Awarded for reaching 100 XP.", badges[0].Description)

	mode, caps, err := eng.AffiliationSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.HubzzApproval, mode)
	assert.Equal(t, 4, caps.Cap(model.DistrictCentral))
	assert.Equal(t, 3, caps.Cap(model.DistrictMid))
	assert.Equal(t, 2, caps.Cap(model.DistrictOuter))

	again, err := eng.Bootstrap(ctx, DefaultSeed())
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, []string{model.RolePlayer, model.RoleHubzzInc}, again.Roles)
}

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()
	eng, _, admin := newTestEngine(t)

	p := mustPlayer(t, eng, "alice")
	assert.NotEqual(t, admin.ID, p.ID)
	assert.Equal(t, []string{model.RolePlayer}, p.Roles)
	assert.Zero(t, p.Credits)
	assert.Zero(t, p.SpendableXP)
	assert.Zero(t, p.LifetimeXP)
	assert.False(t, p.XPLocked)
	assert.Equal(t, model.Position{}, p.Position)
	assert.Empty(t, p.Badges)

	_, err := eng.CreatePlayer(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	_, err = eng.CreatePlayer(ctx, "   ")
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)

	found, err := eng.FindPlayerByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = eng.FindPlayerByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrPlayerNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGrantRoleAndPosition(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "bob")

	require.NoError(t, eng.GrantRole(ctx, p.ID, "Moderator"))
	require.NoError(t, eng.GrantRole(ctx, p.ID, "Moderator"))
	require.NoError(t, eng.SetPosition(ctx, p.ID, -3, 7, 1000))

	got, err := eng.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.RolePlayer, "Moderator"}, got.Roles)
	assert.Equal(t, model.Position{X: -3, Y: 7, Z: 1000}, got.Position)

	assert.ErrorIs(t, eng.GrantRole(ctx, 999, "Moderator"), repository.ErrPlayerNotFound)
	assert.ErrorIs(t, eng.SetPosition(ctx, 999, 0, 0, 0), repository.ErrPlayerNotFound)
}

func TestReturnedPlayerIsACopy(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "carol")

	p.Roles[0] = "Hacked"
	got, err := eng.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.RolePlayer}, got.Roles)
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	eng, rec, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "dave")

	added, err := eng.AwardBadge(ctx, p.ID, "Quest Master")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = eng.AwardBadge(ctx, p.ID, "Quest Master")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = eng.AwardBadge(ctx, p.ID, "No Such Badge")
	require.NoError(t, err)
	assert.False(t, added)

	got, err := eng.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quest Master"}, got.Badges)

	awarded := rec.ofType(queue.TypeBadgeAwarded)
	require.Len(t, awarded, 1)
	assert.Equal(t, SourceManual, awarded[0].Badge.Source)
	assert.Equal(t, fixedNow.Format(time.RFC3339), awarded[0].OccurredAt)

	_, err = eng.AwardBadge(ctx, 999, "Quest Master")
	assert.ErrorIs(t, err, repository.ErrPlayerNotFound)
}

func TestAddXPAwardsLevelBadges(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "erin")

	require.NoError(t, eng.AddXP(ctx, p.ID, 99))
	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Empty(t, got.Badges)

	require.NoError(t, eng.AddXP(ctx, p.ID, 1))
	got, _ = eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, 100, got.LifetimeXP)
	assert.Equal(t, 100, got.SpendableXP)
	assert.Equal(t, []string{"Level Badge 2"}, got.Badges)

	require.NoError(t, eng.AddXP(ctx, p.ID, 150))
	got, _ = eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, []string{"Level Badge 2", "Level Badge 3"}, got.Badges)
}

func TestAddXPCrossingBothThresholdsAtOnce(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "frank")

	require.NoError(t, eng.AddXP(ctx, p.ID, 300))
	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, []string{"Level Badge 2", "Level Badge 3"}, got.Badges)
}

func TestXPLockFreezesSpendableOnly(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "gina")

	require.NoError(t, eng.AddXP(ctx, p.ID, 40))
	require.NoError(t, eng.ToggleXPLock(ctx, p.ID, true))
	require.NoError(t, eng.AddXP(ctx, p.ID, 70))

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.True(t, got.XPLocked)
	assert.Equal(t, 40, got.SpendableXP)
	assert.Equal(t, 110, got.LifetimeXP)
	assert.Equal(t, []string{"Level Badge 2"}, got.Badges)

	require.NoError(t, eng.ToggleXPLock(ctx, p.ID, false))
	require.NoError(t, eng.AddXP(ctx, p.ID, 10))
	got, _ = eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, 50, got.SpendableXP)
	assert.Equal(t, 120, got.LifetimeXP)
}

func TestAddXPRejectsNegative(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "hank")

	assert.ErrorIs(t, eng.AddXP(ctx, p.ID, -5), repository.ErrInvalidAmount)
	assert.ErrorIs(t, eng.AddXP(ctx, 999, 5), repository.ErrPlayerNotFound)
	require.NoError(t, eng.AddXP(ctx, p.ID, 0))
}

func TestDepositCredits(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "ivy")

	require.NoError(t, eng.DepositCredits(ctx, p.ID, model.HBCFromUnits(12.5)))
	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, model.HBC(1250), got.Credits)

	assert.ErrorIs(t, eng.DepositCredits(ctx, p.ID, 0), repository.ErrInvalidAmount)
	assert.ErrorIs(t, eng.DepositCredits(ctx, p.ID, -1), repository.ErrInvalidAmount)
}

func TestCompleteQuest(t *testing.T) {
	ctx := context.Background()
	eng, rec, _ := newTestEngine(t)
	p := mustPlayer(t, eng, "jack")

	require.NoError(t, eng.AddQuest(ctx, model.Quest{ID: "tutorial", XPReward: 120, BadgeReward: "Quest Master"}))
	require.NoError(t, eng.CompleteQuest(ctx, p.ID, "tutorial"))

	got, _ := eng.GetPlayer(ctx, p.ID)
	assert.Equal(t, 120, got.LifetimeXP)
	assert.ElementsMatch(t, []string{"Level Badge 2", "Quest Master"}, got.Badges)

	done := rec.ofType(queue.TypeQuestCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, "tutorial", done[0].Quest.QuestID)

	assert.ErrorIs(t, eng.CompleteQuest(ctx, p.ID, "missing"), repository.ErrQuestNotFound)
	assert.ErrorIs(t, eng.AddQuest(ctx, model.Quest{ID: "bad", XPReward: -1}), repository.ErrInvalidArgument)
}

func newStoreForTest() *repository.Store { return repository.NewStore() }

func TestNewEngineSortsThresholds(t *testing.T) {
	rules := Rules{
		LevelThresholds: []model.LevelThreshold{{Badge: "B", XP: 250}, {Badge: "A", XP: 100}},
		StubThresholds:  map[uint64][]model.StubThreshold{1: {{Stubs: 10, Badge: "G"}, {Stubs: 3, Badge: "Br"}}},
	}
	eng := NewEngine(newStoreForTest(), rules)
	assert.Equal(t, "A", eng.levels[0].Badge)
	assert.Equal(t, "Br", eng.stubs[1][0].Badge)
	// the caller's slices are untouched
	assert.Equal(t, "B", rules.LevelThresholds[0].Badge)

	assert.Panics(t, func() { NewEngine(nil, rules) })
}

func TestCancelledContext(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.CreatePlayer(ctx, "late")
	assert.ErrorIs(t, err, context.Canceled)
}
