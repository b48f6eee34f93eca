// Package service implements the Hubzz economy and progression rules
// engine on top of the in-memory repository.Store.  Every exported
// operation is one store transaction: it validates, mutates, runs the
// post-mutation hooks and, once the transaction has been applied, hands
// the resulting economy events to the configured Notifier.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/iliyamo/hubzz-economy/internal/config"
	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// Rules are the read-only threshold tables supplied by the catalog.
type Rules struct {
	// LevelThresholds award a badge once lifetime XP reaches a value.
	LevelThresholds []model.LevelThreshold
	// StubThresholds maps a group id to the loyalty badges earned by
	// collecting stubs for that group's events.
	StubThresholds map[uint64][]model.StubThreshold
}

// DefaultRules returns the threshold tables of the embedded launch
// catalog.
func DefaultRules() Rules { return RulesFromCatalog(launchCatalog()) }

// RulesFromCatalog extracts the threshold tables from c.
func RulesFromCatalog(c config.Catalog) Rules {
	return Rules{
		LevelThresholds: c.LevelBadges,
		StubThresholds:  c.StubThresholds(),
	}
}

// launchCatalog loads the embedded catalog, which is validated by the
// config tests and cannot fail at runtime.
func launchCatalog() config.Catalog {
	c, err := config.LoadCatalog("")
	if err != nil {
		panic("embedded catalog: " + err.Error())
	}
	return c
}

// Notifier receives economy events after the transaction that produced
// them has been applied.  Implementations must not call back into the
// Engine synchronously.
type Notifier interface {
	Notify(ctx context.Context, ev queue.EconomyEvent) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev queue.EconomyEvent) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, ev queue.EconomyEvent) error { return f(ctx, ev) }

// xpHook runs after a player's XP counters change.
type xpHook func(t *txn, p *model.Player)

// stubHook runs after a ticket stub is minted for buyer.
type stubHook func(t *txn, buyer *model.Player, ev model.Event)

// Engine is the rules engine.  It is safe for concurrent use.
type Engine struct {
	store     *repository.Store
	levels    []model.LevelThreshold
	stubs     map[uint64][]model.StubThreshold
	notifier  Notifier
	now       func() time.Time
	xpHooks   []xpHook
	stubHooks []stubHook
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the post-commit event sink.
func WithNotifier(n Notifier) Option { return func(e *Engine) { e.notifier = n } }

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// NewEngine builds an engine over store using rules.  The threshold
// tables are copied and sorted ascending so awards happen in a stable
// order.  It panics if store is nil.
func NewEngine(store *repository.Store, rules Rules, opts ...Option) *Engine {
	if store == nil {
		panic("nil store passed to NewEngine")
	}
	e := &Engine{
		store: store,
		now:   time.Now,
		stubs: make(map[uint64][]model.StubThreshold, len(rules.StubThresholds)),
	}
	e.levels = append([]model.LevelThreshold(nil), rules.LevelThresholds...)
	sort.SliceStable(e.levels, func(i, j int) bool { return e.levels[i].XP < e.levels[j].XP })
	for groupID, table := range rules.StubThresholds {
		cp := append([]model.StubThreshold(nil), table...)
		sort.SliceStable(cp, func(i, j int) bool { return cp[i].Stubs < cp[j].Stubs })
		e.stubs[groupID] = cp
	}
	for _, opt := range opts {
		opt(e)
	}
	e.xpHooks = []xpHook{e.levelBadgeHook}
	e.stubHooks = []stubHook{e.stubBadgeHook}
	return e
}

// txn carries a store transaction plus the events it produced.
type txn struct {
	*repository.Tx
	now    time.Time
	events []queue.EconomyEvent
}

func (t *txn) emit(ev queue.EconomyEvent) {
	ev.OccurredAt = t.now.UTC().Format(time.RFC3339)
	t.events = append(t.events, ev)
}

// award adds badgeName to p unless it is unknown or already held.  It
// reports whether the badge was newly added.
func (t *txn) award(p *model.Player, badgeName, source string) bool {
	if _, ok := t.Badge(badgeName); !ok {
		return false
	}
	if p.HasBadge(badgeName) {
		return false
	}
	p.Badges = append(p.Badges, badgeName)
	t.emit(queue.EconomyEvent{
		Type:  queue.TypeBadgeAwarded,
		Badge: &queue.BadgeAwardedEvent{PlayerID: p.ID, Badge: badgeName, Source: source},
	})
	return true
}

// update runs fn as one exclusive store transaction and publishes the
// emitted events once it has succeeded.
func (e *Engine) update(ctx context.Context, fn func(t *txn) error) error {
	t := &txn{now: e.now()}
	err := e.store.Update(ctx, func(tx *repository.Tx) error {
		t.Tx = tx
		return fn(t)
	})
	if err != nil {
		return err
	}
	e.publish(ctx, t.events)
	return nil
}

func (e *Engine) view(ctx context.Context, fn func(tx *repository.Tx) error) error {
	return e.store.View(ctx, fn)
}

// publish delivers events to the notifier.  Delivery failures do not undo
// the committed transaction; the notifier is expected to log them.
func (e *Engine) publish(ctx context.Context, events []queue.EconomyEvent) {
	if e.notifier == nil {
		return
	}
	for _, ev := range events {
		_ = e.notifier.Notify(ctx, ev)
	}
}
