package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// Store is the single shared mutable resource behind the rules engine.
// All entity state lives in memory for the lifetime of the process.
// Every public engine operation runs inside exactly one Update or View
// call, which makes it atomic with respect to every other operation.
type Store struct {
	mu    sync.RWMutex
	state state
}

type state struct {
	players      map[uint64]*model.Player
	usernames    map[string]uint64
	zones        map[uint64]*model.Zone
	groups       map[uint64]*model.Group
	events       map[uint64]*model.Event
	stubs        []model.TicketStub
	badges       map[string]model.Badge
	badgeOrder   []string
	quests       map[string]model.Quest
	settings     map[string]model.SystemSetting
	affiliations []model.GroupAffiliation

	nextPlayerID uint64
	nextZoneID   uint64
	nextGroupID  uint64
	nextEventID  uint64
	nextStubID   uint64
}

// NewStore returns an empty store.  Identifiers start at 1 for every
// entity kind.
func NewStore() *Store {
	return &Store{state: state{
		players:      make(map[uint64]*model.Player),
		usernames:    make(map[string]uint64),
		zones:        make(map[uint64]*model.Zone),
		groups:       make(map[uint64]*model.Group),
		events:       make(map[uint64]*model.Event),
		badges:       make(map[string]model.Badge),
		quests:       make(map[string]model.Quest),
		settings:     make(map[string]model.SystemSetting),
		nextPlayerID: 1,
		nextZoneID:   1,
		nextGroupID:  1,
		nextEventID:  1,
		nextStubID:   1,
	}}
}

// Tx is a handle on the store valid only for the duration of the Update
// or View callback that received it.  Pointers returned by Tx accessors
// refer to live records and must not escape the callback.
type Tx struct {
	st       *state
	writable bool
}

// Update runs fn with the exclusive lock held.  fn must perform all
// validation before its first mutation: the store does not roll back
// partial writes when fn returns an error.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{st: &s.state, writable: true})
}

// View runs fn with the shared lock held.  Mutating methods on the Tx
// return ErrReadOnly.
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{st: &s.state})
}

func (tx *Tx) checkWritable() error {
	if !tx.writable {
		return ErrReadOnly
	}
	return nil
}
