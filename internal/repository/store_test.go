package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

func TestIDsStartAtOneAndIncrease(t *testing.T) {
	s := NewStore()
	err := s.Update(context.Background(), func(tx *Tx) error {
		a, err := tx.CreatePlayer("a")
		require.NoError(t, err)
		b, err := tx.CreatePlayer("b")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), a.ID)
		assert.Equal(t, uint64(2), b.ID)

		z, err := tx.CreateZone(a.ID, model.DistrictCentral)
		require.NoError(t, err)
		g, err := tx.CreateGroup("g", b.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), z.ID)
		assert.Equal(t, uint64(1), g.ID)

		ev, err := tx.CreateEvent(z.ID, g.ID, 100, 0.5)
		require.NoError(t, err)
		stub, err := tx.CreateStub(ev.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), ev.ID)
		assert.Equal(t, uint64(1), stub.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestViewIsReadOnly(t *testing.T) {
	s := NewStore()
	err := s.View(context.Background(), func(tx *Tx) error {
		_, err := tx.CreatePlayer("a")
		return err
	})
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestUpdateReturnsCallbackError(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")
	err := s.Update(context.Background(), func(tx *Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestNotFoundErrorsMatchSentinel(t *testing.T) {
	for _, err := range []error{ErrPlayerNotFound, ErrZoneNotFound, ErrGroupNotFound, ErrEventNotFound, ErrQuestNotFound} {
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrNotFound)
	}
	assert.NotErrorIs(t, ErrPlayerNotFound, ErrZoneNotFound)
	assert.Equal(t, "player not found", ErrPlayerNotFound.Error())
}

func TestCountStubsForGroup(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Update(context.Background(), func(tx *Tx) error {
		p, _ := tx.CreatePlayer("p")
		q, _ := tx.CreatePlayer("q")
		z, _ := tx.CreateZone(p.ID, model.DistrictMid)
		g1, _ := tx.CreateGroup("one", p.ID)
		g2, _ := tx.CreateGroup("two", p.ID)
		e1, _ := tx.CreateEvent(z.ID, g1.ID, 0, 0)
		e2, _ := tx.CreateEvent(z.ID, g2.ID, 0, 0)
		for _, ev := range []uint64{e1.ID, e1.ID, e2.ID} {
			_, err := tx.CreateStub(ev, p.ID)
			require.NoError(t, err)
		}
		_, err := tx.CreateStub(e1.ID, q.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, tx.CountStubsForGroup(p.ID, g1.ID))
		assert.Equal(t, 1, tx.CountStubsForGroup(p.ID, g2.ID))
		assert.Equal(t, 1, tx.CountStubsForGroup(q.ID, g1.ID))
		assert.Len(t, tx.StubsByOwner(p.ID), 3)
		return nil
	}))
}

func TestCatalogAndSettings(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Update(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.PutBadge(model.Badge{Name: "B"}))
		require.NoError(t, tx.PutBadge(model.Badge{Name: "A"}))
		require.NoError(t, tx.PutBadge(model.Badge{Name: "B", Description: "updated"}))
		assert.ErrorIs(t, tx.PutBadge(model.Badge{Name: " "}), ErrInvalidArgument)

		badges := tx.Badges()
		require.Len(t, badges, 2)
		assert.Equal(t, "B", badges[0].Name)
		assert.Equal(t, "updated", badges[0].Description)

		caps, err := tx.AffiliationCaps()
		require.NoError(t, err)
		assert.Zero(t, caps.Cap(model.DistrictCentral))

		_, err = tx.AffiliationMode()
		assert.ErrorIs(t, err, ErrInvalidSetting)

		require.NoError(t, tx.PutSetting(model.SystemSetting{Name: model.SettingAffiliationMode, Value: "zone_owner_approval"}))
		mode, err := tx.AffiliationMode()
		require.NoError(t, err)
		assert.Equal(t, model.ZoneOwnerApproval, mode)

		require.NoError(t, tx.PutSetting(model.SystemSetting{Name: model.SettingAffiliationCaps, Value: map[string]int{"mid": 3}}))
		caps, err = tx.AffiliationCaps()
		require.NoError(t, err)
		assert.Equal(t, 3, caps.Cap(model.DistrictMid))

		require.NoError(t, tx.PutSetting(model.SystemSetting{Name: model.SettingAffiliationCaps, Value: 7}))
		_, err = tx.AffiliationCaps()
		assert.ErrorIs(t, err, ErrInvalidSetting)
		return nil
	}))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Update(context.Background(), func(tx *Tx) error {
				_, err := tx.CreatePlayer(fmt.Sprintf("p%d", i))
				return err
			})
		}(i)
	}
	wg.Wait()
	require.NoError(t, s.View(context.Background(), func(tx *Tx) error {
		players := tx.Players()
		require.Len(t, players, 100)
		for i, p := range players {
			assert.Equal(t, uint64(i+1), p.ID)
		}
		return nil
	}))
}
