package service

import (
	"context"

	"github.com/iliyamo/hubzz-economy/internal/model"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
)

// AddBadge registers or replaces a catalog badge.
func (e *Engine) AddBadge(ctx context.Context, b model.Badge) error {
	return e.update(ctx, func(t *txn) error { return t.PutBadge(b) })
}

// ListBadges returns the badge catalog.
func (e *Engine) ListBadges(ctx context.Context) ([]model.Badge, error) {
	var out []model.Badge
	err := e.view(ctx, func(tx *repository.Tx) error {
		out = tx.Badges()
		return nil
	})
	return out, err
}

// AddQuest registers or replaces a quest.
func (e *Engine) AddQuest(ctx context.Context, q model.Quest) error {
	return e.update(ctx, func(t *txn) error { return t.PutQuest(q) })
}

// CompleteQuest grants the quest's XP through the progression engine and
// then its badge reward, if any, bypassing thresholds.
func (e *Engine) CompleteQuest(ctx context.Context, playerID uint64, questID string) error {
	return e.update(ctx, func(t *txn) error {
		q, err := t.Quest(questID)
		if err != nil {
			return err
		}
		p, err := t.Player(playerID)
		if err != nil {
			return err
		}
		if err := e.addXP(t, p, q.XPReward); err != nil {
			return err
		}
		if q.BadgeReward != "" {
			t.award(p, q.BadgeReward, SourceQuest)
		}
		t.emit(queue.EconomyEvent{
			Type:  queue.TypeQuestCompleted,
			Quest: &queue.QuestCompletedEvent{PlayerID: p.ID, QuestID: q.ID, XPReward: q.XPReward},
		})
		return nil
	})
}
