package repository

import (
	"fmt"
	"maps"
	"strings"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// PutBadge inserts or replaces a badge keyed by name.
func (tx *Tx) PutBadge(b model.Badge) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrInvalidArgument
	}
	if _, ok := tx.st.badges[b.Name]; !ok {
		tx.st.badgeOrder = append(tx.st.badgeOrder, b.Name)
	}
	tx.st.badges[b.Name] = b
	return nil
}

// Badge looks a badge up by name.
func (tx *Tx) Badge(name string) (model.Badge, bool) {
	b, ok := tx.st.badges[name]
	return b, ok
}

// Badges returns every badge in insertion order.
func (tx *Tx) Badges() []model.Badge {
	out := make([]model.Badge, 0, len(tx.st.badgeOrder))
	for _, n := range tx.st.badgeOrder {
		out = append(out, tx.st.badges[n])
	}
	return out
}

// PutQuest inserts or replaces a quest keyed by id.
func (tx *Tx) PutQuest(q model.Quest) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if strings.TrimSpace(q.ID) == "" || q.XPReward < 0 {
		return ErrInvalidArgument
	}
	tx.st.quests[q.ID] = q
	return nil
}

// Quest looks a quest up by id.
func (tx *Tx) Quest(id string) (model.Quest, error) {
	q, ok := tx.st.quests[id]
	if !ok {
		return model.Quest{}, ErrQuestNotFound
	}
	return q, nil
}

// PutSetting inserts or replaces a system setting.
func (tx *Tx) PutSetting(s model.SystemSetting) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	tx.st.settings[s.Name] = s
	return nil
}

// Setting returns the named setting.
func (tx *Tx) Setting(name string) (model.SystemSetting, bool) {
	s, ok := tx.st.settings[name]
	return s, ok
}

// AffiliationMode decodes the affiliationMode setting.
func (tx *Tx) AffiliationMode() (model.AffiliationMode, error) {
	s, ok := tx.Setting(model.SettingAffiliationMode)
	if !ok {
		return "", fmt.Errorf("%s unset: %w", model.SettingAffiliationMode, ErrInvalidSetting)
	}
	var mode model.AffiliationMode
	switch v := s.Value.(type) {
	case model.AffiliationMode:
		mode = v
	case string:
		mode = model.AffiliationMode(v)
	}
	if !mode.Valid() {
		return "", fmt.Errorf("%s=%v: %w", model.SettingAffiliationMode, s.Value, ErrInvalidSetting)
	}
	return mode, nil
}

// AffiliationCaps decodes the affiliationCaps setting.  A missing setting
// yields empty caps, i.e. a cap of 0 for every district.
func (tx *Tx) AffiliationCaps() (model.AffiliationCaps, error) {
	s, ok := tx.Setting(model.SettingAffiliationCaps)
	if !ok {
		return model.AffiliationCaps{}, nil
	}
	switch v := s.Value.(type) {
	case model.AffiliationCaps:
		return maps.Clone(v), nil
	case map[string]int:
		caps := make(model.AffiliationCaps, len(v))
		for k, n := range v {
			caps[model.District(k)] = n
		}
		return caps, nil
	}
	return nil, fmt.Errorf("%s has type %T: %w", model.SettingAffiliationCaps, s.Value, ErrInvalidSetting)
}
