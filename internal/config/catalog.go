package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the static reference data the rules engine consumes: the
// bootstrap settings, the badge and quest catalog and both threshold
// tables.
type Catalog struct {
	AdminUsername   string                 `yaml:"admin_username"`
	AffiliationMode string                 `yaml:"affiliation_mode"`
	AffiliationCaps map[string]int         `yaml:"affiliation_caps"`
	Badges          []model.Badge          `yaml:"badges"`
	LevelBadges     []model.LevelThreshold `yaml:"level_badges"`
	StubBadges      []GroupStubBadges      `yaml:"stub_badges"`
	Quests          []model.Quest          `yaml:"quests"`
}

// GroupStubBadges is the loyalty table of one group.
type GroupStubBadges struct {
	GroupID    uint64                `yaml:"group_id"`
	Thresholds []model.StubThreshold `yaml:"thresholds"`
}

// LoadCatalog reads the catalog at path, or the embedded launch catalog
// when path is empty.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	c, err := ParseCatalog(raw)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

func (c Catalog) validate() error {
	if c.AdminUsername == "" {
		return errors.New("admin_username is required")
	}
	if !model.AffiliationMode(c.AffiliationMode).Valid() {
		return fmt.Errorf("unknown affiliation_mode %q", c.AffiliationMode)
	}
	for d, n := range c.AffiliationCaps {
		if !model.District(d).Valid() {
			return fmt.Errorf("unknown district %q in affiliation_caps", d)
		}
		if n < 0 {
			return fmt.Errorf("negative cap for %s", d)
		}
	}
	known := make(map[string]bool, len(c.Badges))
	for _, b := range c.Badges {
		if b.Name == "" {
			return fmt.Errorf("badge %q has no name", b.ID)
		}
		known[b.Name] = true
	}
	for _, lt := range c.LevelBadges {
		if !known[lt.Badge] {
			return fmt.Errorf("level badge %q is not in the catalog", lt.Badge)
		}
		if lt.XP < 0 {
			return fmt.Errorf("level badge %q has negative xp", lt.Badge)
		}
	}
	for _, g := range c.StubBadges {
		for _, st := range g.Thresholds {
			if !known[st.Badge] {
				return fmt.Errorf("stub badge %q for group %d is not in the catalog", st.Badge, g.GroupID)
			}
			if st.Stubs < 1 {
				return fmt.Errorf("stub badge %q for group %d needs at least one stub", st.Badge, g.GroupID)
			}
		}
	}
	for _, q := range c.Quests {
		if q.ID == "" || q.XPReward < 0 {
			return fmt.Errorf("quest %q is invalid", q.ID)
		}
	}
	return nil
}

// Caps returns the affiliation caps keyed by district.
func (c Catalog) Caps() model.AffiliationCaps {
	caps := make(model.AffiliationCaps, len(c.AffiliationCaps))
	for d, n := range c.AffiliationCaps {
		caps[model.District(d)] = n
	}
	return caps
}

// StubThresholds returns the loyalty tables keyed by group id.
func (c Catalog) StubThresholds() map[uint64][]model.StubThreshold {
	out := make(map[uint64][]model.StubThreshold, len(c.StubBadges))
	for _, g := range c.StubBadges {
		out[g.GroupID] = append(out[g.GroupID], g.Thresholds...)
	}
	return out
}
