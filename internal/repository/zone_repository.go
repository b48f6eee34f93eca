package repository

import (
	"slices"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// CreateZone inserts a zone with empty affiliation and revenue state.
// The owner must exist and the district must be known.
func (tx *Tx) CreateZone(ownerID uint64, district model.District) (*model.Zone, error) {
	if err := tx.checkWritable(); err != nil {
		return nil, err
	}
	if _, err := tx.Player(ownerID); err != nil {
		return nil, err
	}
	if !district.Valid() {
		return nil, ErrInvalidArgument
	}
	z := &model.Zone{
		ID:                tx.st.nextZoneID,
		OwnerID:           ownerID,
		District:          district,
		Affiliations:      []model.GroupAffiliation{},
		CumulativeRevenue: model.NewRevenue(),
		MonthlyRevenue:    model.NewRevenue(),
	}
	tx.st.nextZoneID++
	tx.st.zones[z.ID] = z
	return z, nil
}

// Zone returns the live record for id.
func (tx *Tx) Zone(id uint64) (*model.Zone, error) {
	z, ok := tx.st.zones[id]
	if !ok {
		return nil, ErrZoneNotFound
	}
	return z, nil
}

// AppendAffiliation records a validated affiliation both globally and on
// the zone.  Validation is the caller's job.
func (tx *Tx) AppendAffiliation(z *model.Zone, a model.GroupAffiliation) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	tx.st.affiliations = append(tx.st.affiliations, a)
	z.Affiliations = append(z.Affiliations, a)
	return nil
}

// Affiliations returns a copy of the global affiliation list.
func (tx *Tx) Affiliations() []model.GroupAffiliation {
	return slices.Clone(tx.st.affiliations)
}
