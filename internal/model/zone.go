package model

import (
	"maps"
	"slices"
)

// District categorises a zone and selects its affiliation cap.
type District string

const (
	DistrictCentral District = "central"
	DistrictMid     District = "mid"
	DistrictOuter   District = "outer"
)

// Valid reports whether d is one of the known districts.
func (d District) Valid() bool {
	switch d {
	case DistrictCentral, DistrictMid, DistrictOuter:
		return true
	}
	return false
}

// RevenueCategory names a bucket of zone revenue.
type RevenueCategory string

const (
	RevenuePropertyInitialSales RevenueCategory = "propertyInitialSales"
	RevenuePOAFees              RevenueCategory = "poaFees"
	RevenueEvents               RevenueCategory = "events"
)

// RevenueCategories lists every category in a stable order.
var RevenueCategories = []RevenueCategory{RevenuePropertyInitialSales, RevenuePOAFees, RevenueEvents}

// Revenue maps a category to the HBC accrued in it.
type Revenue map[RevenueCategory]HBC

// NewRevenue returns a Revenue with every category present at zero.
func NewRevenue() Revenue {
	r := make(Revenue, len(RevenueCategories))
	for _, c := range RevenueCategories {
		r[c] = 0
	}
	return r
}

// Zone is a parcel of the world owned by a player.  Groups affiliate with
// zones and host events in them; the owner collects a share of ticket
// sales which is also tracked as zone revenue.
//
// Fields:
//  ID                – identifier assigned by the store.
//  OwnerID           – player who owns the zone.
//  District          – central, mid or outer.
//  Affiliations      – groups linked to this zone, in creation order.
//  CumulativeRevenue – all-time revenue per category.
//  MonthlyRevenue    – revenue per category for the current period.
type Zone struct {
	ID                uint64             `json:"id"`
	OwnerID           uint64             `json:"owner_id"`
	District          District           `json:"district"`
	Affiliations      []GroupAffiliation `json:"affiliations"`
	CumulativeRevenue Revenue            `json:"cumulative_revenue_cents"`
	MonthlyRevenue    Revenue            `json:"monthly_revenue_cents"`
}

// Clone returns a deep copy of the zone.
func (z Zone) Clone() Zone {
	z.Affiliations = slices.Clone(z.Affiliations)
	z.CumulativeRevenue = maps.Clone(z.CumulativeRevenue)
	z.MonthlyRevenue = maps.Clone(z.MonthlyRevenue)
	return z
}

// GroupAffiliation is a sanctioned link between a group and a zone.
type GroupAffiliation struct {
	GroupID uint64 `json:"group_id"`
	ZoneID  uint64 `json:"zone_id"`
}
