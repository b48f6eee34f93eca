package model

// Names of the system settings consulted by the affiliation governor.
const (
	SettingAffiliationMode = "affiliationMode"
	SettingAffiliationCaps = "affiliationCaps"
)

// AffiliationMode selects who may approve a group affiliation.
type AffiliationMode string

const (
	// HubzzApproval requires the actor to hold RoleHubzzInc; no cap applies.
	HubzzApproval AffiliationMode = "hubzz_approval"
	// ZoneOwnerApproval requires the actor to own the zone and enforces
	// the per-district cap.
	ZoneOwnerApproval AffiliationMode = "zone_owner_approval"
)

// Valid reports whether m is a known mode.
func (m AffiliationMode) Valid() bool {
	return m == HubzzApproval || m == ZoneOwnerApproval
}

// AffiliationCaps maps a district to the maximum number of affiliations a
// zone in that district may hold under ZoneOwnerApproval.
type AffiliationCaps map[District]int

// Cap returns the cap for d, or 0 when the district is not configured.
func (c AffiliationCaps) Cap(d District) int { return c[d] }

// SystemSetting is a named configuration value.  Value is either a
// string (affiliationMode) or a map (affiliationCaps).
type SystemSetting struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}
