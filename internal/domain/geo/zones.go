// Package geo is the single source of truth for Nigeria's geopolitical
// zones and the zone→state mapping. Zonal arrays everywhere in the system
// align 1:1 with Zones, never with alphabetical order.
package geo

import "strings"

var Zones = []string{
	"North Central",
	"North East",
	"North West",
	"South East",
	"South South",
	"South West",
}

var ZoneStates = map[string][]string{
	"North Central": {"Benue", "Kogi", "Kwara", "Nasarawa", "Niger", "Plateau", "FCT"},
	"North East":    {"Adamawa", "Bauchi", "Borno", "Gombe", "Taraba", "Yobe"},
	"North West":    {"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Sokoto", "Zamfara"},
	"South East":    {"Abia", "Anambra", "Ebonyi", "Enugu", "Imo"},
	"South South":   {"Akwa Ibom", "Bayelsa", "Cross River", "Delta", "Edo", "Rivers"},
	"South West":    {"Ekiti", "Lagos", "Ogun", "Ondo", "Osun", "Oyo"},
}

// ZoneIndex returns the fixed position of a zone, or -1.
func ZoneIndex(zone string) int {
	for i, z := range Zones {
		if z == zone {
			return i
		}
	}
	return -1
}

// StatesForZone returns the member states in mapping order, nil for an
// unknown zone.
func StatesForZone(zone string) []string {
	return ZoneStates[zone]
}

// AllStates returns every state in zone order, 37 entries including FCT.
func AllStates() []string {
	states := make([]string, 0, 37)
	for _, zone := range Zones {
		states = append(states, ZoneStates[zone]...)
	}
	return states
}

// ZoneOfState resolves a state to its zone by the same loose matching
// MatchState uses.
func ZoneOfState(name string) (string, bool) {
	_, zone, ok := MatchState(name)
	return zone, ok
}

// MatchState resolves a free-form name (typically a GeoJSON feature
// property) to a canonical state. Best effort: exact match first, then
// case-insensitive substring containment in either direction to tolerate
// suffixed variants ("Lagos State", "Kano Province"). Spelling variants
// with different separators still miss; this is a heuristic, not a
// guarantee.
func MatchState(name string) (state, zone string, ok bool) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "", "", false
	}

	for _, z := range Zones {
		for _, s := range ZoneStates[z] {
			if s == clean {
				return s, z, true
			}
		}
	}

	lower := strings.ToLower(clean)
	for _, z := range Zones {
		for _, s := range ZoneStates[z] {
			sl := strings.ToLower(s)
			if strings.Contains(lower, sl) || strings.Contains(sl, lower) {
				return s, z, true
			}
		}
	}

	return "", "", false
}

// ResolveFeatureValue resolves a displayed value for a map feature:
// per-state value when one matches, else the parent zone's aggregate,
// else nothing. zonal must align with Zones.
func ResolveFeatureValue(featureName string, stateData map[string]float64, zonal []float64) (float64, bool) {
	state, zone, ok := MatchState(featureName)
	if !ok {
		return 0, false
	}

	if v, found := lookupLoose(stateData, state, featureName); found {
		return v, true
	}

	if idx := ZoneIndex(zone); idx >= 0 && idx < len(zonal) {
		return zonal[idx], true
	}

	return 0, false
}

func lookupLoose(stateData map[string]float64, state, raw string) (float64, bool) {
	if len(stateData) == 0 {
		return 0, false
	}

	if v, ok := stateData[state]; ok {
		return v, true
	}

	clean := strings.ToLower(strings.TrimSpace(raw))
	for k, v := range stateData {
		kl := strings.ToLower(k)
		if kl == clean || strings.Contains(clean, kl) || strings.Contains(kl, clean) {
			return v, true
		}
	}

	return 0, false
}
