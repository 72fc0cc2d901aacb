package prune

import (
	"github.com/theoremus-urban-solutions/gtfs-prune/config"
	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
)

// BannedKeys builds the set that routes' agency_id values are matched against.
//
// With config.MatchAgencyID the banned list is used verbatim, so a route is
// only removed when its agency_id literally equals one of the listed names.
// With config.MatchAgencyName the listed names are looked up in agencies and
// the ids of the matching agencies form the set. Agencies without an id are
// never added, so routes without an agency_id cannot match by accident.
func BannedKeys(mode string, banned []string, agencies []gtfs.Agency) KeySet {
	if mode != config.MatchAgencyName {
		return NewKeySet(banned...)
	}
	names := NewKeySet(banned...)
	keys := NewKeySet()
	for _, a := range agencies {
		if a.AgencyID != "" && names.Contains(a.Name) {
			keys.Add(a.AgencyID)
		}
	}
	return keys
}
