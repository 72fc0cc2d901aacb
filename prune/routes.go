package prune

import "github.com/theoremus-urban-solutions/gtfs-prune/gtfs"

// ReduceRoutes splits routes by agency. A route whose agency_id is in banned
// is dropped and its id recorded in removed; every other route is kept in its
// original order, including routes pointing at agencies that do not exist.
// A route without an agency_id never matches, even when banned holds "".
func ReduceRoutes(routes []gtfs.Route, banned KeySet) (kept []gtfs.Route, removed KeySet) {
	removed = NewKeySet()
	kept = make([]gtfs.Route, 0, len(routes))
	for _, r := range routes {
		if r.AgencyID != "" && banned.Contains(r.AgencyID) {
			removed.Add(r.RouteID)
			continue
		}
		kept = append(kept, r)
	}
	return kept, removed
}
