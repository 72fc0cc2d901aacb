package prune

import "github.com/theoremus-urban-solutions/gtfs-prune/gtfs"

// ReduceTrips drops every trip whose route_id is in removedRoutes and returns
// the survivors in order along with the ids of the dropped trips.
func ReduceTrips(trips []gtfs.Trip, removedRoutes KeySet) (kept []gtfs.Trip, removed KeySet) {
	removed = NewKeySet()
	kept = make([]gtfs.Trip, 0, len(trips))
	for _, t := range trips {
		if removedRoutes.Contains(t.RouteID) {
			removed.Add(t.TripID)
			continue
		}
		kept = append(kept, t)
	}
	return kept, removed
}
