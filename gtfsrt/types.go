package gtfsrt

// KeyLookup answers membership of a static-feed key (agency, route or trip id).
type KeyLookup interface {
	Contains(key string) bool
}

// Removed holds what the static pruning dropped. Nil lookups match nothing.
type Removed struct {
	Agencies KeyLookup
	Routes   KeyLookup
	Trips    KeyLookup
}

// Counts summarises one pruned realtime feed.
type Counts struct {
	Entities         int // entities in the feed before pruning
	Removed          int // entities dropped
	SelectorsRemoved int // alert informed_entity selectors dropped
}
