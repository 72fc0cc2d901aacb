package gtfsrt

import (
	"fmt"
	"io"
	"os"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
)

// PruneFeed removes from fm every entity tied to removed static data:
// trip updates and vehicle positions whose trip descriptor names a removed
// trip or route, and alert selectors naming a removed trip, route or agency.
// An alert left without any selector is removed as a whole. Other entity
// kinds are kept.
func PruneFeed(fm *gtfsrtpb.FeedMessage, removed Removed) Counts {
	c := Counts{Entities: len(fm.GetEntity())}
	kept := fm.Entity[:0]
	for _, e := range fm.GetEntity() {
		switch {
		case e.GetTripUpdate() != nil && removed.trip(e.GetTripUpdate().GetTrip()):
			c.Removed++
			continue
		case e.GetVehicle() != nil && removed.trip(e.GetVehicle().GetTrip()):
			c.Removed++
			continue
		case e.GetAlert() != nil:
			n := len(e.GetAlert().GetInformedEntity())
			dropped := removed.pruneSelectors(e.GetAlert())
			c.SelectorsRemoved += dropped
			if n > 0 && dropped == n {
				c.Removed++
				continue
			}
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(fm.Entity); i++ {
		fm.Entity[i] = nil
	}
	fm.Entity = kept
	return c
}

// PruneFile prunes the protobuf feed stored at path and replaces it
// atomically. The file is left alone when nothing was removed.
func PruneFile(path string, removed Removed) (Counts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Counts{}, &gtfs.FileError{Kind: gtfs.ErrFileAccess, Path: path, Err: err}
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return Counts{}, fmt.Errorf("decode feed %s: %w", path, err)
	}
	c := PruneFeed(&fm, removed)
	if c.Removed == 0 && c.SelectorsRemoved == 0 {
		return c, nil
	}
	out, err := proto.Marshal(&fm)
	if err != nil {
		return c, fmt.Errorf("encode feed %s: %w", path, err)
	}
	err = gtfs.ReplaceFile(path, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	})
	return c, err
}

func (r Removed) trip(td *gtfsrtpb.TripDescriptor) bool {
	if td == nil {
		return false
	}
	return (td.TripId != nil && has(r.Trips, td.GetTripId())) ||
		(td.RouteId != nil && has(r.Routes, td.GetRouteId()))
}

func (r Removed) selector(sel *gtfsrtpb.EntitySelector) bool {
	return r.trip(sel.GetTrip()) ||
		(sel.RouteId != nil && has(r.Routes, sel.GetRouteId())) ||
		(sel.AgencyId != nil && has(r.Agencies, sel.GetAgencyId()))
}

// pruneSelectors drops matching informed entities from a and returns how many were dropped.
func (r Removed) pruneSelectors(a *gtfsrtpb.Alert) int {
	kept := a.InformedEntity[:0]
	for _, sel := range a.InformedEntity {
		if r.selector(sel) {
			continue
		}
		kept = append(kept, sel)
	}
	dropped := len(a.InformedEntity) - len(kept)
	a.InformedEntity = kept
	return dropped
}

func has(l KeyLookup, key string) bool {
	return l != nil && l.Contains(key)
}
