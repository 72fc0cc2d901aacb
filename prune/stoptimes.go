package prune

import (
	"log/slog"

	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
)

// FilterStopTimes streams rows from r to w, dropping those whose trip_id is in
// removedTrips. Rows are written as soon as they are classified, so order is
// preserved and the table is never held in memory. A row that fails to parse
// is logged and skipped.
func FilterStopTimes(r *gtfs.Reader[gtfs.StopTime], w *gtfs.Writer[gtfs.StopTime], removedTrips KeySet, log *slog.Logger) (TableCounts, error) {
	var c TableCounts
	for res := range r.All() {
		c.Read++
		if res.Failed() {
			c.Failed++
			log.Warn("skipping malformed row",
				"table", res.Err.Table,
				"line", res.Line,
				"error", res.Err.Err,
			)
			continue
		}
		if removedTrips.Contains(res.Record.TripID) {
			c.Removed++
			continue
		}
		if err := w.Write(res.Record); err != nil {
			return c, err
		}
		c.Kept++
	}
	if err := r.Err(); err != nil {
		return c, err
	}
	return c, w.Flush()
}
