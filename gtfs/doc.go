/*
Package gtfs reads and rewrites the GTFS static tables touched by the pruner:
agency.txt, routes.txt, trips.txt and stop_times.txt.

Each table is described by a Table value (AgencyTable, RouteTable, TripTable,
StopTimeTable) that knows its file name, its column set and how to decode and
encode one row.

# Reading

Reader streams a table row by row. Every row comes back as a Result, which
is either a decoded record or a ParseError; a malformed row never aborts the
read, so callers decide per table whether failures are reported or ignored.

	r, err := gtfs.Open("feed/stop_times.txt", gtfs.StopTimeTable)
	if err != nil {
	    return err // *gtfs.FileError, errors.Is(err, gtfs.ErrFileAccess)
	}
	defer r.Close()
	for res := range r.All() {
	    if res.Failed() {
	        log.Warn("skipping row", "line", res.Line, "error", res.Err)
	        continue
	    }
	    use(res.Record)
	}
	if err := r.Err(); err != nil {
	    return err
	}

Small tables can be buffered in one call with ReadFile.

# Writing

Writer always emits the complete header of its table, and unset optional
fields are written as empty values. ReplaceFile wraps a write in a temporary
file that is renamed over the original only once it has been fully written
and synced:

	err := gtfs.ReplaceFile("feed/trips.txt", func(w io.Writer) error {
	    return gtfs.WriteAll(w, gtfs.TripTable, kept)
	})

A failed write leaves the original file untouched and no temporary file
behind. A failed rename is reported as ErrReplace.
*/
package gtfs
