package prune

import (
	"log/slog"
	"time"

	"github.com/theoremus-urban-solutions/gtfs-prune/gtfsrt"
)

// TableCounts tallies one table. Read counts every data row seen, so
// Read == Kept + Removed + Failed.
type TableCounts struct {
	Read    int
	Kept    int
	Removed int
	Failed  int
}

func (c TableCounts) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("read", c.Read),
		slog.Int("kept", c.Kept),
		slog.Int("removed", c.Removed),
		slog.Int("failed", c.Failed),
	)
}

// FeedCounts is the outcome of pruning one realtime feed file.
type FeedCounts struct {
	Feed string
	gtfsrt.Counts
}

// Report describes one pruning run.
type Report struct {
	RunID      string
	Dir        string
	Agencies   int // agency rows decoded
	BannedKeys int
	Routes     TableCounts
	Trips      TableCounts
	StopTimes  TableCounts
	Realtime   []FeedCounts
	Duration   time.Duration
}

func (r *Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("run_id", r.RunID),
		slog.String("dir", r.Dir),
		slog.Int("agencies", r.Agencies),
		slog.Int("banned_keys", r.BannedKeys),
		slog.Any("routes", r.Routes),
		slog.Any("trips", r.Trips),
		slog.Any("stop_times", r.StopTimes),
		slog.Duration("duration", r.Duration),
	}
	for _, f := range r.Realtime {
		attrs = append(attrs, slog.Group("realtime."+f.Feed,
			slog.Int("entities", f.Entities),
			slog.Int("removed", f.Removed),
			slog.Int("selectors_removed", f.SelectorsRemoved),
		))
	}
	return slog.GroupValue(attrs...)
}
