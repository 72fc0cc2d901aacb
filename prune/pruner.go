package prune

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gtfs-prune/config"
	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-prune/gtfsrt"
)

// Pruner removes the data of banned agencies from a feed directory.
type Pruner struct {
	cfg config.AppConfig
	log *slog.Logger
}

// New returns a Pruner for cfg. A nil log discards output.
func New(cfg config.AppConfig, log *slog.Logger) *Pruner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pruner{cfg: cfg, log: log}
}

// Run prunes the tables in dir in dependency order: agencies, routes, trips,
// stop times, then any configured realtime feeds. Each stage needs the
// complete key set of the stage before it.
//
// Every required file is checked before anything is written, so a missing
// table aborts the run with no output. A failure after that point keeps the
// replacements of the stages already done.
func (p *Pruner) Run(dir string) (*Report, error) {
	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Dir: dir}
	log := p.log.With("run_id", rep.RunID)

	paths := p.paths(dir)
	if err := preflight(paths); err != nil {
		return rep, err
	}

	agencies, _, err := gtfs.ReadFile(paths.agency, gtfs.AgencyTable)
	if err != nil {
		return rep, err
	}
	rep.Agencies = len(agencies)
	banned := BannedKeys(p.cfg.Prune.MatchMode, p.cfg.Prune.BannedAgencies, agencies)
	rep.BannedKeys = banned.Len()
	log.Debug("banned agency keys", "mode", p.cfg.Prune.MatchMode, "keys", banned.Sorted())

	removedRoutes, err := p.pruneRoutes(paths.routes, banned, rep, log)
	if err != nil {
		return rep, err
	}

	log.Info("pruning trips", "path", paths.trips)
	removedTrips, err := p.pruneTrips(paths.trips, removedRoutes, rep)
	if err != nil {
		return rep, err
	}
	log.Info("trips pruned", "counts", rep.Trips)

	log.Info("pruning stop times", "path", paths.stopTimes)
	if rep.StopTimes, err = p.pruneStopTimes(paths.stopTimes, removedTrips, log); err != nil {
		return rep, err
	}
	log.Info("stop times pruned", "counts", rep.StopTimes)

	removed := gtfsrt.Removed{Agencies: banned, Routes: removedRoutes, Trips: removedTrips}
	for i, path := range paths.realtime {
		name := p.cfg.Realtime.Feeds[i]
		c, err := gtfsrt.PruneFile(path, removed)
		if err != nil {
			return rep, err
		}
		rep.Realtime = append(rep.Realtime, FeedCounts{Feed: name, Counts: c})
		log.Info("realtime feed pruned", "feed", name, "entities", c.Entities, "removed", c.Removed)
	}

	rep.Duration = time.Since(start)
	return rep, nil
}

func (p *Pruner) pruneRoutes(path string, banned KeySet, rep *Report, log *slog.Logger) (KeySet, error) {
	routes, failed, err := gtfs.ReadFile(path, gtfs.RouteTable)
	if err != nil {
		return nil, err
	}
	kept, removed := ReduceRoutes(routes, banned)
	rep.Routes = TableCounts{
		Read:    len(routes) + len(failed),
		Kept:    len(kept),
		Removed: len(routes) - len(kept),
		Failed:  len(failed),
	}
	log.Info("routes classified", "counts", rep.Routes)
	if p.cfg.Prune.RewriteRoutes {
		if err := gtfs.ReplaceTable(path, gtfs.RouteTable, kept); err != nil {
			return nil, err
		}
	}
	return removed, nil
}

// pruneTrips buffers the whole trip table, classifies it and writes the
// survivors back. Rows that fail to parse are dropped without notice.
func (p *Pruner) pruneTrips(path string, removedRoutes KeySet, rep *Report) (KeySet, error) {
	trips, failed, err := gtfs.ReadFile(path, gtfs.TripTable)
	if err != nil {
		return nil, err
	}
	kept, removed := ReduceTrips(trips, removedRoutes)
	rep.Trips = TableCounts{
		Read:    len(trips) + len(failed),
		Kept:    len(kept),
		Removed: len(trips) - len(kept),
		Failed:  len(failed),
	}
	if err := gtfs.ReplaceTable(path, gtfs.TripTable, kept); err != nil {
		return nil, err
	}
	return removed, nil
}

func (p *Pruner) pruneStopTimes(path string, removedTrips KeySet, log *slog.Logger) (TableCounts, error) {
	var counts TableCounts
	err := gtfs.ReplaceFile(path, func(w io.Writer) error {
		r, err := gtfs.Open(path, gtfs.StopTimeTable)
		if err != nil {
			return err
		}
		// closed before the replacement is renamed over it
		defer r.Close()
		tw, err := gtfs.NewWriter(w, gtfs.StopTimeTable)
		if err != nil {
			return err
		}
		counts, err = FilterStopTimes(r, tw, removedTrips, log)
		return err
	})
	return counts, err
}

type feedPaths struct {
	agency    string
	routes    string
	trips     string
	stopTimes string
	realtime  []string // same order as cfg.Realtime.Feeds
}

func (p *Pruner) paths(dir string) feedPaths {
	t := p.cfg.Tables
	fp := feedPaths{
		agency:    filepath.Join(dir, t.Agency),
		routes:    filepath.Join(dir, t.Routes),
		trips:     filepath.Join(dir, t.Trips),
		stopTimes: filepath.Join(dir, t.StopTimes),
	}
	for _, name := range p.cfg.Realtime.Feeds {
		fp.realtime = append(fp.realtime, filepath.Join(dir, name))
	}
	return fp
}

func preflight(fp feedPaths) error {
	required := append([]string{fp.agency, fp.routes, fp.trips, fp.stopTimes}, fp.realtime...)
	var errs []error
	for _, path := range required {
		fi, err := os.Stat(path)
		if err != nil {
			errs = append(errs, &gtfs.FileError{Kind: gtfs.ErrFileAccess, Path: path, Err: err})
			continue
		}
		if fi.IsDir() {
			errs = append(errs, &gtfs.FileError{Kind: gtfs.ErrFileAccess, Path: path, Err: errors.New("is a directory")})
		}
	}
	return errors.Join(errs...)
}
