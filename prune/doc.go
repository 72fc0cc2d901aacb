// Package prune removes every row that transitively belongs to a set of
// banned agencies from a GTFS feed directory.
//
// Removal cascades through the tables in dependency order:
//
//	banned agencies -> removed route ids -> removed trip ids -> removed stop_times rows
//
// Each step is a pure reducer (ReduceRoutes, ReduceTrips, FilterStopTimes)
// over a KeySet produced by the step before it. Pruner wires the reducers to
// the files: routes and trips are buffered, stop_times is streamed, and every
// rewritten table replaces its original through gtfs.ReplaceFile.
//
// Rows that fail to parse never abort a run. They are dropped silently from
// routes.txt and trips.txt, and logged as warnings for stop_times.txt.
package prune
