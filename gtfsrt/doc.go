// Package gtfsrt prunes GTFS-Realtime protobuf feeds that sit next to a
// static feed, so they stop referring to trips, routes and agencies that the
// static pruning removed.
//
// It handles three entity kinds:
//   - Trip Updates: dropped when their trip descriptor names a removed trip or route
//   - Vehicle Positions: same rule as trip updates
//   - Service Alerts: informed entities naming removed data are stripped, and
//     an alert left with none is dropped
package gtfsrt
