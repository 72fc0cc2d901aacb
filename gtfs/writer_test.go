package gtfs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-prune/gtfs"
)

func intPtr(v int) *int { return &v }

func TestWriter_FullHeaderAndEmptyOptionals(t *testing.T) {
	var buf bytes.Buffer
	trips := []gtfs.Trip{
		{TripID: "T1", ServiceID: "WK", RouteID: "R1"},
		{TripID: "T2", ServiceID: "WK", RouteID: "R2", Headsign: "Zürich, HB", DirectionID: intPtr(1), BikesAllowed: intPtr(0)},
	}

	require.NoError(t, gtfs.WriteAll(&buf, gtfs.TripTable, trips))

	want := "trip_id,service_id,route_id,shape_id,trip_headsign,trip_short_name,direction_id,block_id,wheelchair_accessible,bikes_allowed\n" +
		"T1,WK,R1,,,,,,,\n" +
		"T2,WK,R2,,\"Zürich, HB\",,1,,,0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_EmptyTableKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	w, err := gtfs.NewWriter(&buf, gtfs.StopTimeTable)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, "trip_id,arrival_time,departure_time,stop_id,stop_sequence,stop_headsign,pickup_type,drop_off_type\n", buf.String())
	assert.Equal(t, 0, w.Rows())
}

func TestWriter_RoundTripThroughReader(t *testing.T) {
	in := []gtfs.StopTime{
		{TripID: "T1", ArrivalTime: "24:30:00", DepartureTime: "24:31:00", StopID: "S1", StopSequence: 7, PickupType: intPtr(1)},
		{TripID: "T1", StopID: "S2", StopSequence: 8},
	}
	var buf bytes.Buffer
	require.NoError(t, gtfs.WriteAll(&buf, gtfs.StopTimeTable, in))

	r, err := gtfs.NewReader(&buf, gtfs.StopTimeTable)
	require.NoError(t, err)
	out, failed, err := r.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, failed)
	assert.Equal(t, in, out)
}
