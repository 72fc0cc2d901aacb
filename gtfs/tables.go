package gtfs

import (
	"fmt"
	"strconv"
)

// Table binds a GTFS file name and its column schema to a record type.
// Columns is also the header written back when the table is rewritten.
type Table[T any] struct {
	Name    string
	Columns []string
	decode  func(r row) (T, error)
	encode  func(rec T) []string
}

// Decode converts one header-indexed record into T.
func (t Table[T]) Decode(header map[string]int, fields []string) (T, error) {
	return t.decode(row{index: header, fields: fields})
}

// Encode renders rec in Columns order; unset optional fields become "".
func (t Table[T]) Encode(rec T) []string { return t.encode(rec) }

var AgencyTable = Table[Agency]{
	Name: "agency.txt",
	Columns: []string{
		"agency_id", "agency_name", "agency_url", "agency_timezone",
		"agency_lang", "agency_phone", "agency_fare_url", "agency_email",
	},
	decode: func(r row) (Agency, error) {
		var a Agency
		var err error
		a.AgencyID = r.get("agency_id")
		if a.Name, err = r.required("agency_name"); err != nil {
			return a, err
		}
		if a.URL, err = r.required("agency_url"); err != nil {
			return a, err
		}
		if a.Timezone, err = r.required("agency_timezone"); err != nil {
			return a, err
		}
		a.Lang = r.get("agency_lang")
		a.Phone = r.get("agency_phone")
		a.FareURL = r.get("agency_fare_url")
		a.Email = r.get("agency_email")
		return a, nil
	},
	encode: func(a Agency) []string {
		return []string{a.AgencyID, a.Name, a.URL, a.Timezone, a.Lang, a.Phone, a.FareURL, a.Email}
	},
}

var RouteTable = Table[Route]{
	Name: "routes.txt",
	Columns: []string{
		"route_id", "route_short_name", "route_long_name", "route_desc", "route_type",
		"route_url", "agency_id", "route_sort_order", "route_color", "route_text_color",
		"continuous_pickup", "continuous_drop_off",
	},
	decode: func(r row) (Route, error) {
		var rt Route
		var err error
		if rt.RouteID, err = r.required("route_id"); err != nil {
			return rt, err
		}
		rt.ShortName = r.get("route_short_name")
		rt.LongName = r.get("route_long_name")
		rt.Desc = r.get("route_desc")
		if rt.Type, err = r.requiredUint("route_type", 8); err != nil {
			return rt, err
		}
		rt.URL = r.get("route_url")
		rt.AgencyID = r.get("agency_id")
		if rt.SortOrder, err = r.optionalUint("route_sort_order", 32); err != nil {
			return rt, err
		}
		rt.Color = r.get("route_color")
		rt.TextColor = r.get("route_text_color")
		if rt.ContinuousPickup, err = r.optionalUint("continuous_pickup", 8); err != nil {
			return rt, err
		}
		if rt.ContinuousDropOff, err = r.optionalUint("continuous_drop_off", 8); err != nil {
			return rt, err
		}
		return rt, nil
	},
	encode: func(rt Route) []string {
		return []string{
			rt.RouteID, rt.ShortName, rt.LongName, rt.Desc, strconv.Itoa(rt.Type),
			rt.URL, rt.AgencyID, formatOptional(rt.SortOrder), rt.Color, rt.TextColor,
			formatOptional(rt.ContinuousPickup), formatOptional(rt.ContinuousDropOff),
		}
	},
}

var TripTable = Table[Trip]{
	Name: "trips.txt",
	Columns: []string{
		"trip_id", "service_id", "route_id", "shape_id", "trip_headsign",
		"trip_short_name", "direction_id", "block_id", "wheelchair_accessible", "bikes_allowed",
	},
	decode: func(r row) (Trip, error) {
		var t Trip
		var err error
		if t.TripID, err = r.required("trip_id"); err != nil {
			return t, err
		}
		if t.ServiceID, err = r.required("service_id"); err != nil {
			return t, err
		}
		if t.RouteID, err = r.required("route_id"); err != nil {
			return t, err
		}
		t.ShapeID = r.get("shape_id")
		t.Headsign = r.get("trip_headsign")
		t.ShortName = r.get("trip_short_name")
		if t.DirectionID, err = r.optionalUint("direction_id", 8); err != nil {
			return t, err
		}
		t.BlockID = r.get("block_id")
		if t.WheelchairAccessible, err = r.optionalUint("wheelchair_accessible", 8); err != nil {
			return t, err
		}
		if t.BikesAllowed, err = r.optionalUint("bikes_allowed", 8); err != nil {
			return t, err
		}
		return t, nil
	},
	encode: func(t Trip) []string {
		return []string{
			t.TripID, t.ServiceID, t.RouteID, t.ShapeID, t.Headsign,
			t.ShortName, formatOptional(t.DirectionID), t.BlockID,
			formatOptional(t.WheelchairAccessible), formatOptional(t.BikesAllowed),
		}
	},
}

var StopTimeTable = Table[StopTime]{
	Name: "stop_times.txt",
	Columns: []string{
		"trip_id", "arrival_time", "departure_time", "stop_id", "stop_sequence",
		"stop_headsign", "pickup_type", "drop_off_type",
	},
	decode: func(r row) (StopTime, error) {
		var st StopTime
		var err error
		if st.TripID, err = r.required("trip_id"); err != nil {
			return st, err
		}
		st.ArrivalTime = r.get("arrival_time")
		st.DepartureTime = r.get("departure_time")
		if st.StopID, err = r.required("stop_id"); err != nil {
			return st, err
		}
		if st.StopSequence, err = r.requiredUint("stop_sequence", 32); err != nil {
			return st, err
		}
		st.StopHeadsign = r.get("stop_headsign")
		if st.PickupType, err = r.optionalUint("pickup_type", 8); err != nil {
			return st, err
		}
		if st.DropOffType, err = r.optionalUint("drop_off_type", 8); err != nil {
			return st, err
		}
		return st, nil
	},
	encode: func(st StopTime) []string {
		return []string{
			st.TripID, st.ArrivalTime, st.DepartureTime, st.StopID, strconv.Itoa(st.StopSequence),
			st.StopHeadsign, formatOptional(st.PickupType), formatOptional(st.DropOffType),
		}
	},
}

// row gives header-indexed access to one CSV record
type row struct {
	index  map[string]int
	fields []string
}

func (r row) lookup(col string) (string, bool) {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

func (r row) get(col string) string {
	v, _ := r.lookup(col)
	return v
}

func (r row) required(col string) (string, error) {
	v, ok := r.lookup(col)
	if !ok {
		return "", fmt.Errorf("missing column %q", col)
	}
	return v, nil
}

func (r row) requiredUint(col string, bits int) (int, error) {
	v, err := r.required(col)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return int(n), nil
}

func (r row) optionalUint(col string, bits int) (*int, error) {
	v := r.get(col)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, bits)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}
	i := int(n)
	return &i, nil
}

func formatOptional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
