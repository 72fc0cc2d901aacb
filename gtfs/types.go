package gtfs

// Agency is a row of agency.txt. The table is only ever read.
type Agency struct {
	AgencyID string // may be empty for single-agency feeds
	Name     string
	URL      string
	Timezone string
	Lang     string
	Phone    string
	FareURL  string
	Email    string
}

// Route is a row of routes.txt
type Route struct {
	RouteID           string
	ShortName         string
	LongName          string
	Desc              string
	Type              int
	URL               string
	AgencyID          string // "" when the column is absent or empty
	SortOrder         *int
	Color             string
	TextColor         string
	ContinuousPickup  *int
	ContinuousDropOff *int
}

// Trip is a row of trips.txt
type Trip struct {
	TripID               string
	ServiceID            string
	RouteID              string
	ShapeID              string
	Headsign             string
	ShortName            string
	DirectionID          *int // 0|1
	BlockID              string
	WheelchairAccessible *int
	BikesAllowed         *int
}

// StopTime is a row of stop_times.txt. Times are kept verbatim (HH:MM:SS, hours may exceed 24).
type StopTime struct {
	TripID        string
	ArrivalTime   string
	DepartureTime string
	StopID        string
	StopSequence  int
	StopHeadsign  string
	PickupType    *int
	DropOffType   *int
}
