package tripdata

import (
	"errors"
	"time"
)

// ErrInvalidInput classifies malformed trip records, out-of-range filter values and similar caller errors
var ErrInvalidInput = errors.New("invalid input")

// Trip is a single bike-share ride. Immutable once loaded.
type Trip struct {
	RideID         string
	RideableType   string
	MemberCasual   string
	StartStationID string
	EndStationID   string
	StartedAt      time.Time
	EndedAt        time.Time
}

// Station is a dock location keyed by its short name. Departures, Arrivals and TotalTraffic
// are derived per query and never persisted.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Longitude float64 `json:"lon"`
	Latitude  float64 `json:"lat"`
	Capacity  int     `json:"capacity,omitempty"`

	Departures   int `json:"departures"`
	Arrivals     int `json:"arrivals"`
	TotalTraffic int `json:"totalTraffic"`
}

// tripRecord mirrors one row of the trips CSV
type tripRecord struct {
	RideID         string `csv:"ride_id"`
	RideableType   string `csv:"rideable_type"`
	StartedAt      string `csv:"started_at"`
	EndedAt        string `csv:"ended_at"`
	StartStationID string `csv:"start_station_id"`
	EndStationID   string `csv:"end_station_id"`
	MemberCasual   string `csv:"member_casual"`
}

// stationFeed is the GBFS-like station_information document
type stationFeed struct {
	Data struct {
		Stations []map[string]any `json:"stations"`
	} `json:"data"`
}
