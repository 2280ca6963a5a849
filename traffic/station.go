package traffic

import (
	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

// ComputeStationTraffic counts departures by start station and arrivals by end station and
// returns a copy of stations with the derived fields set. Stations without trips keep zero counts;
// trips referencing unknown stations are ignored.
func ComputeStationTraffic(stations []tripdata.Station, departureTrips, arrivalTrips []*tripdata.Trip) []tripdata.Station {
	departures := make(map[string]int, len(stations))
	for _, t := range departureTrips {
		departures[t.StartStationID]++
	}
	arrivals := make(map[string]int, len(stations))
	for _, t := range arrivalTrips {
		arrivals[t.EndStationID]++
	}

	out := make([]tripdata.Station, len(stations))
	for i, s := range stations {
		s.Departures = departures[s.ID]
		s.Arrivals = arrivals[s.ID]
		s.TotalTraffic = s.Departures + s.Arrivals
		out[i] = s
	}
	return out
}

// MaxTraffic returns the largest TotalTraffic, 0 for no stations
func MaxTraffic(stations []tripdata.Station) int {
	highest := 0
	for _, s := range stations {
		if s.TotalTraffic > highest {
			highest = s.TotalTraffic
		}
	}
	return highest
}
