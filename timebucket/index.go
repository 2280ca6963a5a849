package timebucket

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

const (
	// MinutesPerDay is the number of buckets per direction
	MinutesPerDay = 1440

	// HalfWindow is the distance in minutes from the window center to either edge
	HalfWindow = 60

	// NoFilter selects all trips regardless of time
	NoFilter = -1
)

// Buckets holds trips grouped by minute-of-day
type Buckets [MinutesPerDay][]*tripdata.Trip

// Index stores the departure and arrival buckets. Read-only after Build.
type Index struct {
	Departures Buckets
	Arrivals   Buckets
	count      int
}

// MinuteOfDay returns hour*60+minute of t in t's own location
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Build buckets every trip once by start minute and once by end minute.
// Station ids are not checked here.
func Build(trips []*tripdata.Trip) (*Index, error) {
	idx := &Index{}
	for i, trip := range trips {
		if trip == nil {
			return nil, fmt.Errorf("trip %d is nil: %w", i, tripdata.ErrInvalidInput)
		}
		if trip.StartedAt.IsZero() || trip.EndedAt.IsZero() {
			return nil, fmt.Errorf("trip %d has no timestamp: %w", i, tripdata.ErrInvalidInput)
		}
		start := MinuteOfDay(trip.StartedAt)
		end := MinuteOfDay(trip.EndedAt)
		idx.Departures[start] = append(idx.Departures[start], trip)
		idx.Arrivals[end] = append(idx.Arrivals[end], trip)
		idx.count++
	}
	return idx, nil
}

// Len returns the number of bucketed trips
func (idx *Index) Len() int { return idx.count }

// SelectDepartures returns trips that started inside the window around center
func (idx *Index) SelectDepartures(center int) ([]*tripdata.Trip, error) {
	return Select(&idx.Departures, center)
}

// SelectArrivals returns trips that ended inside the window around center
func (idx *Index) SelectArrivals(center int) ([]*tripdata.Trip, error) {
	return Select(&idx.Arrivals, center)
}

// HourCount is the number of trips bucketed into one hour of the day
type HourCount struct {
	Hour       int
	Departures int
	Arrivals   int
}

// Hourly folds the minute buckets into 24 hourly totals
func Hourly(idx *Index) []HourCount {
	out := make([]HourCount, 24)
	for m := 0; m < MinutesPerDay; m++ {
		h := m / 60
		out[h].Hour = h
		out[h].Departures += len(idx.Departures[m])
		out[h].Arrivals += len(idx.Arrivals[m])
	}
	return out
}
