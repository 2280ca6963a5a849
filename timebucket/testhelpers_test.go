package timebucket

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

var baseDay = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func at(minute int) time.Time {
	return baseDay.Add(time.Duration(minute) * time.Minute)
}

func newTrip(from, to string, startMinute, endMinute int) *tripdata.Trip {
	end := at(endMinute)
	if endMinute < startMinute {
		end = end.Add(24 * time.Hour)
	}
	return &tripdata.Trip{
		StartStationID: from,
		EndStationID:   to,
		StartedAt:      at(startMinute),
		EndedAt:        end,
	}
}

// tripPerMinute returns one trip starting and ending at every minute of the day
func tripPerMinute(t *testing.T) (*Index, []*tripdata.Trip) {
	t.Helper()
	trips := make([]*tripdata.Trip, MinutesPerDay)
	for m := range trips {
		trips[m] = newTrip("A", "B", m, m)
	}
	idx, err := Build(trips)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return idx, trips
}
