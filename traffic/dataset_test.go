package traffic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/timebucket"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

func newScenarioDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := NewDataset(scenarioStations(), scenarioTrips(), DefaultOptions())
	require.NoError(t, err)
	return d
}

func viewByID(v *View) map[string]StationView {
	out := make(map[string]StationView, len(v.Stations))
	for _, s := range v.Stations {
		out[s.ID] = s
	}
	return out
}

func TestDataset_QueryNoFilter(t *testing.T) {
	d := newScenarioDataset(t)

	view, err := d.Query(timebucket.NoFilter)
	require.NoError(t, err)

	assert.Equal(t, timebucket.NoFilter, view.Filter)
	assert.Empty(t, view.Label)
	assert.Equal(t, -1, view.WindowLower)
	assert.Equal(t, -1, view.WindowUpper)
	assert.Equal(t, 3, view.Departures)
	assert.Equal(t, 3, view.Arrivals)
	assert.Equal(t, 4, view.MaxTraffic)

	got := viewByID(view)
	a, b := got["A"], got["B"]
	assert.Equal(t, 2, a.Departures)
	assert.Equal(t, 2, a.Arrivals)
	assert.Equal(t, 4, a.TotalTraffic)
	assert.Equal(t, 1, b.Departures)
	assert.Equal(t, 1, b.Arrivals)
	assert.Equal(t, 2, b.TotalTraffic)

	assert.InDelta(t, 25, a.Radius, 1e-9)
	assert.InDelta(t, 25*0.7071067811865476, b.Radius, 1e-9)
	assert.Equal(t, 0.5, a.FlowRatio)
	assert.Equal(t, "4 trips (2 departures, 2 arrivals)", a.Title)
}

func TestDataset_QueryMorningWindow(t *testing.T) {
	d := newScenarioDataset(t)

	view, err := d.Query(485)
	require.NoError(t, err)

	assert.Equal(t, "8:05 AM", view.Label)
	assert.Equal(t, 425, view.WindowLower)
	assert.Equal(t, 545, view.WindowUpper)
	// trips 1 and 2 start (485, 530) and end (500, 535) inside the window, trip 3 does neither
	assert.Equal(t, 2, view.Departures)
	assert.Equal(t, 2, view.Arrivals)

	got := viewByID(view)
	assert.Equal(t, 2, got["A"].Departures)
	assert.Equal(t, 1, got["A"].Arrivals)
	assert.Equal(t, 3, got["A"].TotalTraffic)
	assert.Equal(t, 0, got["B"].Departures)
	assert.Equal(t, 1, got["B"].Arrivals)
	assert.Equal(t, 1, got["B"].TotalTraffic)

	// scaled against the all-day max of 4: 3 + 47*sqrt(3/4)
	assert.Equal(t, 3, view.MaxTraffic)
	assert.InDelta(t, 43.7032, got["A"].Radius, 1e-4)
	assert.InDelta(t, 26.5, got["B"].Radius, 1e-9)
	assert.Equal(t, 1.0, got["A"].FlowRatio)
	assert.Equal(t, 0.0, got["B"].FlowRatio)

	unfiltered, err := d.Query(timebucket.NoFilter)
	require.NoError(t, err)
	assert.NotEqual(t, viewByID(unfiltered)["A"].TotalTraffic, got["A"].TotalTraffic)
}

func TestDataset_QueryMidnightWindow(t *testing.T) {
	d := newScenarioDataset(t)

	view, err := d.Query(0)
	require.NoError(t, err)

	assert.Equal(t, "12:00 AM", view.Label)
	got := viewByID(view)
	// trip 3 departs B at 23:50 and arrives at A at 00:10, both inside [23:00, 01:00)
	assert.Equal(t, 1, got["B"].Departures)
	assert.Equal(t, 1, got["A"].Arrivals)
	assert.Equal(t, 0, got["A"].Departures)
	assert.Equal(t, 0, got["B"].Arrivals)
}

func TestDataset_EmptyWindowStaysVisible(t *testing.T) {
	d := newScenarioDataset(t)

	view, err := d.Query(720)
	require.NoError(t, err)

	assert.Equal(t, 0, view.MaxTraffic)
	for _, s := range view.Stations {
		assert.Equal(t, 0, s.TotalTraffic)
		assert.InDelta(t, 3, s.Radius, 1e-9)
		assert.Equal(t, 0.5, s.FlowRatio)
	}
}

func TestDataset_QueryInvalidFilter(t *testing.T) {
	d := newScenarioDataset(t)

	_, err := d.Query(1440)
	assert.ErrorIs(t, err, tripdata.ErrInvalidInput)
}

func TestDataset_RejectsBadTrips(t *testing.T) {
	trips := append(scenarioTrips(), &tripdata.Trip{StartStationID: "A"})
	_, err := NewDataset(scenarioStations(), trips, DefaultOptions())
	assert.ErrorIs(t, err, tripdata.ErrInvalidInput)
}

func TestDataset_DoesNotShareStations(t *testing.T) {
	stations := scenarioStations()
	d, err := NewDataset(stations, scenarioTrips(), DefaultOptions())
	require.NoError(t, err)

	stations[0].ID = "changed"
	assert.Equal(t, "A", d.Stations()[0].ID)

	view, err := d.Query(timebucket.NoFilter)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Stations()[0].TotalTraffic, "queries never write back")
	assert.Equal(t, 4, view.Stations[0].TotalTraffic)
}

func TestDataset_ConcurrentQueries(t *testing.T) {
	d := newScenarioDataset(t)
	expected, err := d.Query(485)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*View, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = d.Query(485)
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, expected, v)
	}
}

func TestDataset_RadiusDomainIsAllDay(t *testing.T) {
	d := newScenarioDataset(t)
	assert.Equal(t, 4, d.DomainMax())
	assert.Equal(t, 3, d.Index().Len())

	for _, center := range []int{timebucket.NoFilter, 0, 485, 720} {
		view, err := d.Query(center)
		require.NoError(t, err)
		for _, s := range view.Stations {
			r := FilteredRadius
			if center == timebucket.NoFilter {
				r = UnfilteredRadius
			}
			assert.InDelta(t, NewSqrtScale(4, r).Radius(s.TotalTraffic), s.Radius, 1e-9, "center %d station %s", center, s.ID)
		}
	}

	// the busiest station of a window is not drawn at the top of the range
	view, err := d.Query(0)
	require.NoError(t, err)
	assert.Less(t, viewByID(view)["A"].Radius, FilteredRadius[1])
}

func TestDataset_NoTripsUsesRangeMidpoint(t *testing.T) {
	d, err := NewDataset(scenarioStations(), nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, d.DomainMax())

	view, err := d.Query(485)
	require.NoError(t, err)
	for _, s := range view.Stations {
		assert.InDelta(t, 26.5, s.Radius, 1e-9)
	}
}

func TestDataset_CustomRadius(t *testing.T) {
	d, err := NewDataset(scenarioStations(), scenarioTrips(), Options{
		UnfilteredRadius: Range{1, 10},
		FilteredRadius:   Range{2, 20},
	})
	require.NoError(t, err)

	view, err := d.Query(timebucket.NoFilter)
	require.NoError(t, err)
	assert.InDelta(t, 10, viewByID(view)["A"].Radius, 1e-9)
}
