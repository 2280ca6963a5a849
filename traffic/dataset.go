package traffic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/timebucket"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/utils"
)

// Options tunes the radius ranges used by Query
type Options struct {
	UnfilteredRadius Range
	FilteredRadius   Range
}

// DefaultOptions returns the stock radius ranges
func DefaultOptions() Options {
	return Options{
		UnfilteredRadius: UnfilteredRadius,
		FilteredRadius:   FilteredRadius,
	}
}

// Dataset owns the loaded stations and the bucket index.
// It is never modified after NewDataset, so Query is safe for concurrent use.
type Dataset struct {
	stations []tripdata.Station
	index    *timebucket.Index
	opts     Options

	// all-day busiest station; the radius domain for every query
	domainMax int
}

// StationView is one keyed record for the binding layer
type StationView struct {
	tripdata.Station
	Radius    float64 `json:"radius"`
	FlowRatio float64 `json:"flowRatio"`
	Title     string  `json:"title"`
}

// View is the result of one Query
type View struct {
	Filter      int           `json:"filter"`
	Label       string        `json:"label"`
	WindowLower int           `json:"windowLower"`
	WindowUpper int           `json:"windowUpper"`
	Departures  int           `json:"departureTrips"`
	Arrivals    int           `json:"arrivalTrips"`
	MaxTraffic  int           `json:"maxTraffic"`
	Stations    []StationView `json:"stations"`
}

// NewDataset copies stations and buckets trips once
func NewDataset(stations []tripdata.Station, trips []*tripdata.Trip, opts Options) (*Dataset, error) {
	idx, err := timebucket.Build(trips)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket trips: %w", err)
	}
	own := make([]tripdata.Station, len(stations))
	copy(own, stations)

	departures, _ := idx.SelectDepartures(timebucket.NoFilter)
	arrivals, _ := idx.SelectArrivals(timebucket.NoFilter)
	domainMax := MaxTraffic(ComputeStationTraffic(own, departures, arrivals))

	log.Debug().Int("stations", len(own)).Int("trips", idx.Len()).Int("maxTraffic", domainMax).Msg("Dataset ready")
	return &Dataset{stations: own, index: idx, opts: opts, domainMax: domainMax}, nil
}

// Index exposes the bucket index for read-only reporting
func (d *Dataset) Index() *timebucket.Index { return d.index }

// DomainMax is the all-day traffic of the busiest station
func (d *Dataset) DomainMax() int { return d.domainMax }

// Stations returns a copy of the station list without derived counts
func (d *Dataset) Stations() []tripdata.Station {
	out := make([]tripdata.Station, len(d.stations))
	copy(out, d.stations)
	return out
}

// Query computes the station traffic view for a slider value (timebucket.NoFilter or 0..1439).
// Radii are always scaled against the all-day maximum; only the output range follows the filter.
func (d *Dataset) Query(center int) (*View, error) {
	departures, err := d.index.SelectDepartures(center)
	if err != nil {
		return nil, err
	}
	arrivals, err := d.index.SelectArrivals(center)
	if err != nil {
		return nil, err
	}

	stations := ComputeStationTraffic(d.stations, departures, arrivals)
	highest := MaxTraffic(stations)

	view := &View{
		Filter:      center,
		WindowLower: -1,
		WindowUpper: -1,
		Departures:  len(departures),
		Arrivals:    len(arrivals),
		MaxTraffic:  highest,
		Stations:    make([]StationView, len(stations)),
	}

	radius := d.opts.UnfilteredRadius
	if center != timebucket.NoFilter {
		radius = d.opts.FilteredRadius
		view.Label = utils.FormatMinuteOfDay(center)
		view.WindowLower, view.WindowUpper = timebucket.Bounds(center)
	}
	scale := NewSqrtScale(d.domainMax, radius)

	for i, s := range stations {
		ratio, ok := FlowRatio(s.Departures, s.TotalTraffic)
		view.Stations[i] = StationView{
			Station:   s,
			Radius:    scale.Radius(s.TotalTraffic),
			FlowRatio: QuantizeFlow(ratio, ok),
			Title:     fmt.Sprintf("%d trips (%d departures, %d arrivals)", s.TotalTraffic, s.Departures, s.Arrivals),
		}
	}
	return view, nil
}
