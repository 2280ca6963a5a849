package main

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/timebucket"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

// loadDataset fetches both documents, parses them and builds the bucket index.
// Any failure aborts the load; nothing is rendered from partial data.
func loadDataset(ctx context.Context, cfg *config.AppConfig) (*traffic.Dataset, error) {
	if cfg.Data.TripsURL == "" || cfg.Data.StationsURL == "" {
		return nil, fmt.Errorf("both trips and stations sources are required: %w", tripdata.ErrInvalidInput)
	}

	loc, err := time.LoadLocation(cfg.Data.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Data.Timezone, err)
	}
	fetcher := newFetcher(cfg)

	var trips []*tripdata.Trip
	var stations []tripdata.Station

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		trips, err = loadTrips(ctx, fetcher, cfg, loc)
		return err
	})
	p.Go(func(ctx context.Context) error {
		raw, err := fetcher.Fetch(ctx, cfg.Data.StationsURL)
		if err != nil {
			return fmt.Errorf("stations: %w", err)
		}
		stations, err = tripdata.ParseStations(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("stations: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		log.Error().Err(err).Msg("Failed to load data")
		return nil, err
	}

	opts := traffic.Options{
		UnfilteredRadius: traffic.Range{cfg.Scale.Unfiltered[0], cfg.Scale.Unfiltered[1]},
		FilteredRadius:   traffic.Range{cfg.Scale.Filtered[0], cfg.Scale.Filtered[1]},
	}
	return traffic.NewDataset(stations, trips, opts)
}

// loadIndex buckets the trips CSV on its own, for reports that never look at stations
func loadIndex(ctx context.Context, cfg *config.AppConfig) (*timebucket.Index, error) {
	if cfg.Data.TripsURL == "" {
		return nil, fmt.Errorf("trips source is required: %w", tripdata.ErrInvalidInput)
	}
	loc, err := time.LoadLocation(cfg.Data.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Data.Timezone, err)
	}

	trips, err := loadTrips(ctx, newFetcher(cfg), cfg, loc)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load data")
		return nil, err
	}
	return timebucket.Build(trips)
}

func newFetcher(cfg *config.AppConfig) *tripdata.Fetcher {
	return tripdata.NewFetcher(time.Duration(cfg.Data.TimeoutMS) * time.Millisecond)
}

func loadTrips(ctx context.Context, fetcher *tripdata.Fetcher, cfg *config.AppConfig, loc *time.Location) ([]*tripdata.Trip, error) {
	raw, err := fetcher.Fetch(ctx, cfg.Data.TripsURL)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	trips, err := tripdata.ParseTrips(bytes.NewReader(raw), tripdata.ParseOptions{
		Location:      loc,
		SkipMalformed: cfg.Data.SkipMalformedTrips,
	})
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	return trips, nil
}
