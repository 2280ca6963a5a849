/*
Package tripdata provides the bike-share trip and station records and their loaders.

This package is data-source agnostic at its core - ParseTrips and ParseStations accept an
io.Reader. The Fetcher is a small helper that reads either an HTTP(S) URL or a local path.

# Basic Usage

	fetcher := tripdata.NewFetcher(30 * time.Second)
	raw, err := fetcher.Fetch(ctx, "https://dsc106.com/labs/lab07/data/bluebikes-traffic-2024-03.csv")
	if err != nil {
	    return err
	}
	loc, _ := time.LoadLocation("America/New_York")
	trips, err := tripdata.ParseTrips(bytes.NewReader(raw), tripdata.ParseOptions{Location: loc})

# Timestamps

started_at and ended_at accept "2006-01-02 15:04:05" (fractional seconds allowed), the same with a
"T" separator, minute precision, and RFC3339. Zoneless values are read in ParseOptions.Location;
zoned values are converted into it so minute-of-day is always local time.

# Errors

Every validation failure wraps ErrInvalidInput. Use errors.Is to classify.
*/
package tripdata
