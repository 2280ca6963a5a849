package tripdata

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// DefaultTimezone is the Bluebikes service area zone
const DefaultTimezone = "America/New_York"

// RequiredTripColumns must all be present in the trips CSV header
var RequiredTripColumns = []string{"start_station_id", "end_station_id", "started_at", "ended_at"}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseOptions controls trip CSV parsing
type ParseOptions struct {
	// Location is used for zoneless timestamps and as the target zone for zoned ones.
	// Nil means time.Local.
	Location *time.Location

	// SkipMalformed drops rows with unparseable timestamps instead of failing the whole load.
	SkipMalformed bool
}

// ParseTrips reads a trips CSV. Rows keep their file order.
func ParseTrips(r io.Reader, opts ParseOptions) ([]*Trip, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true

	rows, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read trips csv: %w", err)
	}
	if len(rows) == 0 {
		return []*Trip{}, nil
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	var records []*tripRecord
	if err := gocsv.UnmarshalCSV(&rowReader{rows: rows}, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []*Trip{}, nil
		}
		return nil, fmt.Errorf("failed to parse trips csv: %w", err)
	}

	trips := make([]*Trip, 0, len(records))
	skipped := 0
	for i, rec := range records {
		// header is line 1
		line := i + 2
		trip, err := rec.toTrip(loc)
		if err != nil {
			if opts.SkipMalformed {
				log.Warn().Int("line", line).Err(err).Msg("Skipping malformed trip")
				skipped++
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trips = append(trips, trip)
	}

	log.Info().Int("trips", len(trips)).Int("skipped", skipped).Msg("Parsed trips")
	return trips, nil
}

// checkHeader normalizes the header row in place and rejects it when a required column is absent
func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[i] = strings.TrimSpace(name)
		present[header[i]] = true
	}
	var missing []string
	for _, name := range RequiredTripColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("trips csv is missing columns %s: %w", strings.Join(missing, ", "), ErrInvalidInput)
	}
	return nil
}

// rowReader replays already read rows to gocsv
type rowReader struct {
	rows [][]string
	pos  int
}

func (r *rowReader) Read() ([]string, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func (r *rowReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.pos:]
	r.pos = len(r.rows)
	return rest, nil
}

func (rec *tripRecord) toTrip(loc *time.Location) (*Trip, error) {
	started, err := ParseTimestamp(rec.StartedAt, loc)
	if err != nil {
		return nil, fmt.Errorf("started_at: %w", err)
	}
	ended, err := ParseTimestamp(rec.EndedAt, loc)
	if err != nil {
		return nil, fmt.Errorf("ended_at: %w", err)
	}
	return &Trip{
		RideID:         rec.RideID,
		RideableType:   rec.RideableType,
		MemberCasual:   rec.MemberCasual,
		StartStationID: strings.TrimSpace(rec.StartStationID),
		EndStationID:   strings.TrimSpace(rec.EndStationID),
		StartedAt:      started,
		EndedAt:        ended,
	}, nil
}

// ParseTimestamp parses a trip timestamp and returns it in loc
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", ErrInvalidInput)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", s, ErrInvalidInput)
}

// ParseStations reads the station information JSON document.
// Entries without a short_name are skipped; for duplicate short names the first entry wins.
func ParseStations(r io.Reader) ([]Station, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var feed stationFeed
	if err := dec.Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode stations json: %w", err)
	}

	stations := make([]Station, 0, len(feed.Data.Stations))
	seen := make(map[string]struct{}, len(feed.Data.Stations))
	for i, raw := range feed.Data.Stations {
		id := strings.TrimSpace(toStringFallback(raw["short_name"], ""))
		if id == "" {
			log.Debug().Int("index", i).Msg("Station has no short_name")
			continue
		}
		if _, ok := seen[id]; ok {
			log.Warn().Str("station", id).Msg("Duplicate station short_name, keeping first")
			continue
		}
		lon, err := toFloat(raw["lon"])
		if err != nil {
			return nil, fmt.Errorf("station %s lon: %w", id, ErrInvalidInput)
		}
		lat, err := toFloat(raw["lat"])
		if err != nil {
			return nil, fmt.Errorf("station %s lat: %w", id, ErrInvalidInput)
		}
		capacity, _ := toInt(raw["capacity"])
		seen[id] = struct{}{}
		stations = append(stations, Station{
			ID:        id,
			Name:      toStringFallback(raw["name"], ""),
			Longitude: lon,
			Latitude:  lat,
			Capacity:  capacity,
		})
	}

	log.Info().Int("stations", len(stations)).Msg("Parsed stations")
	return stations, nil
}

// Utility converters for flexible JSON values
func toStringFallback(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fallback
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	case json.Number:
		return t.Float64()
	default:
		return 0, errors.New("not a float")
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	case json.Number:
		i64, err := t.Int64()
		return int(i64), err
	default:
		return 0, errors.New("not an int")
	}
}
