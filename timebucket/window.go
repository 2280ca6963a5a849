package timebucket

import (
	"fmt"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

// ValidateCenter accepts NoFilter or a minute-of-day
func ValidateCenter(center int) error {
	if center == NoFilter {
		return nil
	}
	if center < 0 || center >= MinutesPerDay {
		return fmt.Errorf("time filter %d outside [-1, %d]: %w", center, MinutesPerDay-1, tripdata.ErrInvalidInput)
	}
	return nil
}

// Bounds returns the half-open window [lower, upper) around center, modulo MinutesPerDay.
// lower > upper means the window wraps past midnight.
func Bounds(center int) (lower, upper int) {
	lower = (center - HalfWindow + MinutesPerDay) % MinutesPerDay
	upper = (center + HalfWindow) % MinutesPerDay
	return lower, upper
}

// Select concatenates the buckets inside the window around center, in bucket order and then
// insertion order. NoFilter concatenates all buckets.
func Select(buckets *Buckets, center int) ([]*tripdata.Trip, error) {
	if err := ValidateCenter(center); err != nil {
		return nil, err
	}

	if center == NoFilter {
		return concat(buckets, 0, MinutesPerDay), nil
	}

	lower, upper := Bounds(center)
	if lower <= upper {
		return concat(buckets, lower, upper), nil
	}
	out := concat(buckets, lower, MinutesPerDay)
	return append(out, concat(buckets, 0, upper)...), nil
}

func concat(buckets *Buckets, from, to int) []*tripdata.Trip {
	n := 0
	for m := from; m < to; m++ {
		n += len(buckets[m])
	}
	out := make([]*tripdata.Trip, 0, n)
	for m := from; m < to; m++ {
		out = append(out, buckets[m]...)
	}
	return out
}
