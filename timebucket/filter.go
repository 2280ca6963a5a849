package timebucket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/tripdata"
)

// ParseFilter reads a slider value: "" or "-1" for NoFilter, a minute-of-day, or an "HH:MM" clock time
func ParseFilter(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoFilter, nil
	}

	if h, m, ok := strings.Cut(s, ":"); ok {
		hour, err1 := strconv.Atoi(h)
		minute, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return 0, fmt.Errorf("bad clock time %q: %w", s, tripdata.ErrInvalidInput)
		}
		return hour*60 + minute, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad time filter %q: %w", s, tripdata.ErrInvalidInput)
	}
	if err := ValidateCenter(v); err != nil {
		return 0, err
	}
	return v, nil
}
