package formatter

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/utils"
)

// Response is the document handed to the binding layer
type Response struct {
	ResponseTimestamp string `json:"responseTimestamp"`
	*traffic.View
}

// WrapView stamps a view with the response time
func WrapView(view *traffic.View) *Response {
	return &Response{
		ResponseTimestamp: utils.Iso8601Now(),
		View:              view,
	}
}

// TopStations returns up to n stations ordered by total traffic, busiest first.
// Ties are broken by station id. n <= 0 returns all stations in that order.
func TopStations(view *traffic.View, n int) []traffic.StationView {
	ranked := slices.Clone(view.Stations)
	slices.SortStableFunc(ranked, func(a, b traffic.StationView) int {
		if a.TotalTraffic != b.TotalTraffic {
			return b.TotalTraffic - a.TotalTraffic
		}
		return strings.Compare(a.ID, b.ID)
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
