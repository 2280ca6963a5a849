package formatter

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// BuildText renders the busiest top stations (0 = all) as an aligned table
func BuildText(view *traffic.View, top int) string {
	var buf bytes.Buffer

	if view.Label == "" {
		buf.WriteString("(any time)\n")
	} else {
		fmt.Fprintf(&buf, "%s (minutes %d-%d)\n", view.Label, view.WindowLower, view.WindowUpper)
	}
	fmt.Fprintf(&buf, "%d departures, %d arrivals, busiest station %d trips\n\n", view.Departures, view.Arrivals, view.MaxTraffic)

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "STATION\tDEP\tARR\tTOTAL\tRADIUS\tFLOW\tNAME\t")
	for _, s := range TopStations(view, top) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\t%.1f\t%s\t\n", s.ID, s.Departures, s.Arrivals, s.TotalTraffic, s.Radius, s.FlowRatio, s.Name)
	}
	_ = w.Flush()
	return buf.String()
}
