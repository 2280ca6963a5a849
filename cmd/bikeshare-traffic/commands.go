package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/timebucket"
)

func tripFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "trips",
			Usage: "trips CSV URL or path (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "skip-malformed",
			Usage: "drop trips with unparseable timestamps instead of failing",
		},
	}
}

func sourceFlags() []cli.Flag {
	return append(tripFlags(), &cli.StringFlag{
		Name:  "stations",
		Usage: "stations JSON URL or path (overrides config)",
	})
}

func applySourceFlags(c *cli.Context, cfg *config.AppConfig) {
	if c.IsSet("trips") {
		cfg.Data.TripsURL = c.String("trips")
	}
	if c.IsSet("stations") {
		cfg.Data.StationsURL = c.String("stations")
	}
	if c.IsSet("skip-malformed") {
		cfg.Data.SkipMalformedTrips = c.Bool("skip-malformed")
	}
}

func trafficCommand() *cli.Command {
	return &cli.Command{
		Name:  "traffic",
		Usage: "print station traffic for a time of day",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "time",
				Value: "-1",
				Usage: "minute of day 0-1439, HH:MM, or -1 for any time",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "json",
				Usage: "json|text",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "text format only: number of busiest stations to list (0 = all)",
			},
		}, sourceFlags()...),
		Action: func(c *cli.Context) error {
			center, err := timebucket.ParseFilter(c.String("time"))
			if err != nil {
				return err
			}
			format := c.String("format")
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q", format)
			}

			cfg := appConfig(c)
			applySourceFlags(c, cfg)

			dataset, err := loadDataset(c.Context, cfg)
			if err != nil {
				return err
			}
			view, err := dataset.Query(center)
			if err != nil {
				return err
			}

			if format == "text" {
				_, err = fmt.Fprint(c.App.Writer, formatter.BuildText(view, c.Int("top")))
				return err
			}
			buf, err := formatter.BuildJSON(view)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, string(buf))
			return err
		},
	}
}

func bucketsCommand() *cli.Command {
	return &cli.Command{
		Name:  "buckets",
		Usage: "print hourly departure and arrival counts from the minute buckets (trips only)",
		Flags: tripFlags(),
		Action: func(c *cli.Context) error {
			cfg := appConfig(c)
			applySourceFlags(c, cfg)

			idx, err := loadIndex(c.Context, cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "HOUR\tDEPARTURES\tARRIVALS\t")
			for _, h := range timebucket.Hourly(idx) {
				fmt.Fprintf(w, "%02d:00\t%d\t%d\t\n", h.Hour, h.Departures, h.Arrivals)
			}
			fmt.Fprintf(w, "total\t%d\t%d\t\n", idx.Len(), idx.Len())
			return w.Flush()
		},
	}
}
