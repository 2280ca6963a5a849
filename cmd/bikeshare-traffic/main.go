package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"

	_ "time/tzdata"
)

const configMetadataKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "bikeshare-traffic",
		Usage:    "Per-station bike-share arrivals and departures by time of day",
		Metadata: map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.yml (defaults to ./config.yml or ./config/config.yml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace|debug|info|warn|error (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console|json (overrides config)",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.Logging.Level = c.String("log-level")
			}
			if c.IsSet("log-format") {
				cfg.Logging.Format = c.String("log-format")
			}
			internal.InitLogging(cfg.Logging.Level, cfg.Logging.Format)
			c.App.Metadata[configMetadataKey] = cfg
			return nil
		},
		Commands: []*cli.Command{
			trafficCommand(),
			bucketsCommand(),
		},
	}
}

// loadConfig falls back to defaults only when no file was asked for and none was found
func loadConfig(path string) (*config.AppConfig, error) {
	cfg, err := config.LoadAppConfig(path)
	if err == nil {
		return cfg, nil
	}
	if path == "" && errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return nil, err
}

func appConfig(c *cli.Context) *config.AppConfig {
	if cfg, ok := c.App.Metadata[configMetadataKey].(*config.AppConfig); ok {
		return cfg
	}
	return config.Default()
}
