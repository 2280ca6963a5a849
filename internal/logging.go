package internal

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger.
// BIKESHARE_LOG_FORMAT=JSON and BIKESHARE_DEBUG=YES override the arguments.
func InitLogging(level, format string) {
	if os.Getenv("BIKESHARE_LOG_FORMAT") == "JSON" {
		format = "json"
	}
	if os.Getenv("BIKESHARE_DEBUG") == "YES" {
		level = "debug"
	}

	if strings.ToLower(format) != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(lvl)
}
