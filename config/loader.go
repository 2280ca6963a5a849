package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched when no explicit config path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// ErrNotFound is returned when none of the searched config files exist
var ErrNotFound = errors.New("config file not found")

const (
	defaultTimezone  = "America/New_York"
	defaultTimeoutMS = 30000
)

// Default returns the configuration used when no file is present
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; otherwise DefaultPaths are tried in order.
func LoadAppConfig(path string) (*AppConfig, error) {
	paths := DefaultPaths
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse unmarshals, defaults and validates a YAML document
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	if err := checkRange(cfg.Scale.Unfiltered); err != nil {
		return nil, fmt.Errorf("scale.unfiltered: %w", err)
	}
	if err := checkRange(cfg.Scale.Filtered); err != nil {
		return nil, fmt.Errorf("scale.filtered: %w", err)
	}
	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Data.Timezone == "" {
		cfg.Data.Timezone = defaultTimezone
	}
	if cfg.Data.TimeoutMS == 0 {
		cfg.Data.TimeoutMS = defaultTimeoutMS
	}
	if len(cfg.Scale.Unfiltered) == 0 {
		cfg.Scale.Unfiltered = []float64{0, 25}
	}
	if len(cfg.Scale.Filtered) == 0 {
		cfg.Scale.Filtered = []float64{3, 50}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func checkRange(r []float64) error {
	if r[0] > r[1] {
		return fmt.Errorf("min %g greater than max %g", r[0], r[1])
	}
	return nil
}
