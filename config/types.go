package config

// DataConfig points at the trip and station documents
type DataConfig struct {
	TripsURL           string `yaml:"tripsURL" validate:"omitempty"`
	StationsURL        string `yaml:"stationsURL" validate:"omitempty"`
	Timezone           string `yaml:"timezone" validate:"omitempty,timezone"`
	TimeoutMS          int    `yaml:"timeoutMS" validate:"gte=0"`
	SkipMalformedTrips bool   `yaml:"skipMalformedTrips"`
}

// ScaleConfig contains the circle radius ranges as [min, max]
type ScaleConfig struct {
	Unfiltered []float64 `yaml:"unfiltered" validate:"omitempty,len=2,dive,gte=0"`
	Filtered   []float64 `yaml:"filtered" validate:"omitempty,len=2,dive,gte=0"`
}

// LoggingConfig contains zerolog settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Scale   ScaleConfig   `yaml:"scale"`
	Logging LoggingConfig `yaml:"logging"`
}
