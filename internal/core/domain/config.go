package domain

import "time"

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on an interactive terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty forces human-readable colored output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON forces structured JSON output.
	LogFormatJSON LogFormat = "json"
)

// Config is the resolved scan configuration.
type Config struct {
	Workers   int
	Output    string
	Marker    string
	Timeout   time.Duration
	RateLimit float64
	LogFormat LogFormat
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Workers:   DefaultWorkers,
		Output:    DefaultOutputFile,
		Marker:    DefaultMarker,
		Timeout:   ProbeTimeout,
		LogFormat: LogFormatAuto,
	}
}
