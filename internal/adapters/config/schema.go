package config

// Settings represents the structure of the swagscan.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type Settings struct {
	Workers   int     `yaml:"workers" validate:"gte=0"`
	Output    string  `yaml:"output" validate:"required"`
	Marker    string  `yaml:"marker" validate:"required"`
	Timeout   string  `yaml:"timeout" validate:"required"`
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	LogFormat string  `yaml:"log_format" validate:"oneof=auto pretty json"`
}

// knownKeys lists the top-level keys understood in swagscan.yaml.
var knownKeys = map[string]struct{}{
	"workers":    {},
	"output":     {},
	"marker":     {},
	"timeout":    {},
	"rate_limit": {},
	"log_format": {},
}

// Environment variables that override file values.
const (
	EnvWorkers   = "SWAGSCAN_WORKERS"
	EnvOutput    = "SWAGSCAN_OUTPUT"
	EnvMarker    = "SWAGSCAN_MARKER"
	EnvTimeout   = "SWAGSCAN_TIMEOUT"
	EnvRateLimit = "SWAGSCAN_RATE_LIMIT"
	EnvLogFormat = "SWAGSCAN_LOG_FORMAT"
)
