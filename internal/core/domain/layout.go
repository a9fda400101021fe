package domain

import "time"

const (
	// DefaultOutputFile is the match record file written in the working directory.
	DefaultOutputFile = "found.txt"

	// DefaultWorkers is the concurrency limit used when none is configured.
	DefaultWorkers = 10

	// ProbeTimeout bounds a single request/response exchange.
	ProbeTimeout = 10 * time.Second

	// DefaultMarker is the literal substring that identifies a Swagger UI page.
	DefaultMarker = "Swagger UI"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "swagscan.yaml"

	// EnvFileName is the name of the optional dotenv file.
	EnvFileName = ".env"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
