package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingFlag is returned when a required command line flag is not set.
	ErrMissingFlag = zerr.New("required flag not set")

	// ErrHostsReadFailed is returned when the host list cannot be read.
	ErrHostsReadFailed = zerr.New("failed to read hosts file")

	// ErrRoutesReadFailed is returned when the route list cannot be read.
	ErrRoutesReadFailed = zerr.New("failed to read route file")

	// ErrSinkCreateFailed is returned when the output file cannot be created.
	ErrSinkCreateFailed = zerr.New("failed to create output file")

	// ErrSinkAppendFailed is returned when a match cannot be appended to the output file.
	ErrSinkAppendFailed = zerr.New("failed to append match to output file")

	// ErrRequestFailed is returned when the HTTP request for a target fails.
	ErrRequestFailed = zerr.New("request failed")

	// ErrBodyDecodeFailed is returned when a response body cannot be read as text.
	ErrBodyDecodeFailed = zerr.New("failed to read response body as text")

	// ErrTaskPanicked is returned when a probe task panics.
	ErrTaskPanicked = zerr.New("task panicked")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the resolved configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrScanInterrupted is returned when a scan stops admitting tasks before the task set is exhausted.
	ErrScanInterrupted = zerr.New("scan interrupted")
)
