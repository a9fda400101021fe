package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swagscan/internal/adapters/config"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/swagscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var _ ports.ConfigLoader = (*config.Loader)(nil)

// clearEnv unsets every override variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvWorkers, config.EnvOutput, config.EnvMarker,
		config.EnvTimeout, config.EnvRateLimit, config.EnvLogFormat,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, `
workers: 32
output: hits.txt
marker: "swagger-ui"
timeout: 3s
rate_limit: 12.5
log_format: json
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{
		Workers:   32,
		Output:    "hits.txt",
		Marker:    "swagger-ui",
		Timeout:   3 * time.Second,
		RateLimit: 12.5,
		LogFormat: domain.LogFormatJSON,
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: 4\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, domain.DefaultOutputFile, cfg.Output)
	assert.Equal(t, domain.DefaultMarker, cfg.Marker)
	assert.Equal(t, domain.ProbeTimeout, cfg.Timeout)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_UnknownKeyWarns(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: 2\nthreads: 8\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("unknown key 'threads' in swagscan.yaml is ignored").Times(1)

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: [unclosed\n")

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_WrongTypeIsParseError(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: many\n")

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative workers", content: "workers: -1\n"},
		{name: "negative rate limit", content: "rate_limit: -2\n"},
		{name: "unknown log format", content: "log_format: xml\n"},
		{name: "empty marker", content: "marker: \"\"\n"},
		{name: "empty output", content: "output: \"\"\n"},
		{name: "unparsable timeout", content: "timeout: soon\n"},
		{name: "zero timeout", content: "timeout: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(dir)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrConfigInvalid.Error())
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: 4\nmarker: one\n")
	t.Setenv(config.EnvWorkers, "64")
	t.Setenv(config.EnvMarker, "two")
	t.Setenv(config.EnvTimeout, "250ms")
	t.Setenv(config.EnvRateLimit, "5")
	t.Setenv(config.EnvLogFormat, "pretty")
	t.Setenv(config.EnvOutput, "out.txt")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{
		Workers:   64,
		Output:    "out.txt",
		Marker:    "two",
		Timeout:   250 * time.Millisecond,
		RateLimit: 5,
		LogFormat: domain.LogFormatPretty,
	}, cfg)
}

func TestLoad_DotenvBetweenFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "workers: 4\noutput: file.txt\n")
	writeFile(t, dir, domain.EnvFileName, "SWAGSCAN_WORKERS=8\nSWAGSCAN_OUTPUT=dotenv.txt\n")
	t.Setenv(config.EnvWorkers, "16")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, "dotenv.txt", cfg.Output)

	_, set := os.LookupEnv(config.EnvOutput)
	assert.False(t, set, ".env must not leak into the process environment")
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: config.EnvWorkers, value: "ten"},
		{key: config.EnvRateLimit, value: "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := newLoader(t).Load(t.TempDir())
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrConfigInvalid.Error())
		})
	}
}
