// Package config provides the configuration loader for swagscan.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file,
// an optional dotenv file and the process environment.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(),
	}
}

// Load resolves the configuration for the given working directory.
// Precedence, lowest first: defaults, swagscan.yaml, .env, process environment.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	settings := defaultSettings()

	if err := l.loadFile(filepath.Join(cwd, domain.ConfigFileName), &settings); err != nil {
		return nil, err
	}

	dotenv, err := readDotenv(filepath.Join(cwd, domain.EnvFileName))
	if err != nil {
		return nil, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&settings, lookup); err != nil {
		return nil, err
	}

	if err := l.validate.Struct(settings); err != nil {
		return nil, validationError(err)
	}

	timeout, err := time.ParseDuration(settings.Timeout)
	if err != nil || timeout <= 0 {
		return nil, zerr.With(domain.ErrConfigInvalid, "timeout", settings.Timeout)
	}

	return &domain.Config{
		Workers:   settings.Workers,
		Output:    settings.Output,
		Marker:    settings.Marker,
		Timeout:   timeout,
		RateLimit: settings.RateLimit,
		LogFormat: domain.LogFormat(settings.LogFormat),
	}, nil
}

func defaultSettings() Settings {
	def := domain.DefaultConfig()
	return Settings{
		Workers:   def.Workers,
		Output:    def.Output,
		Marker:    def.Marker,
		Timeout:   def.Timeout.String(),
		RateLimit: def.RateLimit,
		LogFormat: string(def.LogFormat),
	}
}

func (l *Loader) loadFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	unknown := make([]string, 0)
	for key := range raw {
		if _, ok := knownKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		l.Logger.Warn(fmt.Sprintf("unknown key '%s' in %s is ignored", key, domain.ConfigFileName))
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return values, nil
}

func applyEnv(settings *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "env", EnvWorkers)
		}
		settings.Workers = n
	}
	if v, ok := lookup(EnvOutput); ok {
		settings.Output = v
	}
	if v, ok := lookup(EnvMarker); ok {
		settings.Marker = v
	}
	if v, ok := lookup(EnvTimeout); ok {
		settings.Timeout = v
	}
	if v, ok := lookup(EnvRateLimit); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "env", EnvRateLimit)
		}
		settings.RateLimit = f
	}
	if v, ok := lookup(EnvLogFormat); ok {
		settings.LogFormat = v
	}
	return nil
}

// validationError reports the first failed field, the way request handlers do.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", ve.Field()), "rule", ve.Tag())
	}
	return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
}
