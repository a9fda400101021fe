package ports

import "go.trai.ch/swagscan/internal/core/domain"

// ConfigLoader defines the interface for loading the scan configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing configuration file is not an error; defaults are returned.
	Load(cwd string) (*domain.Config, error)
}
