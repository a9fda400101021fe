package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swagscan/internal/adapters/detector"
	"go.trai.ch/swagscan/internal/adapters/logger"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

// jsonSwitcher is implemented by loggers that can change their output format.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettingsLoader(log), nil
		},
	})
}

// SettingsLoader is a Loader that also applies the resolved log format to
// its logger.
type SettingsLoader struct {
	*Loader
}

// NewSettingsLoader creates a SettingsLoader for log.
func NewSettingsLoader(log ports.Logger) *SettingsLoader {
	return &SettingsLoader{Loader: NewLoader(log)}
}

// Load resolves the configuration and switches the logger format.
func (l *SettingsLoader) Load(cwd string) (*domain.Config, error) {
	cfg, err := l.Loader.Load(cwd)
	if err != nil {
		return nil, err
	}
	ApplyLogFormat(l.Logger, cfg.LogFormat)
	return cfg, nil
}

// ApplyLogFormat switches the logger to JSON when the resolved mode asks for it.
func ApplyLogFormat(log ports.Logger, format domain.LogFormat) {
	s, ok := log.(jsonSwitcher)
	if !ok {
		return
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(), format)
	s.SetJSON(mode == detector.ModeJSON)
}
