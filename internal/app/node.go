package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swagscan/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/adapters/probe"  //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/adapters/sink"   //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/swagscan/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			source.NodeID,
			probe.NodeID,
			sink.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	src, err := graft.Dep[ports.LineSource](ctx)
	if err != nil {
		return nil, err
	}

	newProber, err := graft.Dep[ports.ProberFactory](ctx)
	if err != nil {
		return nil, err
	}

	newSink, err := graft.Dep[ports.MatchSinkFactory](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, src, newProber, newSink, reporter, log), nil
}
