// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/swagscan/internal/adapters/config"
	_ "go.trai.ch/swagscan/internal/adapters/linear"
	_ "go.trai.ch/swagscan/internal/adapters/logger"
	_ "go.trai.ch/swagscan/internal/adapters/probe"
	_ "go.trai.ch/swagscan/internal/adapters/sink"
	_ "go.trai.ch/swagscan/internal/adapters/source"
	// Register app nodes.
	_ "go.trai.ch/swagscan/internal/app"
)
