package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swagscan/internal/core/ports"
)

// NodeID is the unique identifier for the line source Graft node.
const NodeID graft.ID = "adapter.line_source"

func init() {
	graft.Register(graft.Node[ports.LineSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LineSource, error) {
			return NewLineReader(), nil
		},
	})
}
