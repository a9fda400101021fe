package sink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swagscan/internal/core/ports"
)

// NodeID is the unique identifier for the match sink Graft node.
const NodeID graft.ID = "adapter.match_sink"

func init() {
	graft.Register(graft.Node[ports.MatchSinkFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MatchSinkFactory, error) {
			return func(path string) (ports.MatchSink, error) {
				f, err := NewFile(path)
				if err != nil {
					return nil, err
				}
				return f, nil
			}, nil
		},
	})
}
