package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.ProberFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProberFactory, error) {
			return func(cfg *domain.Config) ports.Prober {
				return NewExecutor(cfg)
			}, nil
		},
	})
}
