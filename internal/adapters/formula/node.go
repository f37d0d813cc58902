package formula

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grid/internal/core/ports"
)

// NodeID is the unique identifier for the formula parser Graft node.
const NodeID graft.ID = "adapter.formula"

func init() {
	graft.Register(graft.Node[ports.FormulaParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FormulaParser, error) {
			return New(), nil
		},
	})
}
