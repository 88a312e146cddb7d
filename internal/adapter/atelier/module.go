package atelier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/config"
)

// Module exposes the studio client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewSimulatedClient(p.Config.StudioLatency, p.Logger)
}
