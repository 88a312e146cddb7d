package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/config"
)

// Module selects the payment processor: Stripe when a key is configured,
// the local simulation otherwise.
var Module = fx.Provide(newProcessor)

type processorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newProcessor(p processorParams) Processor {
	simulated := NewSimulatedProcessor(p.Config.StudioLatency, p.Logger)
	if p.Config.StripeAPIKey == "" {
		return simulated
	}
	return NewStripeProcessor(p.Config.StripeAPIKey, simulated, p.Logger)
}
