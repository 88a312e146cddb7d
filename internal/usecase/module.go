package usecase

import (
	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/config"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newOrderUseCase,
	NewBidUseCase,
	NewApplicationUseCase,
	NewCatalogUseCase,
)

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Bids    repository.BidRepository
	Reviews repository.ReviewRepository
	Tailors repository.TailorRepository
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Bids, p.Reviews, p.Tailors, p.Config.DeliveryFee)
}
