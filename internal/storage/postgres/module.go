package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/config"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ProfileRepository { return s.Profiles() },
		func(s *Storage) repository.RoleRepository { return s.Roles() },
		func(s *Storage) repository.ApplicationRepository { return s.Applications() },
		func(s *Storage) repository.TailorRepository { return s.Tailors() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.BidRepository { return s.Bids() },
		func(s *Storage) repository.AccessoryRepository { return s.Accessories() },
		func(s *Storage) repository.ReviewRepository { return s.Reviews() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
