package di

import (
	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	"github.com/stitchmate/stitchmate/internal/adapter/atelier"
	"github.com/stitchmate/stitchmate/internal/app"
	"github.com/stitchmate/stitchmate/internal/config"
	"github.com/stitchmate/stitchmate/internal/logger"
	"github.com/stitchmate/stitchmate/internal/pkg/auth"
	"github.com/stitchmate/stitchmate/internal/pkg/payment"
	"github.com/stitchmate/stitchmate/internal/server/http/router"
	"github.com/stitchmate/stitchmate/internal/session"
	"github.com/stitchmate/stitchmate/internal/storage/object"
	"github.com/stitchmate/stitchmate/internal/storage/postgres"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		object.Module,
		atelier.Module,
		assistant.Module,
		payment.Module,
		session.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
