package object

import (
	"context"

	"go.uber.org/fx"

	"github.com/stitchmate/stitchmate/internal/config"
)

// Module wires the S3-backed photo store.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

func newStore(p storeParams) (FabricStore, error) {
	return NewS3Store(p.Ctx, p.Config.AWSRegion, p.Config.AWSAccessKeyID, p.Config.AWSSecretAccessKey, p.Config.FabricBucket)
}
