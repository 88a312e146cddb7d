package di

import (
	"context"
	"testing"

	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		fx.Provide(func() context.Context { return context.Background() }),
		Module(),
	)
	if err != nil {
		t.Fatalf("dependency graph is incomplete: %v", err)
	}
}
