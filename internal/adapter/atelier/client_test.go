package atelier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

func newTestClient(latency time.Duration) *SimulatedClient {
	return NewSimulatedClient(latency, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyzeFabric(t *testing.T) {
	c := newTestClient(0)

	analysis, err := c.AnalyzeFabric(context.Background(), "fabrics/photo.jpg", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !analysis.Sufficient {
		t.Error("simulated analysis should report sufficient fabric")
	}
	if analysis.Length == nil || analysis.Width == nil {
		t.Error("expected measured length and width")
	}

	if _, err := c.AnalyzeFabric(context.Background(), "", ""); err == nil {
		t.Error("empty fabric reference must be rejected")
	}
}

func TestGenerateDesigns(t *testing.T) {
	c := newTestClient(0)
	analysis := model.FabricAnalysis{Type: "silk", Sufficient: true}

	designs, err := c.GenerateDesigns(context.Background(), analysis, model.StyleBridal)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(designs) != 4 {
		t.Fatalf("expected 4 mockups, got %d", len(designs))
	}

	seen := map[string]bool{}
	for _, d := range designs {
		if d.Style != model.StyleBridal {
			t.Errorf("design style = %s", d.Style)
		}
		if d.ID == "" || d.Image == "" {
			t.Errorf("incomplete design: %+v", d)
		}
		if seen[d.Neckline] {
			t.Errorf("duplicate neckline %q", d.Neckline)
		}
		seen[d.Neckline] = true
	}
}

func TestGenerateDesignsInsufficientFabric(t *testing.T) {
	c := newTestClient(0)
	_, err := c.GenerateDesigns(context.Background(), model.FabricAnalysis{Sufficient: false}, model.StyleBridal)
	if !errors.Is(err, ErrStyleUnavailable) {
		t.Errorf("expected ErrStyleUnavailable, got %v", err)
	}
}

func TestApplyAccessories(t *testing.T) {
	c := newTestClient(0)
	design := model.Design{ID: "d-1", Name: "Bridal Kameez 1"}
	accessories := []model.Accessory{{ID: 1, Name: "Gold Pearl Buttons"}}

	preview, err := c.ApplyAccessories(context.Background(), design, accessories)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(preview.Accessories) != 1 {
		t.Errorf("accessories not attached: %+v", preview.Accessories)
	}
	if design.Accessories != nil {
		t.Error("input design must not be mutated")
	}
}

func TestClientHonorsCancellation(t *testing.T) {
	c := newTestClient(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.AnalyzeFabric(ctx, "fabrics/photo.jpg", ""); !errors.Is(err, context.Canceled) {
		t.Errorf("analyze: expected context.Canceled, got %v", err)
	}
	if _, err := c.GenerateDesigns(ctx, model.FabricAnalysis{Sufficient: true}, model.StyleCasual); !errors.Is(err, context.Canceled) {
		t.Errorf("generate: expected context.Canceled, got %v", err)
	}
}
