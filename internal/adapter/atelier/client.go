// Package atelier adapts the design studio that analyzes fabric photos and
// produces dress mockups. The shipped implementation simulates the studio
// with canned results behind a configurable latency; callers must treat every
// call as cancellable I/O.
package atelier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// ErrStyleUnavailable indicates the analyzed fabric cannot carry the
// requested style.
var ErrStyleUnavailable = errors.New("style unavailable for fabric")

// Client exposes design studio operations.
type Client interface {
	AnalyzeFabric(ctx context.Context, fabricRef, instructions string) (*model.FabricAnalysis, error)
	GenerateDesigns(ctx context.Context, analysis model.FabricAnalysis, style model.DesignStyle) ([]model.Design, error)
	ApplyAccessories(ctx context.Context, design model.Design, accessories []model.Accessory) (*model.Design, error)
}

// SimulatedClient produces canned studio results after a fixed delay.
// The delay stands in for real inference latency; context cancellation and
// deadlines are honored.
type SimulatedClient struct {
	latency time.Duration
	logger  *slog.Logger
}

// NewSimulatedClient creates a simulated studio client.
func NewSimulatedClient(latency time.Duration, logger *slog.Logger) *SimulatedClient {
	if latency < 0 {
		latency = 0
	}
	return &SimulatedClient{latency: latency, logger: logger}
}

func (c *SimulatedClient) wait(ctx context.Context) error {
	if c.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AnalyzeFabric inspects the uploaded fabric photo.
func (c *SimulatedClient) AnalyzeFabric(ctx context.Context, fabricRef, instructions string) (*model.FabricAnalysis, error) {
	if fabricRef == "" {
		return nil, errors.New("fabric reference required")
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	length := 5.5
	width := 1.2
	analysis := &model.FabricAnalysis{
		Type:       "Silk Chiffon",
		Color:      "Pastel Pink with Gold Accents",
		Pattern:    "Traditional Floral Embroidery",
		Quality:    "Premium Grade A",
		Length:     &length,
		Width:      &width,
		Sufficient: true,
	}
	c.logger.Info("fabric analyzed", slog.String("fabric", fabricRef), slog.String("type", analysis.Type))
	return analysis, nil
}

// GenerateDesigns renders mockups for the fabric in the requested style.
// Styles needing more cloth than the analysis found are refused.
func (c *SimulatedClient) GenerateDesigns(ctx context.Context, analysis model.FabricAnalysis, style model.DesignStyle) ([]model.Design, error) {
	if !analysis.Sufficient {
		return nil, ErrStyleUnavailable
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	necklines := []string{"round", "v-neck", "collar", "boat"}
	designs := make([]model.Design, 0, len(necklines))
	for i, neckline := range necklines {
		designs = append(designs, model.Design{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("%s Kameez %d", titleStyle(style), i+1),
			Style:    style,
			Neckline: neckline,
			Image:    fmt.Sprintf("studio/mockups/%s-%s.png", style, neckline),
		})
	}
	return designs, nil
}

// ApplyAccessories re-renders the design with the given accessories attached.
func (c *SimulatedClient) ApplyAccessories(ctx context.Context, design model.Design, accessories []model.Accessory) (*model.Design, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	design.Accessories = accessories
	return &design, nil
}

func titleStyle(style model.DesignStyle) string {
	switch style {
	case model.StyleTraditional:
		return "Traditional"
	case model.StyleModern:
		return "Modern"
	case model.StyleFusion:
		return "Fusion"
	case model.StyleBridal:
		return "Bridal"
	case model.StyleCasual:
		return "Casual"
	default:
		return "Custom"
	}
}
