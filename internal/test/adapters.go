package test

import (
	"context"
	"fmt"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/pkg/payment"
)

// StudioClientStub simulates the design studio with instant, deterministic
// results.
type StudioClientStub struct {
	AnalyzeErr  error
	GenerateErr error
	ApplyErr    error
}

// AnalyzeFabric returns a fixed sufficient analysis.
func (s StudioClientStub) AnalyzeFabric(ctx context.Context, fabricRef, instructions string) (*model.FabricAnalysis, error) {
	if s.AnalyzeErr != nil {
		return nil, s.AnalyzeErr
	}
	return &model.FabricAnalysis{Type: "silk", Color: "pink", Sufficient: true}, nil
}

// GenerateDesigns returns two mockups in the requested style.
func (s StudioClientStub) GenerateDesigns(ctx context.Context, analysis model.FabricAnalysis, style model.DesignStyle) ([]model.Design, error) {
	if s.GenerateErr != nil {
		return nil, s.GenerateErr
	}
	return []model.Design{
		{ID: "design-1", Name: "Mockup 1", Style: style},
		{ID: "design-2", Name: "Mockup 2", Style: style},
	}, nil
}

// ApplyAccessories attaches accessories and stamps a preview image.
func (s StudioClientStub) ApplyAccessories(ctx context.Context, design model.Design, accessories []model.Accessory) (*model.Design, error) {
	if s.ApplyErr != nil {
		return nil, s.ApplyErr
	}
	design.Accessories = accessories
	design.Image = "preview/" + design.ID + ".png"
	return &design, nil
}

// ProcessorStub settles every payment instantly.
type ProcessorStub struct {
	Err      error
	Requests []payment.Request
}

// Process records the request and returns a completed payment.
func (p *ProcessorStub) Process(ctx context.Context, req payment.Request) (*model.PaymentInfo, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	p.Requests = append(p.Requests, req)
	txID := "tx-stub"
	return &model.PaymentInfo{
		Method:        req.Method,
		Status:        model.PaymentCompleted,
		Amount:        req.Amount,
		TransactionID: &txID,
	}, nil
}

// FabricStoreStub keeps uploaded photos in a map.
type FabricStoreStub struct {
	Objects map[string][]byte
	Err     error
}

// Upload stores the payload under a deterministic key.
func (s *FabricStoreStub) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Objects == nil {
		s.Objects = make(map[string][]byte)
	}
	key := "fabrics/" + name
	s.Objects[key] = data
	return key, nil
}

// PresignURL returns a fake download URL for the key.
func (s *FabricStoreStub) PresignURL(ctx context.Context, key string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if key == "" {
		return "", nil
	}
	return fmt.Sprintf("https://stub.local/%s", key), nil
}

// Delete removes the object.
func (s *FabricStoreStub) Delete(ctx context.Context, key string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Objects, key)
	return nil
}
