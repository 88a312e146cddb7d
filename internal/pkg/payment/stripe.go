package payment

import (
	"context"
	"fmt"
	"log/slog"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// StripeProcessor settles card payments through Stripe PaymentIntents.
// Wallet methods fall back to the simulated processor.
type StripeProcessor struct {
	api      *client.API
	fallback Processor
	logger   *slog.Logger
}

// NewStripeProcessor creates a Stripe-backed processor.
func NewStripeProcessor(apiKey string, fallback Processor, logger *slog.Logger) *StripeProcessor {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProcessor{api: api, fallback: fallback, logger: logger}
}

// Process confirms a payment intent for card checkouts.
func (p *StripeProcessor) Process(ctx context.Context, req Request) (*model.PaymentInfo, error) {
	if req.Method != model.PaymentMethodCard {
		return p.fallback.Process(ctx, req)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount")
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(req.Amount * 100)),
		Currency:      stripe.String("pkr"),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata("order_id", req.OrderID)

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	status := model.PaymentPending
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		status = model.PaymentCompleted
	}
	p.logger.Info("stripe payment processed",
		slog.String("order", req.OrderID),
		slog.String("intent", intent.ID),
		slog.String("status", string(intent.Status)),
	)
	return &model.PaymentInfo{
		Method:        req.Method,
		Status:        status,
		Amount:        req.Amount,
		TransactionID: &intent.ID,
	}, nil
}
