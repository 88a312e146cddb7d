// Package payment settles order checkout through a pluggable processor.
package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// ErrUnsupportedMethod indicates the processor cannot handle the requested method.
var ErrUnsupportedMethod = errors.New("unsupported payment method")

// Request describes a checkout attempt for one order.
type Request struct {
	OrderID         string
	UserID          int64
	Method          model.PaymentMethod
	Amount          float64
	PaymentMethodID string
}

// Processor settles a checkout request. Implementations must honor context
// cancellation and return an explicit error on failure.
type Processor interface {
	Process(ctx context.Context, req Request) (*model.PaymentInfo, error)
}

// SimulatedProcessor settles every supported method locally after a fixed
// delay. It backs the wallet methods and development environments without a
// Stripe key.
type SimulatedProcessor struct {
	latency time.Duration
	logger  *slog.Logger
}

// NewSimulatedProcessor creates a simulated processor.
func NewSimulatedProcessor(latency time.Duration, logger *slog.Logger) *SimulatedProcessor {
	if latency < 0 {
		latency = 0
	}
	return &SimulatedProcessor{latency: latency, logger: logger}
}

// Process settles the request after the configured delay.
func (p *SimulatedProcessor) Process(ctx context.Context, req Request) (*model.PaymentInfo, error) {
	if req.Amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	switch req.Method {
	case model.PaymentMethodCard, model.PaymentMethodJazzCash, model.PaymentMethodEasypaisa:
	default:
		return nil, ErrUnsupportedMethod
	}

	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	txID := "sim_" + uuid.NewString()
	p.logger.Info("payment settled",
		slog.String("order", req.OrderID),
		slog.String("method", string(req.Method)),
		slog.Float64("amount", req.Amount),
	)
	return &model.PaymentInfo{
		Method:        req.Method,
		Status:        model.PaymentCompleted,
		Amount:        req.Amount,
		TransactionID: &txID,
	}, nil
}
