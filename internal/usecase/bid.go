package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
	"github.com/stitchmate/stitchmate/internal/pipeline"
)

// BidUseCase covers the tailor side of the marketplace.
type BidUseCase struct {
	bids    repository.BidRepository
	orders  repository.OrderRepository
	tailors repository.TailorRepository
}

// NewBidUseCase constructs BidUseCase.
func NewBidUseCase(bids repository.BidRepository, orders repository.OrderRepository, tailors repository.TailorRepository) *BidUseCase {
	return &BidUseCase{bids: bids, orders: orders, tailors: tailors}
}

// OpenOrders lists orders currently accepting bids.
func (u *BidUseCase) OpenOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, model.OrderStatusBidding)
}

// Place submits a bid by the tailor owning userID. Bids are immutable once
// created.
func (u *BidUseCase) Place(ctx context.Context, userID int64, orderID string, amount float64, estimatedDays int, message string) (*model.Bid, error) {
	if amount <= 0 || estimatedDays < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	tailor, err := u.tailors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusBidding && order.Status != model.OrderStatusPosted {
		return nil, domainErrors.ErrInvalidStatus
	}

	bid := &model.Bid{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Tailor:        *tailor,
		Amount:        amount,
		EstimatedDays: estimatedDays,
		Message:       message,
		CreatedAt:     time.Now(),
	}
	if err := u.bids.Create(ctx, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

// ListForOrder returns the bids against an order owned by userID.
func (u *BidUseCase) ListForOrder(ctx context.Context, userID int64, orderID string) ([]model.Bid, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrAccessDenied
	}
	return u.bids.ListByOrder(ctx, orderID)
}

// ListByTailor returns the bids submitted by the tailor owning userID.
func (u *BidUseCase) ListByTailor(ctx context.Context, userID int64) ([]model.Bid, error) {
	tailor, err := u.tailors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.bids.ListByTailor(ctx, tailor.ID)
}

// TailorEarnings summarizes booked work for the tailor's earnings view.
type TailorEarnings struct {
	ActiveOrders    int
	CompletedOrders int
	TotalEarned     float64
	PendingPayout   float64
}

// Earnings aggregates the tailor's booked orders.
func (u *BidUseCase) Earnings(ctx context.Context, userID int64) (*TailorEarnings, error) {
	tailor, err := u.tailors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListByTailor(ctx, tailor.ID)
	if err != nil {
		return nil, err
	}

	earnings := &TailorEarnings{}
	for _, o := range orders {
		amount := 0.0
		if o.Payment != nil {
			amount = o.Payment.Amount
		}
		switch o.Status {
		case model.OrderStatusCompleted:
			earnings.CompletedOrders++
			earnings.TotalEarned += amount
		case model.OrderStatusBooked, model.OrderStatusInProgress:
			earnings.ActiveOrders++
			earnings.PendingPayout += amount
		}
	}
	return earnings, nil
}

// BookedOrders lists orders assigned to the tailor owning userID.
func (u *BidUseCase) BookedOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	tailor, err := u.tailors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.orders.ListByTailor(ctx, tailor.ID)
}

// MarkDelivered moves an in-progress order to completed on behalf of the
// assigned tailor (delivery confirmation without a customer review).
func (u *BidUseCase) MarkDelivered(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	tailor, err := u.tailors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SelectedTailor == nil || order.SelectedTailor.ID != tailor.ID {
		return nil, domainErrors.ErrAccessDenied
	}
	if order.Status != model.OrderStatusInProgress {
		return nil, domainErrors.ErrInvalidStatus
	}

	status := model.OrderStatusCompleted
	return u.orders.Update(ctx, orderID, model.OrderPatch{Status: &status})
}

// starterBidBase is the asking price the collector starts from before
// timeline and per-tailor adjustments.
const starterBidBase = 4200.0

// SeedStarterBids creates opening offers for an order that just entered
// bidding, drawn from the top of the tailor directory. Orders that already
// carry bids are left alone.
func (u *BidUseCase) SeedStarterBids(ctx context.Context, order model.Order) error {
	count, err := u.bids.CountByOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tailors, err := u.tailors.List(ctx)
	if err != nil {
		return err
	}
	if len(tailors) > 3 {
		tailors = tailors[:3]
	}

	preset := pipeline.TimelineFor(order.Timeline)
	for i, tailor := range tailors {
		bid := &model.Bid{
			ID:            uuid.NewString(),
			OrderID:       order.ID,
			Tailor:        tailor,
			Amount:        (starterBidBase + float64(i)*400) * preset.Multiplier,
			EstimatedDays: preset.MinDays + i,
			Message:       "Happy to take this on, price includes fitting adjustments.",
			CreatedAt:     time.Now(),
		}
		if err := u.bids.Create(ctx, bid); err != nil {
			return err
		}
	}
	return nil
}
