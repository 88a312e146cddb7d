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

// PostOrderInput carries what the customer supplies when posting an order
// for bidding.
type PostOrderInput struct {
	Design      *model.Design
	Fabric      *string
	Accessories []model.Accessory
	Notes       string
	Timeline    model.DeliveryTimeline
	TargetDate  *time.Time
}

// BookingInput is captured once per order at booking time.
type BookingInput struct {
	Measurements model.Measurements
	Logistics    model.LogisticsOption
}

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders      repository.OrderRepository
	bids        repository.BidRepository
	reviews     repository.ReviewRepository
	tailors     repository.TailorRepository
	deliveryFee float64
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	bids repository.BidRepository,
	reviews repository.ReviewRepository,
	tailors repository.TailorRepository,
	deliveryFee float64,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, bids: bids, reviews: reviews, tailors: tailors, deliveryFee: deliveryFee}
}

// DeliveryFee returns the flat delivery fee applied to every booking.
func (u *OrderUseCase) DeliveryFee() float64 { return u.deliveryFee }

// Post creates the order in posted status. Drafts never leave the session.
func (u *OrderUseCase) Post(ctx context.Context, userID int64, in PostOrderInput) (*model.Order, error) {
	if in.Timeline == "" {
		in.Timeline = model.TimelineNormal
	}
	now := time.Now()
	order := &model.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Design:      in.Design,
		Fabric:      in.Fabric,
		Accessories: in.Accessories,
		Notes:       in.Notes,
		Timeline:    in.Timeline,
		TargetDate:  in.TargetDate,
		Status:      model.OrderStatusPosted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser returns the user's orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get fetches a single order owned by the user.
func (u *OrderUseCase) Get(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrAccessDenied
	}
	return order, nil
}

// advance moves the order to the next status. Hops not present in the
// pipeline transition table, backward moves included, are rejected.
func (u *OrderUseCase) advance(ctx context.Context, order *model.Order, next model.OrderStatus, patch model.OrderPatch) (*model.Order, error) {
	if err := pipeline.AdvanceStatus(order.Status, next); err != nil {
		return nil, domainErrors.ErrInvalidStatus
	}
	patch.Status = &next
	return u.orders.Update(ctx, order.ID, patch)
}

// SelectBid books the order with the chosen bid's tailor.
func (u *OrderUseCase) SelectBid(ctx context.Context, userID int64, orderID, bidID string) (*model.Order, error) {
	order, err := u.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.OrderID != orderID {
		return nil, domainErrors.ErrNotFound
	}

	// A tailor can bid before the collector flips the order to bidding.
	if order.Status == model.OrderStatusPosted {
		flipped, err := u.advance(ctx, order, model.OrderStatusBidding, model.OrderPatch{})
		if err != nil {
			return nil, err
		}
		order = flipped
	}

	tailor := bid.Tailor
	return u.advance(ctx, order, model.OrderStatusBooked, model.OrderPatch{
		SelectedTailor: &tailor,
		SelectedBidID:  &bid.ID,
	})
}

// Booking stores measurements and logistics and returns the running total.
func (u *OrderUseCase) Booking(ctx context.Context, userID int64, orderID string, in BookingInput) (*model.Order, float64, error) {
	order, err := u.Get(ctx, userID, orderID)
	if err != nil {
		return nil, 0, err
	}
	if !order.Status.Booked() {
		return nil, 0, domainErrors.ErrInvalidStatus
	}

	updated, err := u.orders.Update(ctx, orderID, model.OrderPatch{
		Measurements: &in.Measurements,
		Logistics:    &in.Logistics,
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := u.total(ctx, updated)
	if err != nil {
		return nil, 0, err
	}
	return updated, total, nil
}

// Total computes the booking summary total for the order.
func (u *OrderUseCase) Total(ctx context.Context, userID int64, orderID string) (float64, error) {
	order, err := u.Get(ctx, userID, orderID)
	if err != nil {
		return 0, err
	}
	return u.total(ctx, order)
}

func (u *OrderUseCase) total(ctx context.Context, order *model.Order) (float64, error) {
	var bidAmount float64
	if order.SelectedBidID != nil {
		bid, err := u.bids.GetByID(ctx, *order.SelectedBidID)
		if err != nil {
			return 0, err
		}
		bidAmount = bid.Amount
	}
	return pipeline.BookingTotal(bidAmount, order.Accessories, u.deliveryFee), nil
}

// RecordPayment attaches settled payment info and moves the order into
// production.
func (u *OrderUseCase) RecordPayment(ctx context.Context, userID int64, orderID string, payment model.PaymentInfo) (*model.Order, error) {
	order, err := u.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return u.advance(ctx, order, model.OrderStatusInProgress, model.OrderPatch{Payment: &payment})
}

// Review records the customer's rating, completes the order, and folds the
// rating into the tailor's directory entry.
func (u *OrderUseCase) Review(ctx context.Context, userID int64, orderID string, rating int, comment string) (*model.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}

	order, err := u.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.SelectedTailor == nil {
		return nil, domainErrors.ErrInvalidStatus
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		TailorID:  order.SelectedTailor.ID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := u.refreshRating(ctx, order.SelectedTailor.ID); err != nil {
		return nil, err
	}

	return u.advance(ctx, order, model.OrderStatusCompleted, model.OrderPatch{})
}

func (u *OrderUseCase) refreshRating(ctx context.Context, tailorID string) error {
	reviews, err := u.reviews.ListByTailor(ctx, tailorID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return u.tailors.UpdateRating(ctx, tailorID, avg, len(reviews))
}

// SelectBatchForBidding returns posted orders for the bid collector.
func (u *OrderUseCase) SelectBatchForBidding(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchForBidding(ctx, limit)
}
