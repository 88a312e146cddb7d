package repository

import (
	"context"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// OrderRepository describes persistence operations with marketplace orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	ListByTailor(ctx context.Context, tailorID string) ([]model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	SelectBatchForBidding(ctx context.Context, limit int) ([]model.Order, error)
}

// BidRepository describes persistence of tailor bids.
type BidRepository interface {
	Create(ctx context.Context, bid *model.Bid) error
	ListByOrder(ctx context.Context, orderID string) ([]model.Bid, error)
	ListByTailor(ctx context.Context, tailorID string) ([]model.Bid, error)
	GetByID(ctx context.Context, id string) (*model.Bid, error)
	CountByOrder(ctx context.Context, orderID string) (int, error)
}

// ReviewRepository describes persistence of order reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByTailor(ctx context.Context, tailorID string) ([]model.Review, error)
}
