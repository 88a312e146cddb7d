package dto

import (
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// PlaceBidRequest submits a tailor's offer against an open order.
type PlaceBidRequest struct {
	Amount        float64 `json:"amount"`
	EstimatedDays int     `json:"estimated_days"`
	Message       string  `json:"message"`
}

// BidResponse describes a bid with its tailor snapshot.
type BidResponse struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"order_id"`
	Tailor        TailorSummary `json:"tailor"`
	Amount        float64       `json:"amount"`
	EstimatedDays int           `json:"estimated_days"`
	Message       string        `json:"message,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewBidResponse converts a bid model.
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		ID:            b.ID,
		OrderID:       b.OrderID,
		Tailor:        NewTailorSummary(b.Tailor),
		Amount:        b.Amount,
		EstimatedDays: b.EstimatedDays,
		Message:       b.Message,
		CreatedAt:     b.CreatedAt,
	}
}

// NewBidResponses converts a slice of bid models.
func NewBidResponses(bids []model.Bid) []BidResponse {
	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, NewBidResponse(b))
	}
	return resp
}
