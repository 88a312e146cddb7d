package dto

import (
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// PostOrderRequest posts the current design session as an order for bidding.
type PostOrderRequest struct {
	Notes      string     `json:"notes"`
	Timeline   string     `json:"timeline"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}

// SelectBidRequest books the order with the tailor behind the bid.
type SelectBidRequest struct {
	BidID string `json:"bid_id"`
}

// MeasurementsPayload carries fitting measurements captured at booking.
type MeasurementsPayload struct {
	Chest           float64 `json:"chest"`
	Waist           float64 `json:"waist"`
	Hips            float64 `json:"hips"`
	Length          float64 `json:"length"`
	Shoulder        float64 `json:"shoulder"`
	Sleeves         string  `json:"sleeves"`
	Neckline        string  `json:"neckline"`
	AdditionalNotes string  `json:"additional_notes"`
}

// LogisticsPayload carries pickup/delivery arrangements.
type LogisticsPayload struct {
	Type    string  `json:"type"`
	Address *string `json:"address,omitempty"`
	Date    *string `json:"date,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// BookingRequest finalizes measurements and logistics for a booked order.
type BookingRequest struct {
	Measurements MeasurementsPayload `json:"measurements"`
	Logistics    LogisticsPayload    `json:"logistics"`
}

// BookingResponse returns the updated order and the amount due.
type BookingResponse struct {
	Order OrderResponse `json:"order"`
	Total float64       `json:"total"`
}

// PaymentRequest pays for a booked order.
type PaymentRequest struct {
	Method          string `json:"method"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
}

// ReviewRequest rates the completed work.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// PaymentInfoResponse describes settlement state of an order payment.
type PaymentInfoResponse struct {
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

// TailorSummary is the tailor snapshot embedded in orders and bids.
type TailorSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShopName    string   `json:"shop_name"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Specialties []string `json:"specialties,omitempty"`
}

// OrderResponse describes a stitching order.
type OrderResponse struct {
	ID             string               `json:"id"`
	Status         string               `json:"status"`
	Design         *DesignResponse      `json:"design,omitempty"`
	Fabric         *string              `json:"fabric,omitempty"`
	Accessories    []AccessoryResponse  `json:"accessories"`
	Notes          string               `json:"notes,omitempty"`
	Timeline       string               `json:"timeline"`
	TargetDate     *time.Time           `json:"target_date,omitempty"`
	SelectedTailor *TailorSummary       `json:"selected_tailor,omitempty"`
	SelectedBidID  *string              `json:"selected_bid_id,omitempty"`
	Logistics      *LogisticsPayload    `json:"logistics,omitempty"`
	Measurements   *MeasurementsPayload `json:"measurements,omitempty"`
	Payment        *PaymentInfoResponse `json:"payment,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// NewTailorSummary converts a tailor model.
func NewTailorSummary(t model.Tailor) TailorSummary {
	return TailorSummary{
		ID:          t.ID,
		Name:        t.Name,
		ShopName:    t.ShopName,
		Rating:      t.Rating,
		ReviewCount: t.ReviewCount,
		Specialties: t.Specialties,
	}
}

// NewOrderResponse converts an order model.
func NewOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		Status:        string(o.Status),
		Fabric:        o.Fabric,
		Accessories:   NewAccessoryResponses(o.Accessories),
		Notes:         o.Notes,
		Timeline:      string(o.Timeline),
		TargetDate:    o.TargetDate,
		SelectedBidID: o.SelectedBidID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Design != nil {
		design := NewDesignResponse(*o.Design)
		resp.Design = &design
	}
	if o.SelectedTailor != nil {
		tailor := NewTailorSummary(*o.SelectedTailor)
		resp.SelectedTailor = &tailor
	}
	if o.Logistics != nil {
		resp.Logistics = &LogisticsPayload{
			Type:    string(o.Logistics.Type),
			Address: o.Logistics.Address,
			Date:    o.Logistics.Date,
			Notes:   o.Logistics.Notes,
		}
	}
	if o.Measurements != nil {
		resp.Measurements = &MeasurementsPayload{
			Chest:           o.Measurements.Chest,
			Waist:           o.Measurements.Waist,
			Hips:            o.Measurements.Hips,
			Length:          o.Measurements.Length,
			Shoulder:        o.Measurements.Shoulder,
			Sleeves:         o.Measurements.Sleeves,
			Neckline:        o.Measurements.Neckline,
			AdditionalNotes: o.Measurements.AdditionalNotes,
		}
	}
	if o.Payment != nil {
		resp.Payment = &PaymentInfoResponse{
			Method:        string(o.Payment.Method),
			Status:        string(o.Payment.Status),
			Amount:        o.Payment.Amount,
			TransactionID: o.Payment.TransactionID,
		}
	}
	return resp
}

// NewOrderResponses converts a slice of order models.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, NewOrderResponse(o))
	}
	return resp
}
