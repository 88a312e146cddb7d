package dto

import (
	"time"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// ApplyRequest submits a tailor application.
type ApplyRequest struct {
	ShopName    string   `json:"shop_name"`
	Experience  string   `json:"experience"`
	Specialties []string `json:"specialties"`
}

// EarningsResponse summarizes booked work for the tailor dashboard.
type EarningsResponse struct {
	ActiveOrders    int     `json:"active_orders"`
	CompletedOrders int     `json:"completed_orders"`
	TotalEarned     float64 `json:"total_earned"`
	PendingPayout   float64 `json:"pending_payout"`
}

// NewApplicationResponse converts an application model.
func NewApplicationResponse(app model.TailorApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		UserID:      app.UserID,
		ShopName:    app.ShopName,
		Experience:  app.Experience,
		Specialties: app.Specialties,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt.Format(time.RFC3339),
	}
}

// NewApplicationResponses converts a slice of application models.
func NewApplicationResponses(apps []model.TailorApplication) []ApplicationResponse {
	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, NewApplicationResponse(app))
	}
	return resp
}

// NewTailorSummaries converts the tailor directory.
func NewTailorSummaries(tailors []model.Tailor) []TailorSummary {
	resp := make([]TailorSummary, 0, len(tailors))
	for _, t := range tailors {
		resp = append(resp, NewTailorSummary(t))
	}
	return resp
}
