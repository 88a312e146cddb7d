package model

import "time"

// Tailor is directory data about a tailor shop.
type Tailor struct {
	ID          string
	UserID      int64
	Name        string
	ShopName    string
	Rating      float64
	ReviewCount int
	Specialties []string
}

// Bid is a tailor's offer against a posted order. Bids embed the tailor
// snapshot taken at submission time and are immutable once created.
type Bid struct {
	ID            string
	OrderID       string
	Tailor        Tailor
	Amount        float64
	EstimatedDays int
	Message       string
	CreatedAt     time.Time
}

// Review is the customer's rating of a completed order.
type Review struct {
	ID        string
	OrderID   string
	TailorID  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
