package model

import "time"

// OrderStatus describes the fulfilment lifecycle of a stitching order.
// Transitions are forward only; there is no cancellation path.
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusPosted     OrderStatus = "posted"
	OrderStatusBidding    OrderStatus = "bidding"
	OrderStatusBooked     OrderStatus = "booked"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusDraft:      0,
	OrderStatusPosted:     1,
	OrderStatusBidding:    2,
	OrderStatusBooked:     3,
	OrderStatusInProgress: 4,
	OrderStatusCompleted:  5,
}

// Rank returns the position of the status in the forward lifecycle,
// or -1 for an unknown status.
func (s OrderStatus) Rank() int {
	if r, ok := orderStatusRank[s]; ok {
		return r
	}
	return -1
}

// Booked reports whether the order has a tailor assigned. SelectedTailor must
// be nil for any status below booked.
func (s OrderStatus) Booked() bool {
	return s.Rank() >= orderStatusRank[OrderStatusBooked]
}

// DeliveryTimeline is the customer's urgency preference when posting an order.
type DeliveryTimeline string

const (
	TimelineUrgent   DeliveryTimeline = "urgent"
	TimelineNormal   DeliveryTimeline = "normal"
	TimelineFlexible DeliveryTimeline = "flexible"
)

// Order is a stitching job walked through the marketplace pipeline.
type Order struct {
	ID             string
	UserID         int64
	Design         *Design
	Fabric         *string
	Accessories    []Accessory
	Notes          string
	Timeline       DeliveryTimeline
	TargetDate     *time.Time
	Status         OrderStatus
	SelectedTailor *Tailor
	SelectedBidID  *string
	Logistics      *LogisticsOption
	Measurements   *Measurements
	Payment        *PaymentInfo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderPatch carries a partial order update. Nil fields are left untouched.
type OrderPatch struct {
	Design         *Design
	Fabric         *string
	Accessories    *[]Accessory
	Notes          *string
	Status         *OrderStatus
	SelectedTailor *Tailor
	SelectedBidID  *string
	Logistics      *LogisticsOption
	Measurements   *Measurements
	Payment        *PaymentInfo
}

// Apply merges the patch into the order.
func (p OrderPatch) Apply(o *Order) {
	if p.Design != nil {
		o.Design = p.Design
	}
	if p.Fabric != nil {
		o.Fabric = p.Fabric
	}
	if p.Accessories != nil {
		o.Accessories = *p.Accessories
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.SelectedTailor != nil {
		o.SelectedTailor = p.SelectedTailor
	}
	if p.SelectedBidID != nil {
		o.SelectedBidID = p.SelectedBidID
	}
	if p.Logistics != nil {
		o.Logistics = p.Logistics
	}
	if p.Measurements != nil {
		o.Measurements = p.Measurements
	}
	if p.Payment != nil {
		o.Payment = p.Payment
	}
}
