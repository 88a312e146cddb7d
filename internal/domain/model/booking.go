package model

// LogisticsType is the chosen method for fabric pickup or garment delivery.
type LogisticsType string

const (
	LogisticsHomePickup     LogisticsType = "home_pickup"
	LogisticsSelfDrop       LogisticsType = "self_drop"
	LogisticsTailorDelivery LogisticsType = "tailor_delivery"
)

// LogisticsOption is captured once per order at booking time.
type LogisticsOption struct {
	Type    LogisticsType
	Address *string
	Date    *string
	Notes   *string
}

// Measurements holds fitting measurements captured once per order.
type Measurements struct {
	Chest           float64
	Waist           float64
	Hips            float64
	Length          float64
	Shoulder        float64
	Sleeves         string
	Neckline        string
	AdditionalNotes string
}

// PaymentStatus describes settlement state of an order payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// PaymentMethod is a supported checkout method.
type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodJazzCash  PaymentMethod = "jazzcash"
	PaymentMethodEasypaisa PaymentMethod = "easypaisa"
)

// PaymentInfo is terminal payment data captured once per order.
type PaymentInfo struct {
	Method        PaymentMethod
	Status        PaymentStatus
	Amount        float64
	TransactionID *string
}
