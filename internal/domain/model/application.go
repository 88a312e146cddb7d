package model

import "time"

// TailorApplication is a request by a user to open a tailor shop.
// Applications are reviewed by an admin; while pending, the applicant may
// preview the tailor surface in demo mode.
type TailorApplication struct {
	ID          string
	UserID      int64
	ShopName    string
	Experience  string
	Specialties []string
	Status      ApplicationStatus
	CreatedAt   time.Time
	ReviewedAt  *time.Time
}
